package domain

// ActionRequest represents something the engine asks the host to surface.
type ActionRequest struct {
	Type    string // e.g. "RENDER_CONTENT"
	Payload any
}

// Standard Action Types
const (
	// ActionRenderContent requests the host to display content to the user.
	// Payload: string (markdown).
	ActionRenderContent = "RENDER_CONTENT"

	// ActionSystemMessage represents a meta-message from the system
	// (warnings, status lines). Payload: string.
	ActionSystemMessage = "SYSTEM_MESSAGE"
)
