package domain

// ResultKind classifies the outcome of dispatching one question.
type ResultKind string

const (
	// KindEmpty means the input tokenized to nothing; the caller should
	// simply prompt again.
	KindEmpty ResultKind = "empty"
	// KindAnswers means a pattern matched and produced at least one answer.
	KindAnswers ResultKind = "answers"
	// KindNoAnswer means a pattern matched but the lookup yielded nothing
	// usable.
	KindNoAnswer ResultKind = "no_answer"
	// KindNoMatch means no pattern in the table matched the input.
	KindNoMatch ResultKind = "no_match"
)

// Response is the outcome of one dispatched question.
//
// KindNoAnswer and KindNoMatch stay distinguishable end to end: they carry
// different user-facing messages. Session termination is signalled by
// ErrSessionEnd, never by a Response.
type Response struct {
	Kind ResultKind `json:"kind"`
	// Answers holds the untruncated result list. Populated only for
	// KindAnswers; display-side slicing to the user limit happens at the
	// rendering boundary.
	Answers []string `json:"answers,omitempty"`
	// Pattern is the text form of the template that fired. Empty for
	// KindNoMatch and KindEmpty.
	Pattern string `json:"pattern,omitempty"`
	// Handler is the registered name of the handler that ran.
	Handler string `json:"handler,omitempty"`
}
