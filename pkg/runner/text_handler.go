package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"golang.org/x/term"

	"github.com/aretw0/marquee/pkg/domain"
)

// TextHandler implements the standard text-based interface.
type TextHandler struct {
	source      io.Reader
	interactive bool // true when reading a real terminal, where EOF may follow a signal
	Reader      *bufio.Reader
	Writer      io.Writer
	Renderer    ContentRenderer

	inputChan chan inputResult
	startOnce sync.Once
}

type inputResult struct {
	text string
	err  error
}

// TextHandlerOption defines configuration for TextHandler.
type TextHandlerOption func(*TextHandler)

// WithTextHandlerRenderer configures the content renderer.
func WithTextHandlerRenderer(renderer ContentRenderer) TextHandlerOption {
	return func(h *TextHandler) {
		h.Renderer = renderer
	}
}

// NewTextHandler creates a handler for standard text IO.
func NewTextHandler(r io.Reader, w io.Writer, opts ...TextHandlerOption) *TextHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	h := &TextHandler{
		source: r,
		Writer: w,
	}

	h.interactive = isTerminalReader(r)
	h.Reader = bufio.NewReader(h.source)

	for _, opt := range opts {
		opt(h)
	}

	return h
}

func (h *TextHandler) initPump() {
	h.startOnce.Do(func() {
		h.inputChan = make(chan inputResult)
		go h.pump()
	})
}

func (h *TextHandler) pump() {
	for {
		text, err := h.Reader.ReadString('\n')

		// If we got text (even with EOF), send it
		if text != "" {
			h.inputChan <- inputResult{text: text, err: nil}
		}

		if err != nil {
			if err == io.EOF {
				if h.interactive {
					// On an interactive terminal EOF can mean a signal
					// interrupted the read while the stream stays valid.
					// Pass the EOF through but keep the channel open so
					// reads can resume after the signal is handled.
					h.inputChan <- inputResult{text: "", err: io.EOF}
					// Prevent busy loop if EOFs are generated rapidly (e.g. holding Ctrl+C)
					time.Sleep(50 * time.Millisecond)
					continue
				}
				close(h.inputChan)
				return
			}
			// Send non-EOF errors
			h.inputChan <- inputResult{text: "", err: err}
			// Backoff for non-fatal errors to prevent CPU spikes on persistent failure
			time.Sleep(50 * time.Millisecond)
		}
	}
}

func (h *TextHandler) Output(ctx context.Context, actions []domain.ActionRequest) error {
	for _, act := range actions {
		msg, ok := act.Payload.(string)
		if !ok {
			continue
		}
		switch act.Type {
		case domain.ActionRenderContent:
			output := msg
			if h.Renderer != nil {
				if rendered, err := h.Renderer(msg); err == nil {
					output = rendered
				}
			}
			fmt.Fprintln(h.Writer, strings.TrimSpace(output))
		case domain.ActionSystemMessage:
			if err := h.SystemOutput(ctx, msg); err != nil {
				return err
			}
		}
	}
	return nil
}

func (h *TextHandler) Input(ctx context.Context) (string, error) {
	// Ensure the pump is running
	h.initPump()

	for {
		// Only show prompt if context is not yet done
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
			fmt.Fprint(h.Writer, "> ")
		}

		select {
		case <-ctx.Done():
			// Important: don't print anything here, just exit silently
			return "", ctx.Err()
		case res, ok := <-h.inputChan:
			if !ok {
				return "", io.EOF
			}
			if res.err != nil {
				return "", res.err
			}
			text := strings.TrimSpace(res.text)

			// Sanitize Input (Limit + Control Chars)
			clean, err := SanitizeInput(text)
			if err != nil {
				// User Feedback: Prompt retry
				fmt.Fprintf(h.Writer, "Error: %v. Please try again.\n", err)
				continue
			}
			return clean, nil
		}
	}
}

func (h *TextHandler) SystemOutput(ctx context.Context, msg string) error {
	fmt.Fprintln(h.Writer, msg)
	return nil
}

// isTerminalReader reports whether r is an interactive terminal. Terminal
// readers get the signal-tolerant EOF treatment in the pump.
func isTerminalReader(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
