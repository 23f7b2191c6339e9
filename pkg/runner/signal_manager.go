package runner

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// raceWindow is how long CheckRace waits for a trailing cancellation.
const raceWindow = 100 * time.Millisecond

// SignalManager owns the interrupt context for an interactive session.
// SIGINT and SIGTERM cancel the context; Reset re-arms it so a session
// can survive a handled Ctrl+C.
type SignalManager struct {
	parent context.Context
	ctx    context.Context
	cancel context.CancelFunc
}

// NewSignalManager starts listening immediately. The returned manager's
// context is a child of parent, so external cancellation propagates.
func NewSignalManager(parent context.Context) *SignalManager {
	if parent == nil {
		parent = context.Background()
	}
	sm := &SignalManager{parent: parent}
	sm.Reset()
	return sm
}

// Context returns the current signal context.
func (sm *SignalManager) Context() context.Context {
	return sm.ctx
}

// Reset discards the current context and arms a fresh one.
func (sm *SignalManager) Reset() {
	if sm.cancel != nil {
		sm.cancel()
	}
	sm.ctx, sm.cancel = signal.NotifyContext(sm.parent, os.Interrupt, syscall.SIGTERM)
}

// Stop releases the signal listener for good.
func (sm *SignalManager) Stop() {
	if sm.cancel != nil {
		sm.cancel()
	}
}

// CheckRace blocks briefly when the context is still live. On Windows a
// Ctrl+C can surface as a read error a beat before the signal context
// cancels; waiting closes that gap so the caller sees the interrupt.
func (sm *SignalManager) CheckRace() {
	if sm.ctx.Err() != nil {
		return
	}
	select {
	case <-sm.ctx.Done():
	case <-time.After(raceWindow):
	}
}
