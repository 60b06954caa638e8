// Package clipboard is the best-effort copy-to-clipboard boundary. Failure is
// reported to the caller as a notification and has no effect on tree state.
package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// Writer puts text on a clipboard. The default writer targets the system
// clipboard; hosts and tests substitute their own.
type Writer interface {
	WriteText(text string) error
}

type systemWriter struct{}

func (systemWriter) WriteText(text string) error {
	return clipboard.WriteAll(text)
}

// Ack is the user-visible acknowledgment of a copy attempt.
type Ack struct {
	OK      bool
	Message string
}

// Service performs copy operations through a Writer.
type Service struct {
	writer Writer
}

// New returns a Service over w. A nil writer selects the system clipboard.
func New(w Writer) *Service {
	if w == nil {
		w = systemWriter{}
	}
	return &Service{writer: w}
}

// Copy writes text to the clipboard and returns an acknowledgment suitable
// for a transient notification.
func (s *Service) Copy(text string) Ack {
	if err := s.writer.WriteText(text); err != nil {
		return Ack{OK: false, Message: fmt.Sprintf("Copy failed: %v", err)}
	}
	return Ack{OK: true, Message: "Copied to clipboard"}
}
