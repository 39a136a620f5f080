// Package state holds per-run generation state shared by the generation filters.
package state

import (
	"bytes"
	"fmt"
	"io"
)

const maxMessages = 64

// Session carries the options of one generation run and its message log.
// A nil *Session is valid and behaves as a quiet, non-debug session.
type Session struct {
	// Debug enables room dumps and step tracing on Out.
	Debug bool

	// Out receives debug output. Nothing is written when nil.
	Out io.Writer

	Messages []string
}

// NewSession creates a new generation session
func NewSession(debug bool, out io.Writer) *Session {
	return &Session{
		Debug:    debug,
		Out:      out,
		Messages: make([]string, 0),
	}
}

// Debugging returns true when debug output should be produced
func (s *Session) Debugging() bool {
	return s != nil && s.Debug && s.Out != nil
}

// Writer returns the debug writer, or io.Discard when not debugging
func (s *Session) Writer() io.Writer {
	if !s.Debugging() {
		return io.Discard
	}
	return s.Out
}

// AddMessage adds a message to the session's message log
func (s *Session) AddMessage(format string, args ...any) {
	if s == nil {
		return
	}
	msg := fmt.Sprintf(format, args...)
	s.Messages = append(s.Messages, msg)

	// Keep only the last maxMessages
	if len(s.Messages) > maxMessages {
		s.Messages = s.Messages[len(s.Messages)-maxMessages:]
	}
	if s.Debugging() {
		fmt.Fprintln(s.Out, msg)
	}
}

// Child returns a session with the same options that buffers its own output,
// for work running concurrently with s. A nil session has a nil child.
func (s *Session) Child() *Session {
	if s == nil {
		return nil
	}
	child := NewSession(s.Debug, nil)
	if s.Out != nil {
		child.Out = &bytes.Buffer{}
	}
	return child
}

// Merge appends the messages and buffered output of a child session.
func (s *Session) Merge(child *Session) {
	if s == nil || child == nil {
		return
	}
	s.Messages = append(s.Messages, child.Messages...)
	if len(s.Messages) > maxMessages {
		s.Messages = s.Messages[len(s.Messages)-maxMessages:]
	}
	if buf, ok := child.Out.(*bytes.Buffer); ok && s.Out != nil {
		buf.WriteTo(s.Out)
	}
}
