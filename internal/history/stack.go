// Package history implements the undo/redo stack and the reversible commands
// that mutate grid layout and cell data.
package history

import "errors"

var (
	// ErrNoChange is returned by command constructors when the mutation would
	// have no effect. Callers skip recording.
	ErrNoChange = errors.New("no effective change")
	// ErrOutOfRange is returned when a structural command targets lines that
	// do not exist or the header line.
	ErrOutOfRange = errors.New("target out of range")
)

// Command is a mutation paired with its exact inverse.
type Command interface {
	Forward()
	Backward()
	Describe() string
}

// Stack is a single-line LIFO history of commands.
type Stack struct {
	done   []Command
	undone []Command
	limit  int
}

// NewStack creates a stack keeping at most limit commands. A limit of 0 keeps
// everything.
func NewStack(limit int) *Stack {
	return &Stack{limit: max(0, limit)}
}

// Execute runs cmd forward and records it.
func (s *Stack) Execute(cmd Command) {
	cmd.Forward()
	s.Push(cmd)
}

// Push records a command whose forward mutation has already been applied,
// such as a resize shown live while dragging.
func (s *Stack) Push(cmd Command) {
	s.done = append(s.done, cmd)
	clear(s.undone)
	s.undone = s.undone[:0]
	if s.limit > 0 && len(s.done) > s.limit {
		drop := len(s.done) - s.limit
		clear(s.done[:drop])
		s.done = s.done[drop:]
	}
}

// Undo reverts the most recent command. It returns false when there is
// nothing to undo.
func (s *Stack) Undo() bool {
	if len(s.done) == 0 {
		return false
	}
	cmd := s.done[len(s.done)-1]
	s.done = s.done[:len(s.done)-1]
	cmd.Backward()
	s.undone = append(s.undone, cmd)
	return true
}

// Redo reapplies the most recently undone command.
func (s *Stack) Redo() bool {
	if len(s.undone) == 0 {
		return false
	}
	cmd := s.undone[len(s.undone)-1]
	s.undone = s.undone[:len(s.undone)-1]
	cmd.Forward()
	s.done = append(s.done, cmd)
	return true
}

// CanUndo reports whether Undo would do anything.
func (s *Stack) CanUndo() bool { return len(s.done) > 0 }

// CanRedo reports whether Redo would do anything.
func (s *Stack) CanRedo() bool { return len(s.undone) > 0 }

// Len returns the number of undoable commands.
func (s *Stack) Len() int { return len(s.done) }

// NextUndo returns the command Undo would revert, or nil.
func (s *Stack) NextUndo() Command {
	if len(s.done) == 0 {
		return nil
	}
	return s.done[len(s.done)-1]
}

// NextRedo returns the command Redo would reapply, or nil.
func (s *Stack) NextRedo() Command {
	if len(s.undone) == 0 {
		return nil
	}
	return s.undone[len(s.undone)-1]
}

// Clear drops all history.
func (s *Stack) Clear() {
	s.done = nil
	s.undone = nil
}
