package history

import "testing"

type counterCmd struct {
	n    *int
	step int
}

func (c *counterCmd) Forward()         { *c.n += c.step }
func (c *counterCmd) Backward()        { *c.n -= c.step }
func (c *counterCmd) Describe() string { return "add" }

func TestStackUndoRedo(t *testing.T) {
	var n int
	s := NewStack(0)

	s.Execute(&counterCmd{&n, 1})
	s.Execute(&counterCmd{&n, 10})
	if n != 11 {
		t.Fatalf("n = %d, want 11", n)
	}

	if !s.Undo() || n != 1 {
		t.Fatalf("after Undo n = %d, want 1", n)
	}
	if !s.CanRedo() {
		t.Fatal("CanRedo() = false after Undo")
	}
	if !s.Redo() || n != 11 {
		t.Fatalf("after Redo n = %d, want 11", n)
	}
	if s.Redo() {
		t.Error("Redo() on empty redo stack returned true")
	}
}

func TestStackEmptyIsNoop(t *testing.T) {
	s := NewStack(0)
	if s.Undo() || s.Redo() {
		t.Error("Undo/Redo on empty stack should return false")
	}
	if s.NextUndo() != nil || s.NextRedo() != nil {
		t.Error("NextUndo/NextRedo on empty stack should be nil")
	}
}

func TestExecuteClearsRedo(t *testing.T) {
	var n int
	s := NewStack(0)
	s.Execute(&counterCmd{&n, 1})
	s.Undo()

	s.Execute(&counterCmd{&n, 5})
	if s.CanRedo() {
		t.Error("Execute() must clear the redo stack")
	}
	if n != 5 {
		t.Errorf("n = %d, want 5", n)
	}
}

func TestStackLimitDropsOldest(t *testing.T) {
	var n int
	s := NewStack(3)
	for i := 1; i <= 5; i++ {
		s.Execute(&counterCmd{&n, i})
	}
	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}
	for s.Undo() {
	}
	// Commands 1 and 2 were dropped and stay applied.
	if n != 3 {
		t.Errorf("n = %d, want 3", n)
	}
}

func TestUndoAllThenRedoAllIsIdentity(t *testing.T) {
	var n int
	s := NewStack(0)
	for i := 1; i <= 20; i++ {
		s.Execute(&counterCmd{&n, i * 3})
	}
	final := n

	for s.Undo() {
	}
	if n != 0 {
		t.Fatalf("n after undo all = %d, want 0", n)
	}
	for s.Redo() {
	}
	if n != final {
		t.Errorf("n after redo all = %d, want %d", n, final)
	}
}

func TestPushDoesNotRunForward(t *testing.T) {
	var n int
	s := NewStack(0)
	s.Push(&counterCmd{&n, 4})
	if n != 0 {
		t.Fatalf("Push ran Forward: n = %d", n)
	}
	s.Undo()
	if n != -4 {
		t.Errorf("n = %d, want -4", n)
	}
}
