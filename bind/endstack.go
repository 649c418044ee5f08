package bind

import "fmt"

// ---------------------------------------------------------------------------
// End-stack: shadow stack of open native scopes
// ---------------------------------------------------------------------------

// The native widget API pairs every scope-opening call with a mandatory
// closing call and has undefined behavior when the pairing is violated.
// Script code can error or return early between the two, so the binding
// keeps its own record of open scopes and force-closes whatever is left
// at the frame boundary. The shadow stack mirrors the native nesting; it
// never replaces it.

// Slot identifies one class of scope-opening call (window, popup, tree
// node, ...). Slots are small dense indices into a SlotTable.
type Slot int

// SlotTable maps each slot to its name and closing native thunk. It is
// built once at catalogue registration and immutable afterwards.
type SlotTable struct {
	names   []string
	closers []func()
}

// NewSlotTable creates an empty slot table.
func NewSlotTable() *SlotTable {
	return &SlotTable{}
}

// Register adds a scope class with its closing thunk and returns its slot.
func (t *SlotTable) Register(name string, closer func()) Slot {
	t.names = append(t.names, name)
	t.closers = append(t.closers, closer)
	return Slot(len(t.names) - 1)
}

// Name returns the scope class name for a slot.
func (t *SlotTable) Name(s Slot) string {
	if s < 0 || int(s) >= len(t.names) {
		return fmt.Sprintf("slot(%d)", int(s))
	}
	return t.names[s]
}

// Len returns the number of registered slots.
func (t *SlotTable) Len() int { return len(t.names) }

func (t *SlotTable) close(s Slot) { t.closers[s]() }

// Tracker is the per-script-context shadow stack. A context's calls are
// never interleaved with another's, so the tracker needs no locking.
type Tracker struct {
	table *SlotTable
	stack []Slot
}

// NewTracker creates an empty tracker over the given slot table.
func NewTracker(table *SlotTable) *Tracker {
	return &Tracker{table: table}
}

// Open records a newly opened scope. Callers push only when the opening
// native call reported success, or unconditionally for scope classes
// whose opening call cannot fail.
func (tr *Tracker) Open(s Slot) {
	tr.stack = append(tr.stack, s)
}

// Close validates and pops the innermost scope. It fails, without touching
// the stack, if nothing is open or the innermost scope is a different
// class; the caller must not invoke the native closing call in that case.
func (tr *Tracker) Close(fn string, s Slot) error {
	n := len(tr.stack)
	if n == 0 {
		return &StackError{Fn: fn, Slot: tr.table.Name(s)}
	}
	if top := tr.stack[n-1]; top != s {
		return &StackError{Fn: fn, Slot: tr.table.Name(s), Top: tr.table.Name(top)}
	}
	tr.stack = tr.stack[:n-1]
	return nil
}

// CloseUnwind closes down to and including the innermost scope of class s,
// invoking the closing thunk of every more deeply nested scope on the way.
// Used by re-entrant scope classes whose closing call also terminates
// anything opened inside them. The matching scope itself is only popped;
// its native close is the caller's own call.
func (tr *Tracker) CloseUnwind(fn string, s Slot) error {
	depth := -1
	for i := len(tr.stack) - 1; i >= 0; i-- {
		if tr.stack[i] == s {
			depth = i
			break
		}
	}
	if depth < 0 {
		var top string
		if n := len(tr.stack); n > 0 {
			top = tr.table.Name(tr.stack[n-1])
		}
		return &StackError{Fn: fn, Slot: tr.table.Name(s), Top: top}
	}
	for i := len(tr.stack) - 1; i > depth; i-- {
		tr.table.close(tr.stack[i])
	}
	tr.stack = tr.stack[:depth]
	return nil
}

// Unwind force-closes every still-open scope in LIFO order and empties the
// stack. It runs at the frame boundary regardless of how the script
// terminated; this is the recovery mechanism, not an error path. The
// closed slots are returned innermost first.
func (tr *Tracker) Unwind() []Slot {
	if len(tr.stack) == 0 {
		return nil
	}
	closed := make([]Slot, 0, len(tr.stack))
	for i := len(tr.stack) - 1; i >= 0; i-- {
		s := tr.stack[i]
		tr.table.close(s)
		closed = append(closed, s)
	}
	tr.stack = tr.stack[:0]
	return closed
}

// Depth returns the number of open scopes.
func (tr *Tracker) Depth() int { return len(tr.stack) }

// Stack returns a copy of the open scopes, outermost first.
func (tr *Tracker) Stack() []Slot {
	out := make([]Slot, len(tr.stack))
	copy(out, tr.stack)
	return out
}
