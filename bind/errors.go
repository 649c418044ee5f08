package bind

import (
	"errors"
	"fmt"

	"github.com/hollis/imscript/script"
)

// ---------------------------------------------------------------------------
// Error taxonomy for the binding boundary
// ---------------------------------------------------------------------------

// Every error raised while dispatching a script call falls into one of
// these classes. All of them are catchable by the script and none of them
// corrupts native state: the frame boundary unwind restores invariants
// regardless of which class propagated out.

// ErrUnknownFunction indicates a call to a name with no registered
// descriptor or callback.
var ErrUnknownFunction = errors.New("unknown function")

// ArityError reports a missing required argument.
type ArityError struct {
	Fn    string
	Param string
	Index int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("%s: missing required argument %d (%s)", e.Fn, e.Index+1, e.Param)
}

// TypeError reports a failed argument coercion. It names the function, the
// argument position and name, and the expected versus actual type.
type TypeError struct {
	Fn    string
	Param string
	Index int
	Want  string
	Got   script.Kind
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("%s: argument %d (%s): expected %s, got %s",
		e.Fn, e.Index+1, e.Param, e.Want, e.Got)
}

// EnumError reports an enum argument whose name is not in the table.
type EnumError struct {
	Fn    string
	Param string
	Enum  string
	Value string
}

func (e *EnumError) Error() string {
	return fmt.Sprintf("%s: argument %s: %q is not a %s value",
		e.Fn, e.Param, e.Value, e.Enum)
}

// StackError reports a scope-closing call that does not match the shadow
// stack: closing with nothing open, or closing a slot other than the one
// on top. These are script bugs and are surfaced rather than recovered,
// since silent recovery would corrupt native nesting state across frames.
type StackError struct {
	Fn   string
	Slot string
	Top  string // empty when the stack was empty
}

func (e *StackError) Error() string {
	if e.Top == "" {
		return fmt.Sprintf("%s: cannot close %q scope: no scope is open", e.Fn, e.Slot)
	}
	return fmt.Sprintf("%s: cannot close %q scope: innermost open scope is %q", e.Fn, e.Slot, e.Top)
}
