package bind

import (
	"fmt"

	"github.com/hollis/imscript/script"
)

// ---------------------------------------------------------------------------
// Descriptors: the declarative argument marshaling table
// ---------------------------------------------------------------------------

// Each bound native function is described by one Descriptor, built once at
// registration and immutable afterwards. A single generic routine walks
// the descriptor per call; there is no per-function marshaling code.

// ArgKind tags one argument spec variant.
type ArgKind uint8

const (
	ArgBool ArgKind = iota
	ArgInt
	ArgFloat
	ArgString
	ArgVec2
	ArgVec4
	ArgEnum
	ArgHandle

	// Output-reference kinds: the native side receives a pointer and may
	// write through it; the post-call value is pushed back to the script
	// as an extra return value. An omitted out-ref argument yields a nil
	// pointer, which tells the native side to skip the write.
	ArgOutBool
	ArgOutInt
	ArgOutFloat
)

var argKindNames = [...]string{
	ArgBool:     "bool",
	ArgInt:      "int",
	ArgFloat:    "float",
	ArgString:   "string",
	ArgVec2:     "vec2",
	ArgVec4:     "vec4",
	ArgEnum:     "enum",
	ArgHandle:   "handle",
	ArgOutBool:  "out bool",
	ArgOutInt:   "out int",
	ArgOutFloat: "out float",
}

func (k ArgKind) String() string {
	if int(k) < len(argKindNames) {
		return argKindNames[k]
	}
	return fmt.Sprintf("argkind(%d)", uint8(k))
}

// IsOut reports whether k is an output-reference kind.
func (k ArgKind) IsOut() bool {
	return k == ArgOutBool || k == ArgOutInt || k == ArgOutFloat
}

// ArgSpec declares how one argument is read from the script call.
type ArgSpec struct {
	Name     string
	Kind     ArgKind
	Optional bool
	// Default is substituted verbatim when an optional argument is
	// absent; it is validated at registration, not per call. Unused for
	// out-ref kinds, where absence means "no write-back requested".
	Default script.Value
	// Enum is the name-to-value table for ArgEnum arguments.
	Enum *EnumTable
}

// RetKind declares how the native function's primary result is pushed.
type RetKind uint8

const (
	RetNone RetKind = iota
	RetBool
	RetInt
	RetFloat
	RetString
	RetVec2
	RetVec4
)

var retKindNames = [...]string{
	RetNone:   "none",
	RetBool:   "bool",
	RetInt:    "int",
	RetFloat:  "float",
	RetString: "string",
	RetVec2:   "vec2",
	RetVec4:   "vec4",
}

func (k RetKind) String() string {
	if int(k) < len(retKindNames) {
		return retKindNames[k]
	}
	return fmt.Sprintf("retkind(%d)", uint8(k))
}

// OpenSpec binds a descriptor to a scope-opening slot. When Conditional is
// set the slot is pushed only if the native call returned true (a clipped
// window, a closed tree node); otherwise it is pushed unconditionally.
type OpenSpec struct {
	Slot        Slot
	Conditional bool
}

// CloseSpec binds a descriptor to a scope-closing slot. When Unwind is set
// the close also terminates any more deeply nested scopes first, for
// re-entrant scope classes such as menus.
type CloseSpec struct {
	Slot   Slot
	Unwind bool
}

// Descriptor declares one bound native function: its script-visible name
// (overloads carry a disambiguating numeric suffix), ordered argument
// specs, return kind, optional end-stack binding, and the native thunk.
type Descriptor struct {
	Name  string
	Args  []ArgSpec
	Ret   RetKind
	Open  *OpenSpec
	Close *CloseSpec
	Fn    func(inv *Invocation)
}

// ---------------------------------------------------------------------------
// Enum tables
// ---------------------------------------------------------------------------

// EnumTable maps enum constant names to native integer values. Enum
// arguments also accept a raw integer, so scripts can combine flag values
// themselves.
type EnumTable struct {
	name   string
	byName map[string]int64
	names  []string // declaration order
}

// NewEnumTable creates an empty enum table with the given type name.
func NewEnumTable(name string) *EnumTable {
	return &EnumTable{name: name, byName: make(map[string]int64)}
}

// Add registers a named constant and returns the table for chaining.
func (t *EnumTable) Add(name string, value int64) *EnumTable {
	if _, dup := t.byName[name]; !dup {
		t.names = append(t.names, name)
	}
	t.byName[name] = value
	return t
}

// Name returns the enum type name.
func (t *EnumTable) Name() string { return t.name }

// Lookup resolves a constant name.
func (t *EnumTable) Lookup(name string) (int64, bool) {
	v, ok := t.byName[name]
	return v, ok
}

// Names returns the constant names in declaration order.
func (t *EnumTable) Names() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// Len returns the number of constants.
func (t *EnumTable) Len() int { return len(t.names) }
