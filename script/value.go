package script

import (
	"fmt"
	"image"
)

// ---------------------------------------------------------------------------
// Value: dynamic script values crossing the native boundary
// ---------------------------------------------------------------------------

// Kind identifies the dynamic type of a Value.
type Kind uint8

const (
	KindNil Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindVec2
	KindVec4
	KindList
	KindMap
	KindImage
	KindHandle
)

var kindNames = [...]string{
	KindNil:    "nil",
	KindBool:   "bool",
	KindInt:    "int",
	KindFloat:  "float",
	KindString: "string",
	KindVec2:   "vec2",
	KindVec4:   "vec4",
	KindList:   "list",
	KindMap:    "map",
	KindImage:  "image",
	KindHandle: "handle",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Value is a tagged script value. The zero Value is nil.
//
// Values are ephemeral at the binding boundary: a native call receives
// coerced copies and never retains the Value itself.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	vec  [4]float64
	ref  any // []Value, map[string]Value, image.Image, or opaque handle
}

// Nil is the absent value. Passing Nil where an argument is expected is
// treated as omitting the argument.
var Nil = Value{}

// Bool wraps a boolean.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int wraps an integer.
func Int(n int64) Value { return Value{kind: KindInt, i: n} }

// Float wraps a floating point number.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// String wraps a string.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Vec2 wraps a 2-component vector.
func Vec2(x, y float64) Value { return Value{kind: KindVec2, vec: [4]float64{x, y}} }

// Vec4 wraps a 4-component vector.
func Vec4(x, y, z, w float64) Value { return Value{kind: KindVec4, vec: [4]float64{x, y, z, w}} }

// List wraps an ordered sequence of values.
func List(items ...Value) Value { return Value{kind: KindList, ref: items} }

// MapOf wraps a string-keyed mapping.
func MapOf(m map[string]Value) Value { return Value{kind: KindMap, ref: m} }

// FromImage wraps a decoded image.
func FromImage(img image.Image) Value { return Value{kind: KindImage, ref: img} }

// Handle wraps an opaque native reference. The payload is carried through
// the binding layer without inspection.
func Handle(h any) Value { return Value{kind: KindHandle, ref: h} }

// Kind returns the dynamic type tag.
func (v Value) Kind() Kind { return v.kind }

// IsNil reports whether v is the absent value.
func (v Value) IsNil() bool { return v.kind == KindNil }

// ---------------------------------------------------------------------------
// Non-throwing probes (type-directed dispatch)
// ---------------------------------------------------------------------------

// TryBool probes for a boolean.
func (v Value) TryBool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

// TryInt probes for an integer. Floats are accepted only when integral and
// exactly representable as int64; strings are never accepted.
func (v Value) TryInt() (int64, bool) {
	switch v.kind {
	case KindInt:
		return v.i, true
	case KindFloat:
		n := int64(v.f)
		if float64(n) == v.f {
			return n, true
		}
	}
	return 0, false
}

// TryFloat probes for a floating point number. Integers are accepted only
// when the conversion to float64 is exact.
func (v Value) TryFloat() (float64, bool) {
	switch v.kind {
	case KindFloat:
		return v.f, true
	case KindInt:
		f := float64(v.i)
		if int64(f) == v.i {
			return f, true
		}
	}
	return 0, false
}

// TryString probes for a string. Numbers are never accepted.
func (v Value) TryString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.s, true
}

// TryVec2 probes for a 2-component vector. A list of two numbers is
// accepted in place of a native vector.
func (v Value) TryVec2() ([2]float64, bool) {
	switch v.kind {
	case KindVec2:
		return [2]float64{v.vec[0], v.vec[1]}, true
	case KindList:
		if c, ok := v.numericComponents(2); ok {
			return [2]float64{c[0], c[1]}, true
		}
	}
	return [2]float64{}, false
}

// TryVec4 probes for a 4-component vector. A list of four numbers is
// accepted in place of a native vector.
func (v Value) TryVec4() ([4]float64, bool) {
	switch v.kind {
	case KindVec4:
		return v.vec, true
	case KindList:
		if c, ok := v.numericComponents(4); ok {
			return [4]float64{c[0], c[1], c[2], c[3]}, true
		}
	}
	return [4]float64{}, false
}

// TryList probes for a list.
func (v Value) TryList() ([]Value, bool) {
	if v.kind != KindList {
		return nil, false
	}
	return v.ref.([]Value), true
}

// TryMap probes for a map.
func (v Value) TryMap() (map[string]Value, bool) {
	if v.kind != KindMap {
		return nil, false
	}
	return v.ref.(map[string]Value), true
}

// TryImage probes for a decoded image.
func (v Value) TryImage() (image.Image, bool) {
	if v.kind != KindImage {
		return nil, false
	}
	return v.ref.(image.Image), true
}

// TryHandle probes for an opaque handle and returns its payload.
func (v Value) TryHandle() (any, bool) {
	if v.kind != KindHandle {
		return nil, false
	}
	return v.ref, true
}

func (v Value) numericComponents(n int) ([]float64, bool) {
	items := v.ref.([]Value)
	if len(items) != n {
		return nil, false
	}
	out := make([]float64, n)
	for i, item := range items {
		f, ok := item.TryFloat()
		if !ok {
			return nil, false
		}
		out[i] = f
	}
	return out, true
}

// ---------------------------------------------------------------------------
// Equality
// ---------------------------------------------------------------------------

// Equal reports deep structural equality. Images and handles compare by
// identity of the wrapped reference.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNil:
		return true
	case KindBool:
		return a.b == b.b
	case KindInt:
		return a.i == b.i
	case KindFloat:
		return a.f == b.f
	case KindString:
		return a.s == b.s
	case KindVec2:
		return a.vec[0] == b.vec[0] && a.vec[1] == b.vec[1]
	case KindVec4:
		return a.vec == b.vec
	case KindList:
		al, bl := a.ref.([]Value), b.ref.([]Value)
		if len(al) != len(bl) {
			return false
		}
		for i := range al {
			if !Equal(al[i], bl[i]) {
				return false
			}
		}
		return true
	case KindMap:
		am, bm := a.ref.(map[string]Value), b.ref.(map[string]Value)
		if len(am) != len(bm) {
			return false
		}
		for k, av := range am {
			bv, ok := bm[k]
			if !ok || !Equal(av, bv) {
				return false
			}
		}
		return true
	default:
		return a.ref == b.ref
	}
}

// String renders a debugging representation. Use Repr for the canonical
// serialized form.
func (v Value) GoString() string {
	switch v.kind {
	case KindNil:
		return "nil"
	case KindBool:
		return fmt.Sprintf("%v", v.b)
	case KindInt:
		return fmt.Sprintf("%d", v.i)
	case KindFloat:
		return fmt.Sprintf("%g", v.f)
	case KindString:
		return fmt.Sprintf("%q", v.s)
	case KindVec2:
		return fmt.Sprintf("vec2(%g, %g)", v.vec[0], v.vec[1])
	case KindVec4:
		return fmt.Sprintf("vec4(%g, %g, %g, %g)", v.vec[0], v.vec[1], v.vec[2], v.vec[3])
	default:
		return v.kind.String()
	}
}
