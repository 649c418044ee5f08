package script

import (
	"encoding/json"
	"fmt"
)

// ---------------------------------------------------------------------------
// Typed extraction
// ---------------------------------------------------------------------------

// MismatchError reports a failed typed extraction. The binding layer wraps
// it with function and argument context before surfacing it to the script.
type MismatchError struct {
	Want string
	Got  Kind
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("expected %s, got %s", e.Want, e.Got)
}

func mismatch(want string, got Kind) error {
	return &MismatchError{Want: want, Got: got}
}

// ToBool extracts a boolean or fails.
func ToBool(v Value) (bool, error) {
	b, ok := v.TryBool()
	if !ok {
		return false, mismatch("bool", v.kind)
	}
	return b, nil
}

// ToInt extracts an integer or fails. Accepts floats that are integral and
// exactly representable; never coerces strings.
func ToInt(v Value) (int64, error) {
	n, ok := v.TryInt()
	if !ok {
		return 0, mismatch("int", v.kind)
	}
	return n, nil
}

// ToFloat extracts a float or fails. Accepts integers whose float64
// conversion is exact; never coerces strings.
func ToFloat(v Value) (float64, error) {
	f, ok := v.TryFloat()
	if !ok {
		return 0, mismatch("float", v.kind)
	}
	return f, nil
}

// ToString extracts a string or fails. Never coerces numbers.
func ToString(v Value) (string, error) {
	s, ok := v.TryString()
	if !ok {
		return "", mismatch("string", v.kind)
	}
	return s, nil
}

// ToVec2 extracts a 2-component vector or fails.
func ToVec2(v Value) ([2]float64, error) {
	c, ok := v.TryVec2()
	if !ok {
		return [2]float64{}, mismatch("vec2", v.kind)
	}
	return c, nil
}

// ToVec4 extracts a 4-component vector or fails.
func ToVec4(v Value) ([4]float64, error) {
	c, ok := v.TryVec4()
	if !ok {
		return [4]float64{}, mismatch("vec4", v.kind)
	}
	return c, nil
}

// ToHandle extracts an opaque handle payload or fails.
func ToHandle(v Value) (any, error) {
	h, ok := v.TryHandle()
	if !ok {
		return nil, mismatch("handle", v.kind)
	}
	return h, nil
}

// ---------------------------------------------------------------------------
// Pushing native results back to the script
// ---------------------------------------------------------------------------

// PushNative converts a native result to its script return values.
// Composite vectors are pushed component-wise, in x, y[, z, w] order, as
// the destination scripting convention expects, rather than as a single
// aggregate. Nil pushes nothing.
func PushNative(v Value) []Value {
	switch v.kind {
	case KindNil:
		return nil
	case KindVec2:
		return []Value{Float(v.vec[0]), Float(v.vec[1])}
	case KindVec4:
		return []Value{Float(v.vec[0]), Float(v.vec[1]), Float(v.vec[2]), Float(v.vec[3])}
	default:
		return []Value{v}
	}
}

// ---------------------------------------------------------------------------
// Canonical textual representation
// ---------------------------------------------------------------------------

// Repr serializes a value to its canonical structured-data form (JSON with
// stable key order). Images and handles have no such form and fail.
func (v Value) Repr() (string, error) {
	plain, err := v.plain()
	if err != nil {
		return "", err
	}
	data, err := json.Marshal(plain)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (v Value) plain() (any, error) {
	switch v.kind {
	case KindNil:
		return nil, nil
	case KindBool:
		return v.b, nil
	case KindInt:
		return v.i, nil
	case KindFloat:
		return v.f, nil
	case KindString:
		return v.s, nil
	case KindVec2:
		return []float64{v.vec[0], v.vec[1]}, nil
	case KindVec4:
		return []float64{v.vec[0], v.vec[1], v.vec[2], v.vec[3]}, nil
	case KindList:
		items := v.ref.([]Value)
		out := make([]any, len(items))
		for i, item := range items {
			p, err := item.plain()
			if err != nil {
				return nil, err
			}
			out[i] = p
		}
		return out, nil
	case KindMap:
		m := v.ref.(map[string]Value)
		out := make(map[string]any, len(m))
		for k, item := range m {
			p, err := item.plain()
			if err != nil {
				return nil, err
			}
			out[k] = p
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%s value has no canonical representation", v.kind)
	}
}
