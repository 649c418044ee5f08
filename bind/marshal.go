package bind

import (
	"fmt"

	"github.com/hollis/imscript/script"
)

// ---------------------------------------------------------------------------
// Invocation: coerced arguments for one native call
// ---------------------------------------------------------------------------

// Invocation carries the fully coerced arguments of a single call and
// collects the native result. It is valid only for the duration of that
// call. Accessors panic on kind mismatch: a mismatch there is a bug in the
// catalogue, not in the script, and registration-time validation makes it
// unreachable for well-formed descriptors.
type Invocation struct {
	d      *Descriptor
	args   []argValue
	ret    script.Value
	hasRet bool
}

type argValue struct {
	b    bool
	i    int64
	f    float64
	s    string
	vec  [4]float64
	h    any
	outB *bool
	outI *int64
	outF *float64
}

func (inv *Invocation) check(i int, kinds ...ArgKind) ArgKind {
	k := inv.d.Args[i].Kind
	for _, want := range kinds {
		if k == want {
			return k
		}
	}
	panic(fmt.Sprintf("%s: argument %d (%s) is %s, accessed as %s",
		inv.d.Name, i+1, inv.d.Args[i].Name, k, kinds[0]))
}

// Bool returns a coerced required/optional boolean argument.
func (inv *Invocation) Bool(i int) bool {
	inv.check(i, ArgBool)
	return inv.args[i].b
}

// Int returns a coerced integer or resolved enum argument.
func (inv *Invocation) Int(i int) int64 {
	inv.check(i, ArgInt, ArgEnum)
	return inv.args[i].i
}

// Enum returns a resolved enum argument.
func (inv *Invocation) Enum(i int) int64 {
	inv.check(i, ArgEnum, ArgInt)
	return inv.args[i].i
}

// Float returns a coerced float argument.
func (inv *Invocation) Float(i int) float64 {
	inv.check(i, ArgFloat)
	return inv.args[i].f
}

// String returns a coerced string argument.
func (inv *Invocation) String(i int) string {
	inv.check(i, ArgString)
	return inv.args[i].s
}

// Vec2 returns a coerced 2-component vector argument.
func (inv *Invocation) Vec2(i int) [2]float64 {
	inv.check(i, ArgVec2)
	return [2]float64{inv.args[i].vec[0], inv.args[i].vec[1]}
}

// Vec4 returns a coerced 4-component vector argument.
func (inv *Invocation) Vec4(i int) [4]float64 {
	inv.check(i, ArgVec4)
	return inv.args[i].vec
}

// Handle returns an opaque handle payload, uninspected.
func (inv *Invocation) Handle(i int) any {
	inv.check(i, ArgHandle)
	return inv.args[i].h
}

// BoolPtr returns the out-ref pointer for a boolean argument, or nil when
// the script did not request write-back.
func (inv *Invocation) BoolPtr(i int) *bool {
	inv.check(i, ArgOutBool)
	return inv.args[i].outB
}

// IntPtr returns the out-ref pointer for an integer argument, or nil.
func (inv *Invocation) IntPtr(i int) *int64 {
	inv.check(i, ArgOutInt)
	return inv.args[i].outI
}

// FloatPtr returns the out-ref pointer for a float argument, or nil.
func (inv *Invocation) FloatPtr(i int) *float64 {
	inv.check(i, ArgOutFloat)
	return inv.args[i].outF
}

// ReturnBool records the primary result.
func (inv *Invocation) ReturnBool(b bool) { inv.setRet(RetBool, script.Bool(b)) }

// ReturnInt records the primary result.
func (inv *Invocation) ReturnInt(n int64) { inv.setRet(RetInt, script.Int(n)) }

// ReturnFloat records the primary result.
func (inv *Invocation) ReturnFloat(f float64) { inv.setRet(RetFloat, script.Float(f)) }

// ReturnString records the primary result.
func (inv *Invocation) ReturnString(s string) { inv.setRet(RetString, script.String(s)) }

// ReturnVec2 records a composite result; Invoke pushes it component-wise.
func (inv *Invocation) ReturnVec2(x, y float64) { inv.setRet(RetVec2, script.Vec2(x, y)) }

// ReturnVec4 records a composite result; Invoke pushes it component-wise.
func (inv *Invocation) ReturnVec4(x, y, z, w float64) {
	inv.setRet(RetVec4, script.Vec4(x, y, z, w))
}

func (inv *Invocation) setRet(k RetKind, v script.Value) {
	if inv.d.Ret != k {
		panic(fmt.Sprintf("%s: declared return %s, got %s", inv.d.Name, inv.d.Ret, k))
	}
	inv.ret = v
	inv.hasRet = true
}

func (inv *Invocation) retBool() bool {
	b, ok := inv.ret.TryBool()
	return ok && b
}

// ---------------------------------------------------------------------------
// The generic marshaling routine
// ---------------------------------------------------------------------------

// invoke walks the descriptor's argument specs against the raw script
// arguments, runs the native thunk, maintains the end-stack, and builds
// the script return values: primary result first (composites exploded
// component-wise), then out-ref write-backs in declaration order.
func (d *Descriptor) invoke(tr *Tracker, raw []script.Value) ([]script.Value, error) {
	inv := &Invocation{d: d, args: make([]argValue, len(d.Args))}
	for i := range d.Args {
		spec := &d.Args[i]
		var v script.Value
		present := i < len(raw) && !raw[i].IsNil()
		if present {
			v = raw[i]
		} else if spec.Kind.IsOut() {
			// no write-back requested; native side sees a nil pointer
			continue
		} else if spec.Optional {
			v = spec.Default
			if v.IsNil() {
				continue
			}
		} else {
			return nil, &ArityError{Fn: d.Name, Param: spec.Name, Index: i}
		}
		if err := coerceArg(d.Name, i, spec, v, &inv.args[i]); err != nil {
			return nil, err
		}
	}

	// A closing call validates against the shadow stack before the native
	// close runs; a mismatched close never reaches the native API.
	if d.Close != nil {
		var err error
		if d.Close.Unwind {
			err = tr.CloseUnwind(d.Name, d.Close.Slot)
		} else {
			err = tr.Close(d.Name, d.Close.Slot)
		}
		if err != nil {
			return nil, err
		}
	}

	d.Fn(inv)

	if d.Open != nil && (!d.Open.Conditional || inv.retBool()) {
		tr.Open(d.Open.Slot)
	}

	var out []script.Value
	if d.Ret != RetNone {
		out = script.PushNative(inv.ret)
	}
	// Write-backs run even when the primary return reports a no-op: the
	// script may still want to observe the unmodified value.
	for i := range d.Args {
		a := &inv.args[i]
		switch d.Args[i].Kind {
		case ArgOutBool:
			if a.outB != nil {
				out = append(out, script.Bool(*a.outB))
			}
		case ArgOutInt:
			if a.outI != nil {
				out = append(out, script.Int(*a.outI))
			}
		case ArgOutFloat:
			if a.outF != nil {
				out = append(out, script.Float(*a.outF))
			}
		}
	}
	return out, nil
}

func coerceArg(fn string, i int, spec *ArgSpec, v script.Value, dst *argValue) error {
	typeErr := func(want string) error {
		return &TypeError{Fn: fn, Param: spec.Name, Index: i, Want: want, Got: v.Kind()}
	}
	switch spec.Kind {
	case ArgBool:
		b, ok := v.TryBool()
		if !ok {
			return typeErr("bool")
		}
		dst.b = b
	case ArgInt:
		n, ok := v.TryInt()
		if !ok {
			return typeErr("int")
		}
		dst.i = n
	case ArgFloat:
		f, ok := v.TryFloat()
		if !ok {
			return typeErr("float")
		}
		dst.f = f
	case ArgString:
		s, ok := v.TryString()
		if !ok {
			return typeErr("string")
		}
		dst.s = s
	case ArgVec2:
		c, ok := v.TryVec2()
		if !ok {
			return typeErr("vec2")
		}
		dst.vec = [4]float64{c[0], c[1]}
	case ArgVec4:
		c, ok := v.TryVec4()
		if !ok {
			return typeErr("vec4")
		}
		dst.vec = c
	case ArgEnum:
		if name, ok := v.TryString(); ok {
			n, found := spec.Enum.Lookup(name)
			if !found {
				return &EnumError{Fn: fn, Param: spec.Name, Enum: spec.Enum.Name(), Value: name}
			}
			dst.i = n
		} else if n, ok := v.TryInt(); ok {
			dst.i = n
		} else {
			return typeErr(spec.Enum.Name())
		}
	case ArgHandle:
		h, ok := v.TryHandle()
		if !ok {
			return typeErr("handle")
		}
		dst.h = h
	case ArgOutBool:
		b, ok := v.TryBool()
		if !ok {
			return typeErr("bool")
		}
		dst.outB = &b
	case ArgOutInt:
		n, ok := v.TryInt()
		if !ok {
			return typeErr("int")
		}
		dst.outI = &n
	case ArgOutFloat:
		f, ok := v.TryFloat()
		if !ok {
			return typeErr("float")
		}
		dst.outF = &f
	default:
		panic(fmt.Sprintf("%s: argument %d has unknown kind", fn, i+1))
	}
	return nil
}
