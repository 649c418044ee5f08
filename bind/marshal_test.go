package bind

import (
	"errors"
	"testing"

	"github.com/hollis/imscript/script"
)

// harness bundles a registry, its tracker, and hooks for defining one-off
// descriptors inline in each test.
type harness struct {
	reg *Registry
	tr  *Tracker
}

func newHarness(t *testing.T, descs ...*Descriptor) *harness {
	t.Helper()
	reg := NewRegistry(NewSlotTable())
	for _, d := range descs {
		if err := reg.Register(d); err != nil {
			t.Fatalf("register %s: %v", d.Name, err)
		}
	}
	return &harness{reg: reg, tr: reg.NewTracker()}
}

func (h *harness) call(t *testing.T, name string, args ...script.Value) []script.Value {
	t.Helper()
	out, err := h.reg.Call(h.tr, name, args)
	if err != nil {
		t.Fatalf("%s: %v", name, err)
	}
	return out
}

func TestRequiredArgumentMissing(t *testing.T) {
	h := newHarness(t, &Descriptor{
		Name: "greet",
		Args: []ArgSpec{{Name: "name", Kind: ArgString}},
		Fn:   func(inv *Invocation) {},
	})

	_, err := h.reg.Call(h.tr, "greet", nil)
	var arity *ArityError
	if !errors.As(err, &arity) {
		t.Fatalf("error = %v, want ArityError", err)
	}
	if arity.Fn != "greet" || arity.Param != "name" || arity.Index != 0 {
		t.Errorf("ArityError = %+v", arity)
	}

	// an explicit nil counts as absent
	_, err = h.reg.Call(h.tr, "greet", []script.Value{script.Nil})
	if !errors.As(err, &arity) {
		t.Errorf("nil argument should be treated as absent, got %v", err)
	}
}

func TestArgumentTypeMismatch(t *testing.T) {
	h := newHarness(t, &Descriptor{
		Name: "greet",
		Args: []ArgSpec{{Name: "name", Kind: ArgString}},
		Fn:   func(inv *Invocation) {},
	})

	_, err := h.reg.Call(h.tr, "greet", []script.Value{script.Int(3)})
	var typeErr *TypeError
	if !errors.As(err, &typeErr) {
		t.Fatalf("error = %v, want TypeError", err)
	}
	if typeErr.Want != "string" || typeErr.Got != script.KindInt {
		t.Errorf("TypeError = %+v", typeErr)
	}
}

func TestOptionalDefaultSubstitution(t *testing.T) {
	var got float64
	h := newHarness(t, &Descriptor{
		Name: "fade",
		Args: []ArgSpec{
			{Name: "alpha", Kind: ArgFloat, Optional: true, Default: script.Float(1.0)},
		},
		Fn: func(inv *Invocation) { got = inv.Float(0) },
	})

	h.call(t, "fade")
	if got != 1.0 {
		t.Errorf("absent optional used %g, want the default 1", got)
	}
	h.call(t, "fade", script.Float(0.5))
	if got != 0.5 {
		t.Errorf("present optional used %g, want 0.5", got)
	}
}

func TestEnumByNameAndRawValue(t *testing.T) {
	dir := NewEnumTable("Dir").Add("Left", 0).Add("Right", 1)
	var got int64
	h := newHarness(t, &Descriptor{
		Name: "arrow",
		Args: []ArgSpec{{Name: "dir", Kind: ArgEnum, Enum: dir}},
		Fn:   func(inv *Invocation) { got = inv.Enum(0) },
	})

	h.call(t, "arrow", script.String("Right"))
	if got != 1 {
		t.Errorf("named constant resolved to %d", got)
	}

	// raw integers pass through so scripts can OR flag values themselves
	h.call(t, "arrow", script.Int(7))
	if got != 7 {
		t.Errorf("raw value resolved to %d", got)
	}

	_, err := h.reg.Call(h.tr, "arrow", []script.Value{script.String("Sideways")})
	var enumErr *EnumError
	if !errors.As(err, &enumErr) {
		t.Fatalf("error = %v, want EnumError", err)
	}
	if enumErr.Enum != "Dir" || enumErr.Value != "Sideways" {
		t.Errorf("EnumError = %+v", enumErr)
	}
}

func TestOutRefWriteBack(t *testing.T) {
	h := newHarness(t, &Descriptor{
		Name: "toggle",
		Args: []ArgSpec{{Name: "state", Kind: ArgOutBool}},
		Ret:  RetBool,
		Fn: func(inv *Invocation) {
			if p := inv.BoolPtr(0); p != nil {
				*p = !*p
			}
			inv.ReturnBool(true)
		},
	})

	out := h.call(t, "toggle", script.Bool(false))
	if len(out) != 2 {
		t.Fatalf("returned %d values, want primary + write-back", len(out))
	}
	if b, _ := out[0].TryBool(); !b {
		t.Errorf("primary = %#v", out[0])
	}
	if b, _ := out[1].TryBool(); !b {
		t.Errorf("write-back = %#v, want flipped state", out[1])
	}
}

func TestOutRefOmittedYieldsNilPointer(t *testing.T) {
	var sawNil bool
	h := newHarness(t, &Descriptor{
		Name: "toggle",
		Args: []ArgSpec{{Name: "state", Kind: ArgOutBool}},
		Ret:  RetBool,
		Fn: func(inv *Invocation) {
			sawNil = inv.BoolPtr(0) == nil
			inv.ReturnBool(false)
		},
	})

	out := h.call(t, "toggle")
	if !sawNil {
		t.Error("omitted out-ref should reach the native side as a nil pointer")
	}
	if len(out) != 1 {
		t.Errorf("returned %d values, want primary only (no write-back)", len(out))
	}
}

func TestOutRefWriteBackOrder(t *testing.T) {
	h := newHarness(t, &Descriptor{
		Name: "drag",
		Args: []ArgSpec{
			{Name: "x", Kind: ArgOutFloat},
			{Name: "y", Kind: ArgOutInt},
		},
		Fn: func(inv *Invocation) {
			*inv.FloatPtr(0) = 1.5
			*inv.IntPtr(1) = 9
		},
	})

	out := h.call(t, "drag", script.Float(0), script.Int(0))
	if len(out) != 2 {
		t.Fatalf("returned %d values", len(out))
	}
	if f, _ := out[0].TryFloat(); f != 1.5 {
		t.Errorf("out[0] = %#v, want the x write-back first", out[0])
	}
	if n, _ := out[1].TryInt(); n != 9 {
		t.Errorf("out[1] = %#v", out[1])
	}
}

func TestCompositeReturnExplodes(t *testing.T) {
	h := newHarness(t, &Descriptor{
		Name: "mousePos",
		Ret:  RetVec2,
		Fn:   func(inv *Invocation) { inv.ReturnVec2(10, 20) },
	})

	out := h.call(t, "mousePos")
	if len(out) != 2 {
		t.Fatalf("vec2 result pushed %d values", len(out))
	}
	if x, _ := out[0].TryFloat(); x != 10 {
		t.Errorf("x = %#v", out[0])
	}
	if y, _ := out[1].TryFloat(); y != 20 {
		t.Errorf("y = %#v", out[1])
	}
}

func TestVectorArgumentFromList(t *testing.T) {
	var got [2]float64
	h := newHarness(t, &Descriptor{
		Name: "move",
		Args: []ArgSpec{{Name: "pos", Kind: ArgVec2}},
		Fn:   func(inv *Invocation) { got = inv.Vec2(0) },
	})

	h.call(t, "move", script.List(script.Int(3), script.Float(4.5)))
	if got != [2]float64{3, 4.5} {
		t.Errorf("vec2 from list = %v", got)
	}
	h.call(t, "move", script.Vec2(-1, -2))
	if got != [2]float64{-1, -2} {
		t.Errorf("vec2 native = %v", got)
	}
}

func TestHandlePassesThroughUninspected(t *testing.T) {
	type texture struct{ id int }
	payload := &texture{id: 42}
	var got any
	h := newHarness(t, &Descriptor{
		Name: "image",
		Args: []ArgSpec{{Name: "texture", Kind: ArgHandle}},
		Fn:   func(inv *Invocation) { got = inv.Handle(0) },
	})

	h.call(t, "image", script.Handle(payload))
	if got != payload {
		t.Errorf("handle payload = %v, want identical pointer", got)
	}
}

func TestConditionalOpenFollowsResult(t *testing.T) {
	table := NewSlotTable()
	window := table.Register("window", func() {})
	visible := true
	reg := NewRegistry(table)
	reg.MustRegister(&Descriptor{
		Name: "begin",
		Ret:  RetBool,
		Open: &OpenSpec{Slot: window, Conditional: true},
		Fn:   func(inv *Invocation) { inv.ReturnBool(visible) },
	})
	tr := reg.NewTracker()

	if _, err := reg.Call(tr, "begin", nil); err != nil {
		t.Fatal(err)
	}
	if tr.Depth() != 1 {
		t.Errorf("successful open: depth = %d", tr.Depth())
	}

	visible = false
	if _, err := reg.Call(tr, "begin", nil); err != nil {
		t.Fatal(err)
	}
	if tr.Depth() != 1 {
		t.Errorf("failed conditional open still pushed: depth = %d", tr.Depth())
	}
}

func TestCloseValidatesBeforeNativeCall(t *testing.T) {
	table := NewSlotTable()
	window := table.Register("window", func() {})
	var nativeRan bool
	reg := NewRegistry(table)
	reg.MustRegister(&Descriptor{
		Name:  "end",
		Close: &CloseSpec{Slot: window},
		Fn:    func(inv *Invocation) { nativeRan = true },
	})
	tr := reg.NewTracker()

	_, err := reg.Call(tr, "end", nil)
	var stackErr *StackError
	if !errors.As(err, &stackErr) {
		t.Fatalf("error = %v, want StackError", err)
	}
	if nativeRan {
		t.Error("mismatched close must not reach the native API")
	}
}

func TestUnknownFunction(t *testing.T) {
	h := newHarness(t)
	_, err := h.reg.Call(h.tr, "nope", nil)
	if !errors.Is(err, ErrUnknownFunction) {
		t.Errorf("error = %v, want ErrUnknownFunction", err)
	}
}

func TestRegisterRejectsMalformedDescriptors(t *testing.T) {
	cases := []struct {
		label string
		desc  *Descriptor
	}{
		{"no name", &Descriptor{Fn: func(*Invocation) {}}},
		{"no thunk", &Descriptor{Name: "x"}},
		{"enum without table", &Descriptor{
			Name: "x",
			Args: []ArgSpec{{Name: "e", Kind: ArgEnum}},
			Fn:   func(*Invocation) {},
		}},
		{"required after optional", &Descriptor{
			Name: "x",
			Args: []ArgSpec{
				{Name: "a", Kind: ArgInt, Optional: true, Default: script.Int(0)},
				{Name: "b", Kind: ArgInt},
			},
			Fn: func(*Invocation) {},
		}},
		{"default of wrong kind", &Descriptor{
			Name: "x",
			Args: []ArgSpec{{Name: "a", Kind: ArgInt, Optional: true, Default: script.String("no")}},
			Fn:   func(*Invocation) {},
		}},
		{"unregistered slot", &Descriptor{
			Name: "x",
			Open: &OpenSpec{Slot: 5},
			Fn:   func(*Invocation) {},
		}},
	}
	for _, c := range cases {
		reg := NewRegistry(NewSlotTable())
		if err := reg.Register(c.desc); err == nil {
			t.Errorf("%s: registration should fail", c.label)
		}
	}
}

func TestRequiredArgumentsAfterOutRef(t *testing.T) {
	// An out-ref is a positional slot, not an optional tail: required
	// arguments may follow it and registration must accept the shape.
	var min, max float64
	var sawNil bool
	h := newHarness(t, &Descriptor{
		Name: "slider",
		Args: []ArgSpec{
			{Name: "label", Kind: ArgString},
			{Name: "v", Kind: ArgOutFloat, Optional: true},
			{Name: "v_min", Kind: ArgFloat},
			{Name: "v_max", Kind: ArgFloat},
		},
		Ret: RetBool,
		Fn: func(inv *Invocation) {
			sawNil = inv.FloatPtr(1) == nil
			min, max = inv.Float(2), inv.Float(3)
			inv.ReturnBool(false)
		},
	})

	h.call(t, "slider", script.String("vol"), script.Float(0.5), script.Float(0), script.Float(1))
	if sawNil {
		t.Error("present out-ref reached the native side as nil")
	}
	if min != 0 || max != 1 {
		t.Errorf("bounds = %g, %g", min, max)
	}

	// nil in the out-ref slot still leaves the trailing required args
	// addressable at their positions
	h.call(t, "slider", script.String("vol"), script.Nil, script.Float(2), script.Float(8))
	if !sawNil {
		t.Error("omitted out-ref should be a nil pointer")
	}
	if min != 2 || max != 8 {
		t.Errorf("bounds = %g, %g", min, max)
	}

	_, err := h.reg.Call(h.tr, "slider", []script.Value{
		script.String("vol"), script.Nil, script.Float(2),
	})
	var arity *ArityError
	if !errors.As(err, &arity) {
		t.Fatalf("missing v_max: %v", err)
	}
	if arity.Param != "v_max" || arity.Index != 3 {
		t.Errorf("ArityError = %+v", arity)
	}
}

func TestDuplicateNamesRejectedAcrossKinds(t *testing.T) {
	reg := NewRegistry(NewSlotTable())
	reg.MustRegister(&Descriptor{Name: "f", Fn: func(*Invocation) {}})
	if err := reg.RegisterCallback("f", func([]script.Value) ([]script.Value, error) {
		return nil, nil
	}); err == nil {
		t.Error("callback reusing a descriptor name should fail")
	}
}

func TestNamesPreserveRegistrationOrder(t *testing.T) {
	reg := NewRegistry(NewSlotTable())
	reg.MustRegister(&Descriptor{Name: "b", Fn: func(*Invocation) {}})
	reg.MustRegister(&Descriptor{Name: "a", Fn: func(*Invocation) {}})
	if err := reg.RegisterCallback("c", func([]script.Value) ([]script.Value, error) {
		return nil, nil
	}); err != nil {
		t.Fatal(err)
	}
	names := reg.Names()
	want := []string{"b", "a", "c"}
	if len(names) != len(want) {
		t.Fatalf("Names = %v", names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Names[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}
