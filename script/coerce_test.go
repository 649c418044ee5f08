package script

import (
	"errors"
	"testing"
)

func TestToStringMismatch(t *testing.T) {
	_, err := ToString(Int(5))
	if err == nil {
		t.Fatal("ToString(int) should fail")
	}
	var mismatch *MismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("error type = %T", err)
	}
	if mismatch.Want != "string" || mismatch.Got != KindInt {
		t.Errorf("mismatch = %+v", mismatch)
	}
}

func TestScalarRoundTrips(t *testing.T) {
	// pushing a scalar and extracting it again yields the original
	values := []Value{Bool(true), Bool(false), Int(-12345), Float(3.25), String("héllo")}
	for _, v := range values {
		pushed := PushNative(v)
		if len(pushed) != 1 {
			t.Fatalf("PushNative(%#v) pushed %d values", v, len(pushed))
		}
		if !Equal(pushed[0], v) {
			t.Errorf("round trip changed %#v to %#v", v, pushed[0])
		}
	}
}

func TestPushNativeExplodesComposites(t *testing.T) {
	out := PushNative(Vec2(3, 4))
	if len(out) != 2 {
		t.Fatalf("vec2 pushed %d values, want 2", len(out))
	}
	if f, _ := out[0].TryFloat(); f != 3 {
		t.Errorf("x = %#v", out[0])
	}
	if f, _ := out[1].TryFloat(); f != 4 {
		t.Errorf("y = %#v", out[1])
	}

	out = PushNative(Vec4(1, 2, 3, 4))
	if len(out) != 4 {
		t.Fatalf("vec4 pushed %d values, want 4", len(out))
	}
	for i, want := range []float64{1, 2, 3, 4} {
		if f, _ := out[i].TryFloat(); f != want {
			t.Errorf("component %d = %#v, want %g", i, out[i], want)
		}
	}
}

func TestPushNativeNilPushesNothing(t *testing.T) {
	if out := PushNative(Nil); len(out) != 0 {
		t.Errorf("nil pushed %d values", len(out))
	}
}

func TestVecRoundTripThroughComponents(t *testing.T) {
	// component-wise push, list re-entry, vector extraction
	pushed := PushNative(Vec2(1.5, -2))
	back, ok := List(pushed...).TryVec2()
	if !ok || back != [2]float64{1.5, -2} {
		t.Errorf("vec2 round trip = %v, %v", back, ok)
	}
}

func TestReprCanonicalForm(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{Nil, "null"},
		{Bool(true), "true"},
		{Int(7), "7"},
		{String("x"), `"x"`},
		{Vec2(1, 2), "[1,2]"},
		{List(Int(1), String("a")), `[1,"a"]`},
		{MapOf(map[string]Value{"b": Int(2), "a": Int(1)}), `{"a":1,"b":2}`},
	}
	for _, c := range cases {
		got, err := c.v.Repr()
		if err != nil {
			t.Errorf("Repr(%#v) failed: %v", c.v, err)
			continue
		}
		if got != c.want {
			t.Errorf("Repr(%#v) = %s, want %s", c.v, got, c.want)
		}
	}
}

func TestReprRejectsOpaqueValues(t *testing.T) {
	if _, err := Handle(struct{}{}).Repr(); err == nil {
		t.Error("handles should have no canonical representation")
	}
}
