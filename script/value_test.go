package script

import (
	"image"
	"testing"
)

func TestKindTags(t *testing.T) {
	cases := []struct {
		v    Value
		want Kind
	}{
		{Nil, KindNil},
		{Bool(true), KindBool},
		{Int(7), KindInt},
		{Float(1.5), KindFloat},
		{String("x"), KindString},
		{Vec2(1, 2), KindVec2},
		{Vec4(1, 2, 3, 4), KindVec4},
		{List(Int(1)), KindList},
		{MapOf(map[string]Value{"k": Int(1)}), KindMap},
		{FromImage(image.NewRGBA(image.Rect(0, 0, 1, 1))), KindImage},
		{Handle("tex"), KindHandle},
	}
	for _, c := range cases {
		if c.v.Kind() != c.want {
			t.Errorf("Kind() = %s, want %s", c.v.Kind(), c.want)
		}
	}
}

func TestZeroValueIsNil(t *testing.T) {
	var v Value
	if !v.IsNil() {
		t.Error("zero Value should be nil")
	}
}

func TestTryIntAcceptsIntegralFloat(t *testing.T) {
	if n, ok := Float(42).TryInt(); !ok || n != 42 {
		t.Errorf("TryInt(42.0) = %d, %v", n, ok)
	}
	if _, ok := Float(42.5).TryInt(); ok {
		t.Error("TryInt(42.5) should fail: precision loss")
	}
	if _, ok := String("42").TryInt(); ok {
		t.Error("TryInt on a string should never succeed")
	}
}

func TestTryFloatAcceptsExactInt(t *testing.T) {
	if f, ok := Int(3).TryFloat(); !ok || f != 3.0 {
		t.Errorf("TryFloat(3) = %g, %v", f, ok)
	}
	// 2^53+1 is the first integer float64 cannot represent.
	if _, ok := Int(1<<53 + 1).TryFloat(); ok {
		t.Error("TryFloat(2^53+1) should fail: precision loss")
	}
}

func TestTryStringRejectsNumbers(t *testing.T) {
	if _, ok := Int(1).TryString(); ok {
		t.Error("TryString on an int should never succeed")
	}
	if s, ok := String("hi").TryString(); !ok || s != "hi" {
		t.Errorf("TryString = %q, %v", s, ok)
	}
}

func TestTryVec2FromList(t *testing.T) {
	v, ok := List(Int(3), Float(4.5)).TryVec2()
	if !ok {
		t.Fatal("a pair of numbers should convert to vec2")
	}
	if v[0] != 3 || v[1] != 4.5 {
		t.Errorf("vec2 = %v", v)
	}

	if _, ok := List(Int(1), Int(2), Int(3)).TryVec2(); ok {
		t.Error("a triple should not convert to vec2")
	}
	if _, ok := List(Int(1), String("2")).TryVec2(); ok {
		t.Error("a list with a string should not convert to vec2")
	}
}

func TestTryVec4FromList(t *testing.T) {
	v, ok := List(Int(1), Int(2), Int(3), Int(4)).TryVec4()
	if !ok || v != [4]float64{1, 2, 3, 4} {
		t.Errorf("vec4 = %v, %v", v, ok)
	}
	if _, ok := Vec2(1, 2).TryVec4(); ok {
		t.Error("vec2 should not convert to vec4")
	}
}

func TestTryHandlePassesPayloadThrough(t *testing.T) {
	type texture struct{ id int }
	tex := &texture{id: 9}
	h, ok := Handle(tex).TryHandle()
	if !ok || h != tex {
		t.Errorf("TryHandle = %v, %v", h, ok)
	}
}

func TestEqualDeep(t *testing.T) {
	a := List(Int(1), MapOf(map[string]Value{"k": Vec2(1, 2)}))
	b := List(Int(1), MapOf(map[string]Value{"k": Vec2(1, 2)}))
	if !Equal(a, b) {
		t.Error("structurally equal values should compare equal")
	}
	c := List(Int(1), MapOf(map[string]Value{"k": Vec2(1, 3)}))
	if Equal(a, c) {
		t.Error("different nested values should not compare equal")
	}
	if Equal(Int(1), Float(1)) {
		t.Error("int and float values are different kinds")
	}
}
