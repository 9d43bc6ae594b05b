package ir

import (
	"testing"
)

func obj(kvs ...KeyVal) *Node {
	return FromKeyVals(kvs)
}

func kv(k string, v *Node) KeyVal {
	return KeyVal{Key: k, Val: v}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b *Node
		eq   bool
	}{
		{"null", Null(), Null(), true},
		{"null vs false", Null(), FromBool(false), false},
		{"bool", FromBool(true), FromBool(true), true},
		{"bool neq", FromBool(true), FromBool(false), false},
		{"int", FromInt(3), FromInt(3), true},
		{"int neq", FromInt(3), FromInt(4), false},
		{"float", FromFloat(1.5), FromFloat(1.5), true},
		{"int vs float", FromInt(1), FromFloat(1), false},
		{"big literal", FromNumber("1e999"), FromNumber("1e999"), true},
		{"string", FromString("a"), FromString("a"), true},
		{"array", FromSlice([]*Node{FromInt(1), FromInt(2)}),
			FromSlice([]*Node{FromInt(1), FromInt(2)}), true},
		{"array order", FromSlice([]*Node{FromInt(1), FromInt(2)}),
			FromSlice([]*Node{FromInt(2), FromInt(1)}), false},
		{"array len", FromSlice([]*Node{FromInt(1)}),
			FromSlice([]*Node{FromInt(1), FromInt(2)}), false},
		{"object", obj(kv("a", FromInt(1)), kv("b", FromInt(2))),
			obj(kv("a", FromInt(1)), kv("b", FromInt(2))), true},
		{"object key order ignored", obj(kv("a", FromInt(1)), kv("b", FromInt(2))),
			obj(kv("b", FromInt(2)), kv("a", FromInt(1))), true},
		{"object value neq", obj(kv("a", FromInt(1))), obj(kv("a", FromInt(2))), false},
		{"object key neq", obj(kv("a", FromInt(1))), obj(kv("b", FromInt(1))), false},
		{"object size neq", obj(kv("a", FromInt(1))),
			obj(kv("a", FromInt(1)), kv("b", FromInt(2))), false},
		{"nested", obj(kv("a", FromSlice([]*Node{obj(kv("b", Null()))}))),
			obj(kv("a", FromSlice([]*Node{obj(kv("b", Null()))}))), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.eq {
				t.Errorf("Equal = %v, want %v", got, tt.eq)
			}
			if got := Equal(tt.b, tt.a); got != tt.eq {
				t.Errorf("Equal reversed = %v, want %v", got, tt.eq)
			}
		})
	}
}

func TestEqualNil(t *testing.T) {
	if !Equal(nil, nil) {
		t.Error("Equal(nil, nil)")
	}
	if Equal(nil, Null()) || Equal(Null(), nil) {
		t.Error("nil equals a node")
	}
}
