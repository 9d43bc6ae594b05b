package jsonval

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/sqlgrid/jsonval/sqlerr"
)

const nestedDoc = `{
	"f1": "abc",
	"f2": true,
	"f3": 2.5,
	"f4": {
		"f5": -253,
		"f6": [1, 2.4, "str", null],
		"f7": {"f8": "f8val"}
	},
	"f9": null
}`

func TestResolve(t *testing.T) {
	d := mustParse(t, nestedDoc)
	tests := []struct {
		name string
		path []string
		want string
	}{
		{"root", nil,
			`{"f1":"abc","f2":true,"f3":2.5,"f4":{"f5":-253,"f6":[1,2.4,"str",null],"f7":{"f8":"f8val"}},"f9":null}`},
		{"scalar", []string{"f1"}, `"abc"`},
		{"bool", []string{"f2"}, `true`},
		{"nested object", []string{"f4", "f7"}, `{"f8":"f8val"}`},
		{"nested scalar", []string{"f4", "f7", "f8"}, `"f8val"`},
		{"array", []string{"f4", "f6"}, `[1,2.4,"str",null]`},
		{"array index", []string{"f4", "f6", "1"}, `2.4`},
		{"null in array", []string{"f4", "f6", "3"}, `null`},
		{"null value", []string{"f9"}, `null`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub, err := d.Resolve(tt.path)
			if err != nil {
				t.Fatal(err)
			}
			if sub.String() != tt.want {
				t.Errorf("got %s, want %s", sub.String(), tt.want)
			}
		})
	}
}

func TestResolveMiss(t *testing.T) {
	d := mustParse(t, nestedDoc)
	tests := []struct {
		name     string
		path     []string
		segment  string
		resolved []string
	}{
		{"absent key", []string{"nope"}, "nope", nil},
		{"absent nested key", []string{"f4", "nope"}, "nope", []string{"f4"}},
		{"key under scalar", []string{"f1", "x"}, "x", []string{"f1"}},
		{"key under null", []string{"f9", "x"}, "x", []string{"f9"}},
		{"index out of range", []string{"f4", "f6", "9"}, "9", []string{"f4", "f6"}},
		{"negative index", []string{"f4", "f6", "-1"}, "-1", []string{"f4", "f6"}},
		{"non-numeric index", []string{"f4", "f6", "x"}, "x", []string{"f4", "f6"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := d.Resolve(tt.path)
			if err == nil {
				t.Fatal("no error")
			}
			if !sqlerr.IsCode(err, sqlerr.PathNotFound) {
				t.Errorf("error %v has no path-not-found code", err)
			}
			var perr *PathError
			if !errors.As(err, &perr) {
				t.Fatalf("error %v wraps no *PathError", err)
			}
			if perr.Segment != tt.segment {
				t.Errorf("segment %q, want %q", perr.Segment, tt.segment)
			}
			if diff := cmp.Diff(tt.resolved, perr.Resolved, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("resolved segments (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	d := mustParse(t, nestedDoc)

	sub, ok := d.Lookup([]string{"f4", "f5"})
	if !ok {
		t.Fatal("miss on present path")
	}
	if sub.String() != "-253" {
		t.Errorf("got %s", sub.String())
	}

	// null and absent are distinct
	sub, ok = d.Lookup([]string{"f9"})
	if !ok || sub == nil {
		t.Fatal("null value reported absent")
	}
	if sub.String() != "null" {
		t.Errorf("got %s", sub.String())
	}

	sub, ok = d.Lookup([]string{"nope"})
	if ok || sub != nil {
		t.Error("absent path reported present")
	}
}

func TestPathErrorMessage(t *testing.T) {
	d := mustParse(t, nestedDoc)
	_, err := d.Resolve([]string{"f4", "nope"})
	if err == nil {
		t.Fatal("no error")
	}
	msg := err.Error()
	for _, part := range []string{"nope", "f4"} {
		if !strings.Contains(msg, part) {
			t.Errorf("message %q omits %q", msg, part)
		}
	}
}
