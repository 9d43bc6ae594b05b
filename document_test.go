package jsonval

import (
	"bytes"
	"testing"

	"github.com/sqlgrid/jsonval/sqlerr"
)

func mustParse(t *testing.T, in string) *Document {
	t.Helper()
	d, err := Parse(in)
	if err != nil {
		t.Fatalf("Parse(%q): %v", in, err)
	}
	return d
}

func TestParseKeepsVerbatim(t *testing.T) {
	in := "{ \"a\" : 1 ,\n  \"b\" : [ true ] } // note"
	d := mustParse(t, in)
	if d.String() != in {
		t.Errorf("String() = %q, want the input back", d.String())
	}
	if d.EstimateByteSize() != len(in) {
		t.Errorf("EstimateByteSize() = %d, want %d", d.EstimateByteSize(), len(in))
	}
}

func TestParseInvalid(t *testing.T) {
	for _, in := range []string{``, `{`, `{"a"}`, `[1,]`, `"abc`, `hello`} {
		_, err := Parse(in)
		if err == nil {
			t.Errorf("Parse(%q): no error", in)
			continue
		}
		if !sqlerr.IsCode(err, sqlerr.InvalidJSONData) {
			t.Errorf("Parse(%q): error %v has no invalid-json code", in, err)
		}
	}
}

func TestParseBytes(t *testing.T) {
	data := []byte(`xxx{"a":1}yyy`)
	d, err := ParseBytes(data, 3, 7)
	if err != nil {
		t.Fatal(err)
	}
	if d.String() != `{"a":1}` {
		t.Errorf("got %q", d.String())
	}

	if _, err := ParseBytes(data, 10, 10); !sqlerr.IsCode(err, sqlerr.InvalidJSONData) {
		t.Errorf("out of range: %v", err)
	}
	if _, err := ParseBytes(data, -1, 4); !sqlerr.IsCode(err, sqlerr.InvalidJSONData) {
		t.Errorf("negative offset: %v", err)
	}
}

func TestExtractedText(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{`"hello"`, "hello", true},
		{`"a\nb"`, "a\nb", true},
		{`42`, "42", true},
		{`1.50`, "1.5", true},
		{`true`, "true", true},
		{`false`, "false", true},
		{`null`, "", false},
		{`[1,2]`, "[1,2]", true},
		{`{"a":1}`, `{"a":1}`, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			d := mustParse(t, tt.in)
			got, ok := d.ExtractedText()
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		eq   bool
	}{
		{"same text", `{"a":1}`, `{"a":1}`, true},
		{"whitespace differs", `{"a":1}`, `{ "a" : 1 }`, true},
		{"key order ignored", `{"a":1,"b":2}`, `{"b":2,"a":1}`, true},
		{"values differ", `{"a":1}`, `{"a":2}`, false},
		{"dup keys collapse", `{"a":1,"a":2}`, `{"a":2}`, true},
		{"int vs float", `1`, `1.0`, false},
		{"null vs absent", `{"a":null}`, `{}`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := mustParse(t, tt.a), mustParse(t, tt.b)
			if got := a.Equal(b); got != tt.eq {
				t.Errorf("Equal = %v, want %v", got, tt.eq)
			}
			if got := b.Equal(a); got != tt.eq {
				t.Errorf("Equal reversed = %v, want %v", got, tt.eq)
			}
			if tt.eq && a.Hash() != b.Hash() {
				t.Error("equal documents hash differently")
			}
		})
	}
}

func TestEqualNilAndSelf(t *testing.T) {
	d := mustParse(t, `{"a":1}`)
	if !d.Equal(d) {
		t.Error("self")
	}
	if d.Equal(nil) {
		t.Error("nil")
	}
}

func TestDerivedDocument(t *testing.T) {
	d := mustParse(t, `{ "a" : null , "b" : "xy" }`)

	sub, err := d.Resolve([]string{"a"})
	if err != nil {
		t.Fatal(err)
	}
	// a derived null renders canonically and still has a 1-byte footprint
	if sub.String() != "null" {
		t.Errorf("String() = %q", sub.String())
	}
	if sub.EstimateByteSize() != 1 {
		t.Errorf("EstimateByteSize() = %d, want 1", sub.EstimateByteSize())
	}

	sub, err = d.Resolve([]string{"b"})
	if err != nil {
		t.Fatal(err)
	}
	if sub.String() != `"xy"` {
		t.Errorf("String() = %q", sub.String())
	}
	if sub.EstimateByteSize() != 4 {
		t.Errorf("EstimateByteSize() = %d, want 4", sub.EstimateByteSize())
	}
}

func TestEncodeDocument(t *testing.T) {
	d := mustParse(t, "{ \"a\" : 1 } # pretty loose")
	buf := bytes.NewBuffer(nil)
	if err := Encode(d, buf); err != nil {
		t.Fatal(err)
	}
	if buf.String() != `{"a":1}` {
		t.Errorf("got %q", buf.String())
	}
}
