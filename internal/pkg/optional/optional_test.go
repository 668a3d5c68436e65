package optional

import (
	"encoding/json"
	"testing"
)

type payload struct {
	Name   Field[string]   `json:"name"`
	Active Field[FlexBool] `json:"active"`
}

func TestField_Absent(t *testing.T) {
	var p payload
	if err := json.Unmarshal([]byte(`{}`), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if p.Name.Present() {
		t.Error("expected absent name to report Present() == false")
	}
	if _, ok := p.Name.Get(); ok {
		t.Error("expected Get() to report no value for an absent key")
	}
}

func TestField_Null(t *testing.T) {
	var p payload
	if err := json.Unmarshal([]byte(`{"name": null}`), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !p.Name.Present() {
		t.Error("expected explicit null to report Present() == true")
	}
	if _, ok := p.Name.Get(); ok {
		t.Error("expected Get() to report no value for an explicit null")
	}
}

func TestField_Value(t *testing.T) {
	var p payload
	if err := json.Unmarshal([]byte(`{"name": "Ana"}`), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	got, ok := p.Name.Get()
	if !ok {
		t.Fatal("expected Get() to return the decoded value")
	}
	if got != "Ana" {
		t.Errorf("expected %q, got %q", "Ana", got)
	}
}

func TestField_Constructors(t *testing.T) {
	f := Of("x")
	if v, ok := f.Get(); !ok || v != "x" {
		t.Errorf("Of: expected (%q, true), got (%q, %v)", "x", v, ok)
	}

	n := Null[string]()
	if !n.Present() {
		t.Error("Null: expected Present() == true")
	}
	if _, ok := n.Get(); ok {
		t.Error("Null: expected Get() to report no value")
	}
}

func TestFlexBool(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{`{"active": true}`, true},
		{`{"active": false}`, false},
		{`{"active": "true"}`, true},
		{`{"active": "FALSE"}`, false},
		{`{"active": " 1 "}`, true},
	}

	for _, tc := range cases {
		var p payload
		if err := json.Unmarshal([]byte(tc.in), &p); err != nil {
			t.Errorf("unmarshal %s: %v", tc.in, err)
			continue
		}
		got, ok := p.Active.Get()
		if !ok {
			t.Errorf("unmarshal %s: expected a value", tc.in)
			continue
		}
		if bool(got) != tc.want {
			t.Errorf("unmarshal %s: expected %v, got %v", tc.in, tc.want, bool(got))
		}
	}
}

func TestFlexBool_Invalid(t *testing.T) {
	for _, in := range []string{`{"active": "maybe"}`, `{"active": 3}`} {
		var p payload
		if err := json.Unmarshal([]byte(in), &p); err == nil {
			t.Errorf("unmarshal %s: expected error, got nil", in)
		}
	}
}
