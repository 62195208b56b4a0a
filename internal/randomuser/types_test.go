package randomuser

import (
	"encoding/json"
	"testing"
)

func TestFlexValue_DecodesStringsNumbersAndNull(t *testing.T) {
	var v struct {
		A FlexValue `json:"a"`
		B FlexValue `json:"b"`
		C FlexValue `json:"c"`
	}
	if err := json.Unmarshal([]byte(`{"a": 90210, "b": "SW1A 1AA", "c": null}`), &v); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	if v.A != "90210" || v.B != "SW1A 1AA" || v.C != "" {
		t.Fatalf("decoded = %#v", v)
	}
}

func TestFlexValue_RejectsObjects(t *testing.T) {
	var v FlexValue
	if err := json.Unmarshal([]byte(`{"x": 1}`), &v); err == nil {
		t.Fatalf("Unmarshal returned nil error for object")
	}
}

func TestUserRecord_TrimsAndParsesDate(t *testing.T) {
	u := User{
		Name:  Name{First: " Leah ", Last: "Cruz "},
		Email: " leah@example.com",
		DOB:   DateOfBirth{Date: "not a date"},
	}
	rec := u.Record()
	if rec.FullName() != "Leah Cruz" || rec.Email != "leah@example.com" {
		t.Fatalf("record = %#v, want trimmed fields", rec)
	}
	if !rec.BirthDate.IsZero() {
		t.Fatalf("BirthDate = %v, want zero for unparseable input", rec.BirthDate)
	}
}
