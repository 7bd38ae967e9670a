package model

import (
	"encoding/json"
	"testing"
)

func TestOptional_UnmarshalJSON(t *testing.T) {
	type patch struct {
		Title       Optional[string] `json:"title"`
		Description Optional[string] `json:"description"`
		IsFeatured  Optional[bool]   `json:"isFeatured"`
	}

	tests := []struct {
		name     string
		body     string
		wantSet  [3]bool
		wantNull [3]bool
	}{
		{"absent", `{}`, [3]bool{}, [3]bool{}},
		{"empty string is present", `{"description":""}`, [3]bool{false, true, false}, [3]bool{}},
		{"false is present", `{"isFeatured":false}`, [3]bool{false, false, true}, [3]bool{}},
		{"explicit null", `{"title":null}`, [3]bool{true, false, false}, [3]bool{true, false, false}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var p patch
			if err := json.Unmarshal([]byte(tc.body), &p); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			gotSet := [3]bool{p.Title.Set, p.Description.Set, p.IsFeatured.Set}
			gotNull := [3]bool{p.Title.Null, p.Description.Null, p.IsFeatured.Null}
			if gotSet != tc.wantSet {
				t.Errorf("Set = %v; want %v", gotSet, tc.wantSet)
			}
			if gotNull != tc.wantNull {
				t.Errorf("Null = %v; want %v", gotNull, tc.wantNull)
			}
		})
	}
}

func TestOptional_Get(t *testing.T) {
	if _, ok := (Optional[int]{}).Get(); ok {
		t.Error("absent optional should not report a value")
	}
	if _, ok := Null[int]().Get(); ok {
		t.Error("null optional should not report a value")
	}
	if v, ok := Some(3).Get(); !ok || v != 3 {
		t.Errorf("Some(3).Get() = %d, %v", v, ok)
	}
}

func TestOptional_MarshalJSONOmitsAbsent(t *testing.T) {
	type patch struct {
		Title Optional[string] `json:"title,omitzero"`
		Desc  Optional[string] `json:"description,omitzero"`
		Tags  Optional[Tags]   `json:"tags,omitzero"`
	}
	b, err := json.Marshal(patch{Title: Some("x"), Desc: Null[string]()})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if got, want := string(b), `{"title":"x","description":null}`; got != want {
		t.Errorf("got %s; want %s", got, want)
	}
}
