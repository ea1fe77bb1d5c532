package cloud

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/kulturkompass/wortwolke/pkg/errors"
)

func TestValidateItems(t *testing.T) {
	tests := []struct {
		name     string
		items    []Item
		wantCode errors.Code
	}{
		{"nil list", nil, ""},
		{"valid list", []Item{{ID: "a", Value: 1}, {ID: "b", Value: 0}}, ""},
		{"all equal values", []Item{{ID: "a", Value: 5}, {ID: "b", Value: 5}}, ""},
		{"empty id", []Item{{ID: "", Text: "Museen"}}, errors.ErrCodeInvalidItem},
		{"duplicate id", []Item{{ID: "a"}, {ID: "a"}}, errors.ErrCodeDuplicateItem},
		{"negative value", []Item{{ID: "a", Value: -1}}, errors.ErrCodeInvalidItem},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateItems(tt.items)
			if tt.wantCode == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if errors.GetCode(err) != tt.wantCode {
				t.Errorf("error code = %v, want %v", errors.GetCode(err), tt.wantCode)
			}
		})
	}
}

func TestValidateContainer(t *testing.T) {
	if err := ValidateContainer(Container{Width: 800, Height: 500}); err != nil {
		t.Errorf("valid container rejected: %v", err)
	}
	if err := ValidateContainer(Container{}); err != nil {
		t.Errorf("zero-area container rejected: %v", err)
	}
	err := ValidateContainer(Container{Width: -1, Height: 500})
	if errors.GetCode(err) != errors.ErrCodeInvalidContainer {
		t.Errorf("negative width: code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidContainer)
	}
}

func TestConfigNormalize(t *testing.T) {
	if got := (Config{}).Normalize(); !reflect.DeepEqual(got, DefaultConfig()) {
		t.Errorf("zero config normalized to %+v, want defaults", got)
	}

	partial := Config{MinSpacing: 12, Seed: 7}.Normalize()
	if partial.MinSpacing != 12 || partial.Seed != 7 {
		t.Errorf("explicit fields clobbered: %+v", partial)
	}
	if partial.FontSize.Min != DefaultFontMin || partial.MaxRadius != DefaultMaxRadius {
		t.Errorf("zero fields not filled: %+v", partial)
	}
}

func TestLayoutRoundTrip(t *testing.T) {
	l := Layout{
		Container: Container{Width: 800, Height: 500},
		Placed: []PlacedItem{
			{SizedItem: SizedItem{Item: Item{ID: "a", Text: "Museen", Value: 10}, FontSize: 24, Width: 100, Height: 48}, X: 400, Y: 250},
		},
		Diagnostics: Diagnostics{Algorithm: "spiral", PlacedCount: 1, TotalCount: 1, Seed: 42},
	}

	data, err := MarshalLayout(l)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	got, err := UnmarshalLayout(data)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(got, l) {
		t.Errorf("round trip changed layout: %+v vs %+v", got, l)
	}
}

func TestUnmarshalLayoutCountMismatch(t *testing.T) {
	data := []byte(`{"container":{"width":800,"height":500},"placed":[],"diagnostics":{"placed_count":3,"total_count":3}}`)
	if _, err := UnmarshalLayout(data); err == nil {
		t.Fatal("inconsistent placed count accepted")
	}
}

func TestLayoutFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.json")
	l := Layout{
		Container:   Container{Width: 400, Height: 300},
		Diagnostics: Diagnostics{Algorithm: "force"},
	}
	if err := WriteLayoutFile(l, path); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := ReadLayoutFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got.Container != l.Container || got.Diagnostics.Algorithm != "force" {
		t.Errorf("file round trip changed layout: %+v", got)
	}
}

func TestReadItemsFileBareArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.json")
	body := `[{"id":"a","text":"Museen","value":10},{"id":"b","text":"Konzerte","value":5}]`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	items, err := ReadItemsFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(items) != 2 || items[0].ID != "a" || items[1].Value != 5 {
		t.Errorf("items = %+v", items)
	}
}

func TestReadItemsFileWrappedObject(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.json")
	body := `{"items":[{"id":"a","text":"Museen","value":10}]}`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	items, err := ReadItemsFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(items) != 1 || items[0].Text != "Museen" {
		t.Errorf("items = %+v", items)
	}
}

func TestReadItemsFileRejectsInvalidItems(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.json")
	body := `[{"id":"a","value":1},{"id":"a","value":2}]`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadItemsFile(path); errors.GetCode(err) != errors.ErrCodeDuplicateItem {
		t.Errorf("duplicate ids: error = %v", err)
	}
}

func TestDiagnosticsDegraded(t *testing.T) {
	if (Diagnostics{PlacedCount: 8, TotalCount: 8}).Degraded() {
		t.Error("full placement reported as degraded")
	}
	if !(Diagnostics{PlacedCount: 5, TotalCount: 8}).Degraded() {
		t.Error("partial placement not reported as degraded")
	}
}
