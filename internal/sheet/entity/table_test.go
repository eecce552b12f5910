package entity

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestFormatFromExt(t *testing.T) {
	t.Parallel()

	cases := map[string]Format{
		".csv":  FormatCSV,
		".CSV":  FormatCSV,
		".xls":  FormatXLS,
		".XLS":  FormatXLS,
		".xlsx": FormatXLSX,
		".XlSx": FormatXLSX,
		".txt":  FormatUnknown,
		".pdf":  FormatUnknown,
		"":      FormatUnknown,
	}

	for ext, want := range cases {
		if got := FormatFromExt(ext); got != want {
			t.Fatalf("FormatFromExt(%q) = %q, want %q", ext, got, want)
		}
	}
}

func TestFormatKind(t *testing.T) {
	t.Parallel()

	if !FormatCSV.Delimited() || FormatCSV.Workbook() {
		t.Fatal("FormatCSV should be delimited only")
	}
	if !FormatXLS.Workbook() || FormatXLS.Delimited() {
		t.Fatal("FormatXLS should be workbook only")
	}
	if !FormatXLSX.Workbook() {
		t.Fatal("FormatXLSX should be workbook")
	}
	if FormatUnknown.Delimited() || FormatUnknown.Workbook() {
		t.Fatal("FormatUnknown should be neither")
	}
}

func TestRowAccessors(t *testing.T) {
	t.Parallel()

	row := Row{
		{Column: "name", Value: "alice"},
		{Column: "age", Value: "30"},
	}

	if got, ok := row.Get("name"); !ok || got != "alice" {
		t.Fatalf("Get(name) = %q/%v, want alice/true", got, ok)
	}
	if _, ok := row.Get("missing"); ok {
		t.Fatal("Get(missing) should report absence")
	}
	if got := row.Columns(); !reflect.DeepEqual(got, []string{"name", "age"}) {
		t.Fatalf("Columns() = %#v", got)
	}
}

func TestRowMarshalKeepsColumnOrder(t *testing.T) {
	t.Parallel()

	// Keys chosen so alphabetical order differs from source order.
	row := Row{
		{Column: "zeta", Value: "1"},
		{Column: "alpha", Value: "2"},
		{Column: "mid", Value: "3"},
	}

	data, err := json.Marshal(row)
	if err != nil {
		t.Fatalf("Marshal() err = %v", err)
	}

	want := `{"zeta":"1","alpha":"2","mid":"3"}`
	if string(data) != want {
		t.Fatalf("Marshal() = %s, want %s", data, want)
	}
}

func TestRowMarshalEscapesValues(t *testing.T) {
	t.Parallel()

	row := Row{{Column: `quote"col`, Value: "line\nbreak"}}

	data, err := json.Marshal(row)
	if err != nil {
		t.Fatalf("Marshal() err = %v", err)
	}

	var decoded map[string]string
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() err = %v", err)
	}
	if decoded[`quote"col`] != "line\nbreak" {
		t.Fatalf("unexpected decoded row: %#v", decoded)
	}
}

func TestTableMarshalDelimited(t *testing.T) {
	t.Parallel()

	tbl := Table{
		Format: FormatCSV,
		Rows: []Row{
			{{Column: "a", Value: "1"}, {Column: "b", Value: "2"}},
			{{Column: "a", Value: "3"}, {Column: "b", Value: "4"}},
		},
	}

	data, err := json.Marshal(tbl)
	if err != nil {
		t.Fatalf("Marshal() err = %v", err)
	}

	want := `[{"a":"1","b":"2"},{"a":"3","b":"4"}]`
	if string(data) != want {
		t.Fatalf("Marshal() = %s, want %s", data, want)
	}
}

func TestTableMarshalEmptyDelimited(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(Table{Format: FormatCSV})
	if err != nil {
		t.Fatalf("Marshal() err = %v", err)
	}
	if string(data) != `[]` {
		t.Fatalf("Marshal() = %s, want []", data)
	}
}

func TestTableMarshalWorkbookKeepsSheetOrder(t *testing.T) {
	t.Parallel()

	tbl := Table{
		Format: FormatXLSX,
		Sheets: []Sheet{
			{Name: "Zebra", Rows: []Row{{{Column: "x", Value: "1"}}}},
			{Name: "Alpha", Rows: nil},
		},
	}

	data, err := json.Marshal(tbl)
	if err != nil {
		t.Fatalf("Marshal() err = %v", err)
	}

	want := `{"Zebra":[{"x":"1"}],"Alpha":[]}`
	if string(data) != want {
		t.Fatalf("Marshal() = %s, want %s", data, want)
	}
}

func TestTableTotalRows(t *testing.T) {
	t.Parallel()

	delimited := Table{Format: FormatCSV, Rows: []Row{{}, {}}}
	if got := delimited.TotalRows(); got != 2 {
		t.Fatalf("TotalRows() = %d, want 2", got)
	}

	workbook := Table{
		Format: FormatXLSX,
		Sheets: []Sheet{
			{Name: "One", Rows: []Row{{}, {}, {}}},
			{Name: "Two", Rows: []Row{{}}},
		},
	}
	if got := workbook.TotalRows(); got != 4 {
		t.Fatalf("TotalRows() = %d, want 4", got)
	}
}
