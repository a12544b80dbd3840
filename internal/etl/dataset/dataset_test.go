package dataset_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ombaa/ombaa/internal/etl/dataset"
	"github.com/ombaa/ombaa/internal/etl/normalize"
)

func writeJSON(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeJSON(t, dir, "sites.json", `[{"name":"Zonnepark Almere"},{"name":"Solar Plant Delfzijl"}]`)

	sites, err := dataset.Load[normalize.Site](path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(sites) != 2 {
		t.Fatalf("Load() returned %d records, want 2", len(sites))
	}
	if sites[0].Name != "Zonnepark Almere" {
		t.Errorf("Name = %q, want %q", sites[0].Name, "Zonnepark Almere")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := dataset.Load[normalize.Site](filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("Load() on missing file returned nil error")
	}
}

func TestLoadMalformed(t *testing.T) {
	dir := t.TempDir()
	path := writeJSON(t, dir, "bad.json", `{"not":"an array"`)

	if _, err := dataset.Load[normalize.Site](path); err == nil {
		t.Fatal("Load() on malformed JSON returned nil error")
	}
}

func TestWriteRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.json")

	in := []normalize.Farm{{Name: "Hillside Sheep Farm", FlockSize: 420}}
	if err := dataset.Write(path, in); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	out, err := dataset.Load[normalize.Farm](path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(out) != 1 || out[0].Name != "Hillside Sheep Farm" || out[0].FlockSize != 420 {
		t.Errorf("round trip mismatch: %+v", out)
	}
}

func TestCombine(t *testing.T) {
	dir := t.TempDir()

	nl := writeJSON(t, dir, "nl.json", `[{"name":"A"},{"name":"B"},{"name":"C"}]`)
	uk := writeJSON(t, dir, "uk.json", `[{"name":"D"},{"name":"E"},{"name":"F"},{"name":"G"},{"name":"H"}]`)

	combined, err := dataset.Sites([]dataset.CountryFile{
		{Country: "NL", Path: nl},
		{Country: "UK", Path: uk},
	})
	if err != nil {
		t.Fatalf("Sites() error = %v", err)
	}

	if got := combined.Total(); got != 8 {
		t.Errorf("Total() = %d, want 8", got)
	}
	if combined.Counts["NL"] != 3 || combined.Counts["UK"] != 5 {
		t.Errorf("Counts = %v, want NL:3 UK:5", combined.Counts)
	}

	// Country order then per-file order.
	want := []string{"A", "B", "C", "D", "E", "F", "G", "H"}
	for i, name := range want {
		if combined.Records[i].Name != name {
			t.Fatalf("Records[%d].Name = %q, want %q", i, combined.Records[i].Name, name)
		}
	}
}

func TestCombineMissingInput(t *testing.T) {
	dir := t.TempDir()
	nl := writeJSON(t, dir, "nl.json", `[]`)

	_, err := dataset.Sites([]dataset.CountryFile{
		{Country: "NL", Path: nl},
		{Country: "UK", Path: filepath.Join(dir, "absent.json")},
	})
	if err == nil {
		t.Fatal("Sites() with missing input returned nil error")
	}
}
