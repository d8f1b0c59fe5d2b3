package pkgfile

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestSaveAndLoadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "items.json")
	in := map[string]int{"rose": 3, "tulip": 5}

	if err := SaveJSON(path, in); err != nil {
		t.Fatalf("SaveJSON: %v", err)
	}

	var out map[string]int
	ok, err := LoadJSON(path, &out)
	if err != nil {
		t.Fatalf("LoadJSON: %v", err)
	}
	if !ok {
		t.Fatalf("expected document to load")
	}
	if !reflect.DeepEqual(in, out) {
		t.Fatalf("unexpected value: %#v", out)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected temp files cleaned up, got %d entries", len(entries))
	}
}

func TestLoadJSONMissing(t *testing.T) {
	var out []string
	ok, err := LoadJSON(filepath.Join(t.TempDir(), "missing.json"), &out)
	if err != nil {
		t.Fatalf("LoadJSON: %v", err)
	}
	if ok || out != nil {
		t.Fatalf("expected missing file to load as empty")
	}
}

func TestLoadJSONCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	out := map[string]string{}
	ok, err := LoadJSON(path, &out)
	if err != nil {
		t.Fatalf("LoadJSON: %v", err)
	}
	if ok || len(out) != 0 {
		t.Fatalf("expected corrupt file to load as empty")
	}
}
