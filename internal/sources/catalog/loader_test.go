package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoaderLoad(t *testing.T) {
	tmpDir := t.TempDir()
	yamlPath := filepath.Join(tmpDir, "locations.yaml")

	yamlContent := `---
cities:
  kyoto:
    - id: fushimi-inari
      name: Fushimi Inari Taisha
      category: shrine
      rating: 4.7
      reviews: 52000
      visit_minutes: 120
      hours:
        - day: monday
          open: "06:00"
          close: "17:30"
    - name: Sunrise Café
      category: cafe
      serves_breakfast: true
`

	if err := os.WriteFile(yamlPath, []byte(yamlContent), 0o644); err != nil {
		t.Fatalf("Failed to create test YAML file: %v", err)
	}

	loader := NewLoader(yamlPath)
	file, err := loader.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	entries, ok := file.Cities["kyoto"]
	if !ok {
		t.Fatal("Load() missing kyoto city")
	}
	if len(entries) != 2 {
		t.Fatalf("Load() returned %d entries, want 2", len(entries))
	}
	if entries[0].ID != "fushimi-inari" {
		t.Errorf("first entry id = %q, want fushimi-inari", entries[0].ID)
	}
	if entries[1].ServesBreakfast == nil || !*entries[1].ServesBreakfast {
		t.Error("serves_breakfast: true should parse as an explicit yes")
	}
	if entries[0].ServesBreakfast != nil {
		t.Error("absent serves_breakfast should stay nil (unknown)")
	}
}

func TestLoaderLoadMissingFile(t *testing.T) {
	loader := NewLoader(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if _, err := loader.Load(); err == nil {
		t.Error("Load() should fail for a missing file")
	}
}

func TestLoaderLoadInvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	yamlPath := filepath.Join(tmpDir, "locations.yaml")

	if err := os.WriteFile(yamlPath, []byte("cities: [unclosed"), 0o644); err != nil {
		t.Fatalf("Failed to create test YAML file: %v", err)
	}

	loader := NewLoader(yamlPath)
	if _, err := loader.Load(); err == nil {
		t.Error("Load() should fail for malformed YAML")
	}
}
