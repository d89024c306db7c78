package catalog

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func sampleLibrary() *Library {
	return &Library{
		Categories: []Category{
			{
				Name: "Drama",
				Series: []Series{
					{
						Title: "The Wire",
						Seasons: []Season{
							{Number: 1, Episodes: []Episode{
								{Code: "S01E01", Title: "The Target", Duration: 62 * time.Minute},
								{Code: "S01E02", Title: "The Detail", Duration: 58 * time.Minute},
							}},
						},
					},
				},
			},
			{
				Name: "Anime",
				Series: []Series{
					{
						Title: "進撃の巨人",
						Seasons: []Season{
							{Number: 1, Episodes: []Episode{
								{Code: "S01E01", Title: "To You, in 2000 Years", Duration: 24 * time.Minute},
							}},
						},
					},
				},
			},
		},
	}
}

func TestBuildIndexFlattens(t *testing.T) {
	lib := sampleLibrary()
	idx := BuildIndex(lib)

	// 2 category headers + 3 episodes
	if idx.Len() != 5 {
		t.Fatalf("Expected 5 entries, got %d", idx.Len())
	}

	e0, _ := idx.At(0)
	if e0.Kind != EntryCategory {
		t.Errorf("Entry 0: expected category, got %v", e0.Kind)
	}
	e1, _ := idx.At(1)
	if e1.Kind != EntryEpisode {
		t.Errorf("Entry 1: expected episode, got %v", e1.Kind)
	}
	if ep := idx.Episode(e1); ep == nil || ep.Code != "S01E01" {
		t.Errorf("Entry 1: expected S01E01, got %+v", ep)
	}

	e3, _ := idx.At(3)
	if e3.Kind != EntryCategory || e3.Cat != 1 {
		t.Errorf("Entry 3: expected second category header, got %+v", e3)
	}
}

func TestIndexAtOutOfRange(t *testing.T) {
	idx := BuildIndex(sampleLibrary())
	if _, ok := idx.At(-1); ok {
		t.Error("Expected false for negative index")
	}
	if _, ok := idx.At(idx.Len()); ok {
		t.Error("Expected false past end")
	}
}

func TestToggleWatched(t *testing.T) {
	lib := sampleLibrary()
	idx := BuildIndex(lib)

	if !idx.ToggleWatched(1) {
		t.Fatal("Expected toggle to succeed on episode row")
	}
	if !lib.Categories[0].Series[0].Seasons[0].Episodes[0].Watched {
		t.Error("Expected watched flag set in library")
	}

	// Category rows and bad indices are no-ops
	if idx.ToggleWatched(0) {
		t.Error("Expected toggle to fail on category row")
	}
	if idx.ToggleWatched(99) {
		t.Error("Expected toggle to fail out of range")
	}
}

func TestDeleteEpisode(t *testing.T) {
	lib := sampleLibrary()
	idx := BuildIndex(lib)

	if !idx.Delete(1) {
		t.Fatal("Expected delete to succeed")
	}
	eps := lib.Categories[0].Series[0].Seasons[0].Episodes
	if len(eps) != 1 || eps[0].Code != "S01E02" {
		t.Errorf("Expected only S01E02 left, got %+v", eps)
	}

	// Rebuild and verify shrinkage
	idx = BuildIndex(lib)
	if idx.Len() != 4 {
		t.Errorf("Expected 4 entries after delete, got %d", idx.Len())
	}
}

func TestRename(t *testing.T) {
	lib := sampleLibrary()
	idx := BuildIndex(lib)

	if !idx.Rename(2, "New Title") {
		t.Fatal("Expected rename to succeed")
	}
	if got := lib.Categories[0].Series[0].Seasons[0].Episodes[1].Title; got != "New Title" {
		t.Errorf("Expected renamed title, got %q", got)
	}
	if idx.Rename(0, "x") {
		t.Error("Expected rename to fail on category row")
	}
}

func TestLoadMissingFileIsEmpty(t *testing.T) {
	lib, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Expected no error for missing file, got %v", err)
	}
	if len(lib.Categories) != 0 {
		t.Errorf("Expected empty library")
	}
}

func TestLoadMalformedFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	os.WriteFile(path, []byte("categories = [[[broken"), 0o644)
	if _, err := Load(path); err == nil {
		t.Error("Expected error for malformed file")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lib.toml")
	lib := sampleLibrary()

	if err := lib.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(loaded.Categories) != 2 {
		t.Fatalf("Expected 2 categories, got %d", len(loaded.Categories))
	}
	ep := loaded.Categories[0].Series[0].Seasons[0].Episodes[0]
	if ep.Code != "S01E01" || ep.Duration != 62*time.Minute {
		t.Errorf("Round trip mismatch: %+v", ep)
	}
	if loaded.Categories[1].Series[0].Title != "進撃の巨人" {
		t.Errorf("Unicode title lost: %q", loaded.Categories[1].Series[0].Title)
	}
}
