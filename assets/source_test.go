package assets

import (
	"image"
	"testing"
)

func TestSourceBytesEntries(t *testing.T) {
	src := NewMemorySource("temp", nil)

	src.Set("/temp/a.txt", []byte("hello"))
	data, ok := src.Read("/temp/a.txt")
	if !ok || string(data) != "hello" {
		t.Fatalf("Read = %q, %v", data, ok)
	}
	if _, ok := src.Image("/temp/a.txt"); ok {
		t.Error("bytes entry should not read as an image")
	}
	if !src.Contains("/temp/a.txt") {
		t.Error("Contains = false")
	}
}

func TestSourceReadReturnsCopy(t *testing.T) {
	src := NewMemorySource("temp", nil)
	src.Set("/temp/a", []byte("stable"))

	data, _ := src.Read("/temp/a")
	data[0] = 'X'
	again, _ := src.Read("/temp/a")
	if string(again) != "stable" {
		t.Errorf("mutating the read result changed the store: %q", again)
	}
}

func TestSourceImageEntries(t *testing.T) {
	src := NewMemorySource("temp", nil)
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))

	src.SetImage("/temp/i.png", img)
	got, ok := src.Image("/temp/i.png")
	if !ok || got != image.Image(img) {
		t.Fatalf("Image = %v, %v", got, ok)
	}
	if _, ok := src.Read("/temp/i.png"); ok {
		t.Error("image entry should not read as bytes")
	}
}

func TestSourceReplaceChangesEntryKind(t *testing.T) {
	src := NewMemorySource("temp", nil)
	src.Set("/temp/x", []byte("bytes"))
	src.SetImage("/temp/x", image.NewRGBA(image.Rect(0, 0, 1, 1)))

	if _, ok := src.Read("/temp/x"); ok {
		t.Error("replaced entry still readable as bytes")
	}
	if _, ok := src.Image("/temp/x"); !ok {
		t.Error("replaced entry not readable as image")
	}
	if src.Len() != 1 {
		t.Errorf("Len = %d", src.Len())
	}
}

func TestSourceErase(t *testing.T) {
	src := NewMemorySource("temp", nil)
	src.Set("/temp/x", []byte("1"))

	if !src.Erase("/temp/x") {
		t.Error("erasing an existing entry reported false")
	}
	if src.Erase("/temp/x") {
		t.Error("erasing a missing entry reported true")
	}
	if src.Contains("/temp/x") {
		t.Error("entry survived erase")
	}
}

func TestSourcePathsSorted(t *testing.T) {
	src := NewMemorySource("temp", nil)
	src.Set("/temp/c", nil)
	src.Set("/temp/a", nil)
	src.Set("/temp/b", nil)

	paths := src.Paths()
	want := []string{"/temp/a", "/temp/b", "/temp/c"}
	if len(paths) != len(want) {
		t.Fatalf("Paths = %v", paths)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Errorf("Paths[%d] = %q, want %q", i, paths[i], want[i])
		}
	}
}

func TestSourceMetadataCopied(t *testing.T) {
	meta := map[string]string{"name": "Temporary Assets"}
	src := NewMemorySource("temp", meta)
	meta["name"] = "mutated"

	if src.Metadata()["name"] != "Temporary Assets" {
		t.Error("constructor shared the caller's metadata map")
	}
	out := src.Metadata()
	out["name"] = "mutated again"
	if src.Metadata()["name"] != "Temporary Assets" {
		t.Error("Metadata returned the internal map")
	}
}
