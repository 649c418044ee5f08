package assets

import (
	"bytes"
	"image"
	"testing"

	"github.com/hollis/imscript/script"
)

func TestSnapshotRoundTrip(t *testing.T) {
	svc := NewService(&fakeResolver{}, StdCodec{}, WithSourceName("Scratch"))

	if _, err := svc.MakeAsset("/temp/a.txt", script.String("hello")); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.MakeAsset("/temp/b.png", script.FromImage(image.NewRGBA(image.Rect(0, 0, 3, 5)))); err != nil {
		t.Fatal(err)
	}

	data, err := svc.Snapshot()
	if err != nil {
		t.Fatal(err)
	}
	snap, err := DecodeSnapshot(data)
	if err != nil {
		t.Fatal(err)
	}
	if snap.Name != "temp" || snap.Metadata["name"] != "Scratch" {
		t.Errorf("snapshot header = %q, %v", snap.Name, snap.Metadata)
	}
	if len(snap.Entries) != 2 {
		t.Fatalf("entries = %v", snap.Entries)
	}
	// Paths() is sorted, so entry order is deterministic
	if e := snap.Entries[0]; e.Path != "/temp/a.txt" || e.Kind != "bytes" || e.Size != 5 {
		t.Errorf("entry 0 = %+v", e)
	}
	if e := snap.Entries[1]; e.Path != "/temp/b.png" || e.Kind != "image" || e.Width != 3 || e.Height != 5 {
		t.Errorf("entry 1 = %+v", e)
	}
}

func TestSnapshotDeterministic(t *testing.T) {
	svc := NewService(&fakeResolver{}, StdCodec{})
	for _, p := range []string{"/temp/c", "/temp/a", "/temp/b"} {
		if _, err := svc.MakeAsset(p, script.String(p)); err != nil {
			t.Fatal(err)
		}
	}

	first, err := svc.Snapshot()
	if err != nil {
		t.Fatal(err)
	}
	second, err := svc.Snapshot()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, second) {
		t.Error("snapshots of an unchanged store differ")
	}
}

func TestDecodeSnapshotRejectsGarbage(t *testing.T) {
	if _, err := DecodeSnapshot([]byte("not cbor at all")); err == nil {
		t.Error("garbage input should fail")
	}
}
