package annotate_test

import (
	"errors"
	"os"
	"testing"

	"playtally/internal/annotate"
)

func TestWrapTagsMarker(t *testing.T) {
	err := annotate.Wrap(annotate.ErrDecode, "annotate", "decode file", "", os.ErrInvalid)
	if !errors.Is(err, annotate.ErrDecode) {
		t.Fatalf("marker lost: %v", err)
	}
	if !errors.Is(err, os.ErrInvalid) {
		t.Fatalf("cause lost: %v", err)
	}
}

func TestWrapBuildsDetail(t *testing.T) {
	err := annotate.Wrap(annotate.ErrIO, "annotate", "write file", "/tmp/a.m3u", nil)
	want := "io error: annotate: write file: /tmp/a.m3u"
	if err.Error() != want {
		t.Fatalf("got %q, want %q", err.Error(), want)
	}
}

func TestWrapDefaultsMarker(t *testing.T) {
	err := annotate.Wrap(nil, "", "", "", nil)
	if !errors.Is(err, annotate.ErrIO) {
		t.Fatalf("expected ErrIO default, got %v", err)
	}
	if err.Error() != "io error: run failure" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}
