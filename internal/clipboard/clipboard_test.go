package clipboard

import (
	"context"
	"errors"
	"testing"
)

func TestStaticReader(t *testing.T) {
	r := StaticReader{Text: "https://youtu.be/abc"}
	got, err := r.ReadText(context.Background())
	if err != nil {
		t.Fatalf("ReadText failed: %v", err)
	}
	if got != "https://youtu.be/abc" {
		t.Errorf("Expected clipboard text, got %q", got)
	}
}

func TestStaticReader_Error(t *testing.T) {
	want := errors.New("denied")
	if _, err := (StaticReader{Err: want}).ReadText(context.Background()); !errors.Is(err, want) {
		t.Errorf("Expected %v, got %v", want, err)
	}
}

func TestReaders_HonorCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for name, r := range map[string]Reader{"static": StaticReader{Text: "x"}, "system": SystemReader{}} {
		if _, err := r.ReadText(ctx); !errors.Is(err, context.Canceled) {
			t.Errorf("%s: expected context.Canceled, got %v", name, err)
		}
	}
}
