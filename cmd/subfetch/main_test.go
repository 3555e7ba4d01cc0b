package main

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/Belphemur/SubtitleFetcher/internal/apperrors"
	"github.com/Belphemur/SubtitleFetcher/internal/clipboard"
	"github.com/Belphemur/SubtitleFetcher/internal/models"
	"github.com/Belphemur/SubtitleFetcher/internal/testutil"
)

func executeCommand(t *testing.T, ctx *commandContext, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand(ctx)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func newTestContext() (*commandContext, afero.Fs) {
	fs := afero.NewMemMapFs()
	ctx := newCommandContext()
	ctx.fs = fs
	ctx.clipboard = clipboard.StaticReader{}
	return ctx, fs
}

func TestGetCommand_SavesSubtitle(t *testing.T) {
	backend := testutil.NewStaticBackend(testutil.SubtitleResponse([]byte("1\n00:00:01,000 --> 00:00:02,000\nHi\n"), "application/x-subrip", "video.srt"))
	defer backend.Close()

	ctx, fs := newTestContext()
	out, err := executeCommand(t, ctx, "get", "https://youtu.be/abc", "--backend", backend.URL, "--format", "srt", "--type", "manual", "--out", "/subs")
	if err != nil {
		t.Fatalf("get failed: %v\n%s", err, out)
	}

	if !strings.Contains(out, "字幕下载成功！") {
		t.Errorf("Expected success message in output, got %q", out)
	}
	if !strings.Contains(out, "/subs/video.srt") {
		t.Errorf("Expected saved path in output, got %q", out)
	}
	if ok, _ := afero.Exists(fs, "/subs/video.srt"); !ok {
		t.Error("Expected /subs/video.srt to exist")
	}

	requests := backend.Requests()
	if len(requests) != 1 || requests[0].SubtitleType != models.SubtitleTypeManual || requests[0].Format != models.FormatSRT {
		t.Errorf("Unexpected backend requests %+v", requests)
	}
}

func TestGetCommand_InvalidURL(t *testing.T) {
	backend := testutil.NewStaticBackend(testutil.SubtitleResponse([]byte("x"), "text/plain", ""))
	defer backend.Close()

	ctx, _ := newTestContext()
	out, err := executeCommand(t, ctx, "get", "https://example.com/video", "--backend", backend.URL)

	var shown *shownError
	if !errors.As(err, &shown) {
		t.Fatalf("Expected a shown error, got %v", err)
	}
	if !errors.Is(err, &apperrors.ValidationError{}) {
		t.Errorf("Expected ValidationError, got %v", err)
	}
	if !strings.Contains(out, "请输入有效的YouTube视频链接") {
		t.Errorf("Expected invalid URL message, got %q", out)
	}
	if backend.RequestCount() != 0 {
		t.Errorf("Expected no backend request, got %d", backend.RequestCount())
	}
}

func TestGetCommand_BackendError(t *testing.T) {
	backend := testutil.NewStaticBackend(testutil.ErrorResponse(http.StatusInternalServerError, "Video unavailable"))
	defer backend.Close()

	ctx, _ := newTestContext()
	out, err := executeCommand(t, ctx, "get", "https://youtu.be/abc", "--backend", backend.URL)
	if err == nil {
		t.Fatal("Expected an error")
	}
	if !strings.Contains(out, "下载字幕失败：Video unavailable") {
		t.Errorf("Expected backend failure message, got %q", out)
	}
}

func TestGetCommand_UnknownFormat(t *testing.T) {
	ctx, _ := newTestContext()
	_, err := executeCommand(t, ctx, "get", "https://youtu.be/abc", "--format", "pdf")
	if err == nil || !strings.Contains(err.Error(), "unknown format") {
		t.Fatalf("Expected unknown format error, got %v", err)
	}
}

func TestPasteCommand(t *testing.T) {
	backend := testutil.NewStaticBackend(testutil.SubtitleResponse([]byte("Hello"), "text/plain", ""))
	defer backend.Close()

	ctx, fs := newTestContext()
	ctx.clipboard = clipboard.StaticReader{Text: "https://www.youtube.com/watch?v=abc\n"}

	out, err := executeCommand(t, ctx, "paste", "--backend", backend.URL, "--out", "/subs")
	if err != nil {
		t.Fatalf("paste failed: %v\n%s", err, out)
	}
	data, err := afero.ReadFile(fs, "/subs/subtitle.txt")
	if err != nil {
		t.Fatalf("Expected subtitle.txt to be saved: %v", err)
	}
	if string(data) != "Hello" {
		t.Errorf("Expected saved content Hello, got %q", data)
	}
}

func TestPasteCommand_ClipboardFailure(t *testing.T) {
	ctx, _ := newTestContext()
	ctx.clipboard = clipboard.StaticReader{Err: errors.New("no display")}

	out, err := executeCommand(t, ctx, "paste")
	if !errors.Is(err, &apperrors.ClipboardAccessError{}) {
		t.Fatalf("Expected ClipboardAccessError, got %v", err)
	}
	if !strings.Contains(out, "无法访问剪贴板：no display") {
		t.Errorf("Expected clipboard failure message, got %q", out)
	}
}

func TestOptionsCommand(t *testing.T) {
	ctx, _ := newTestContext()
	out, err := executeCommand(t, ctx, "options")
	if err != nil {
		t.Fatalf("options failed: %v", err)
	}
	for _, want := range []string{"auto", "manual", "txt", "srt", "vtt", "WebVTT subtitles"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in options output:\n%s", want, out)
		}
	}
}
