package pipeline

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dgallion1/docoutline/internal/doctree"
	"github.com/dgallion1/docoutline/internal/outline"
)

const guideMarkdown = `# User Guide

Welcome to the guide.

## Install

Run the installer & follow the prompts.

## Usage

Start the program.
`

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testEngine() *outline.Engine {
	return outline.NewEngine(outline.DefaultParams(), quietLogger())
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func readResult(t *testing.T, path string) doctree.Result {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	var res doctree.Result
	if err := json.Unmarshal(data, &res); err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return res
}

func TestBatchRun(t *testing.T) {
	in, out := t.TempDir(), filepath.Join(t.TempDir(), "out")
	writeFile(t, in, "guide.md", guideMarkdown)
	writeFile(t, in, "broken.pdf", "this is not a pdf")
	writeFile(t, in, "notes.csv", "a,b\n1,2\n")
	if err := os.Mkdir(filepath.Join(in, "nested.pdf"), 0o755); err != nil {
		t.Fatal(err)
	}

	b := &Batch{Engine: testEngine(), Log: quietLogger(), Workers: 2, Reports: true}
	sum, err := b.Run(context.Background(), in, out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum.Documents != 2 || sum.Degraded != 1 || sum.WriteErrors != 0 {
		t.Errorf("unexpected summary %+v", sum)
	}

	guide := readResult(t, filepath.Join(out, "guide.json"))
	if guide.Title != "User Guide" {
		t.Errorf("expected title %q, got %q", "User Guide", guide.Title)
	}
	if len(guide.Outline) != 2 || guide.Outline[0].Text != "Install" || guide.Outline[0].Level != doctree.H2 {
		t.Errorf("unexpected outline %+v", guide.Outline)
	}

	broken := readResult(t, filepath.Join(out, "broken.json"))
	if broken.Title != "Error processing broken.pdf" {
		t.Errorf("unexpected title %q", broken.Title)
	}
	if broken.Outline == nil || len(broken.Outline) != 0 {
		t.Errorf("expected empty outline array, got %v", broken.Outline)
	}

	if _, err := os.Stat(filepath.Join(out, "guide.report.json")); err != nil {
		t.Errorf("expected report file: %v", err)
	}
	if _, err := os.Stat(filepath.Join(out, "notes.json")); !os.IsNotExist(err) {
		t.Error("expected unsupported files to be skipped")
	}
}

func TestBatchRun_PlainText(t *testing.T) {
	in, out := t.TempDir(), t.TempDir()
	writeFile(t, in, "notes.txt", "Meeting notes\n\nDiscussed the release plan.\n")

	b := &Batch{Engine: testEngine(), Log: quietLogger()}
	sum, err := b.Run(context.Background(), in, out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum.Documents != 1 || sum.Degraded != 0 {
		t.Errorf("unexpected summary %+v", sum)
	}
	res := readResult(t, filepath.Join(out, "notes.json"))
	if res.Outline == nil {
		t.Error("expected outline array, got null")
	}
}

func TestBatchRun_MissingInputDir(t *testing.T) {
	b := &Batch{Engine: testEngine(), Log: quietLogger()}
	_, err := b.Run(context.Background(), filepath.Join(t.TempDir(), "absent"), t.TempDir())
	if err == nil {
		t.Fatal("expected error for missing input dir")
	}
}

func TestWriteJSON_Format(t *testing.T) {
	path := filepath.Join(t.TempDir(), "r.json")
	res := doctree.Result{
		Title:   "R&D <Plan>",
		Outline: []doctree.Heading{doctree.NewHeading(doctree.H1, "Scope", 2, 0)},
	}
	if err := WriteJSON(path, res); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, _ := os.ReadFile(path)
	want := `{
  "title": "R&D <Plan>",
  "outline": [
    {
      "level": "H1",
      "text": "Scope",
      "page": 2
    }
  ]
}
`
	if string(data) != want {
		t.Errorf("unexpected output:\n%s", data)
	}
	if strings.Contains(string(data), `\u0026`) {
		t.Error("expected no HTML escaping")
	}
}
