package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/dgallion1/docoutline/internal/chunker"
	"github.com/dgallion1/docoutline/internal/doctree"
	"github.com/dgallion1/docoutline/internal/outline"
	"github.com/dgallion1/docoutline/internal/parser"
)

// SectionResult is an outline plus the section-tagged chunks of the
// document's page text.
type SectionResult struct {
	doctree.Result
	Chunks []doctree.Chunk `json:"chunks"`
}

// Worker runs the outline engine on uploaded documents.
type Worker struct {
	engine   *outline.Engine
	stats    *LatencyStats
	log      *slog.Logger
	chunkCfg chunker.Config
}

func NewWorker(engine *outline.Engine, stats *LatencyStats, log *slog.Logger, chunkCfg chunker.Config) *Worker {
	return &Worker{
		engine:   engine,
		stats:    stats,
		log:      log,
		chunkCfg: chunkCfg,
	}
}

// Process analyzes a queued job and records its result.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "filename", job.Filename)

	if err := ctx.Err(); err != nil {
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "cancelled")
		return
	}

	job.SetStatus(StatusAnalyzing, "analyzing")
	res, rep, err := w.Outline(job.Filename, job.FileData())
	if err != nil {
		log.Error("staging upload failed", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "staging")
		return
	}

	job.SetResult(res, rep)
	if rep.Error != "" {
		job.AddError(rep.Error)
		job.SetStatus(StatusFailed, "open")
		return
	}
	log.Info("outline complete", "strategy", rep.Strategy, "headings", len(res.Outline))
	job.SetStatus(StatusCompleted, "done")
}

// Outline runs the engine on an uploaded file. The error covers staging the
// upload only; unreadable documents come back as a degraded result.
func (w *Worker) Outline(filename string, data []byte) (doctree.Result, outline.Report, error) {
	path, cleanup, err := stage(filename, data)
	if err != nil {
		return doctree.Result{}, outline.Report{}, err
	}
	defer cleanup()

	start := time.Now()
	res, rep := w.engine.Analyze(path)
	w.stats.Record(time.Since(start).Milliseconds())
	return res, rep, nil
}

// Sections outlines an uploaded file and splits its page text into chunks
// tagged with the running section title.
func (w *Worker) Sections(filename string, data []byte) (SectionResult, error) {
	path, cleanup, err := stage(filename, data)
	if err != nil {
		return SectionResult{}, err
	}
	defer cleanup()

	doc, err := parser.Open(path)
	if err != nil {
		return SectionResult{}, fmt.Errorf("open %s: %w", filename, err)
	}
	defer doc.Close()

	start := time.Now()
	res, _ := w.engine.AnalyzeDocument(doc)
	w.stats.Record(time.Since(start).Milliseconds())

	pages := make([]string, doc.PageCount())
	for i := range pages {
		p, err := doc.Page(i + 1)
		if err != nil {
			w.log.Warn("page text unavailable", "filename", filename, "page", i+1, "error", err)
			continue
		}
		pages[i] = p.PlainText()
	}
	chunks := chunker.TagSections(filepath.Base(filename), pages, res.Outline, w.chunkCfg)
	if chunks == nil {
		chunks = []doctree.Chunk{}
	}
	return SectionResult{Result: res, Chunks: chunks}, nil
}

// stage writes an upload to a private temp directory under its own base
// name, so results and logs carry the uploaded filename.
func stage(filename string, data []byte) (string, func(), error) {
	dir, err := os.MkdirTemp("", "docoutline-*")
	if err != nil {
		return "", nil, fmt.Errorf("create temp dir: %w", err)
	}
	cleanup := func() { os.RemoveAll(dir) }

	path := filepath.Join(dir, filepath.Base(filename))
	if err := os.WriteFile(path, data, 0o600); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("write temp file: %w", err)
	}
	return path, cleanup, nil
}
