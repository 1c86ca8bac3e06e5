// Package outline infers a document title and a leveled heading outline from
// the visual signals of positioned text: font size, weight, horizontal
// position and repetition across pages.
package outline

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"

	"github.com/dgallion1/docoutline/internal/cluster"
	"github.com/dgallion1/docoutline/internal/doctree"
	"github.com/dgallion1/docoutline/internal/parser"
)

// Titles used for degraded results.
const (
	NoTextTitle      = "No text content found"
	errorTitlePrefix = "Error processing "
)

// Input is what a strategy sees of a document.
type Input struct {
	Doc       parser.Document
	Profile   Profile
	Fragments []doctree.Fragment
}

// Strategy turns a document into an outline. Strategies that know the title
// authoritatively set Result.Title; otherwise the engine selects it.
type Strategy interface {
	Name() string
	Extract(in *Input) doctree.Result
}

// State is a step of the per-document pipeline.
type State int

const (
	StateNativeCheck State = iota
	StateFragmentExtraction
	StateClassification
	StateEngineDispatch
	StateTitleSelection
	StateAssembled
)

func (s State) String() string {
	switch s {
	case StateNativeCheck:
		return "native_check"
	case StateFragmentExtraction:
		return "fragment_extraction"
	case StateClassification:
		return "classification"
	case StateEngineDispatch:
		return "engine_dispatch"
	case StateTitleSelection:
		return "title_selection"
	case StateAssembled:
		return "assembled"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Report describes how a result was produced.
type Report struct {
	File         string   `json:"file"`
	Path         []string `json:"path"` // states visited, in order
	Strategy     string   `json:"strategy,omitempty"`
	DocumentType DocType  `json:"document_type,omitempty"`
	MentionsRFP  bool     `json:"mentions_rfp,omitempty"`
	PageCount    int      `json:"page_count"`
	BaselineSize int      `json:"baseline_size,omitempty"`
	Headers      []string `json:"headers,omitempty"`
	Footers      []string `json:"footers,omitempty"`
	TOCPages     []int    `json:"toc_pages,omitempty"`
	Fragments    int      `json:"fragments"`
	Error        string   `json:"error,omitempty"`
}

func (r *Report) enter(s State) { r.Path = append(r.Path, s.String()) }

// Engine runs the outline pipeline on one document at a time. It holds no
// per-document state and is safe for concurrent use.
type Engine struct {
	params    Params
	clusterer cluster.Provider
	open      func(path string) (parser.Document, error)
	log       *slog.Logger
}

// NewEngine creates an engine that opens files with parser.Open and clusters
// with DBSCAN.
func NewEngine(params Params, log *slog.Logger) *Engine {
	return &Engine{
		params:    params,
		clusterer: cluster.DBSCAN{},
		open:      parser.Open,
		log:       log,
	}
}

// WithClusterer returns a copy of the engine using a different clustering provider.
func (e *Engine) WithClusterer(c cluster.Provider) *Engine {
	cp := *e
	cp.clusterer = c
	return &cp
}

// Run produces the outline for the document at path. It never fails: an
// unreadable file yields an error title and an empty outline.
func (e *Engine) Run(path string) doctree.Result {
	res, _ := e.Analyze(path)
	return res
}

// Analyze is Run plus a report of the decisions taken.
func (e *Engine) Analyze(path string) (doctree.Result, Report) {
	name := filepath.Base(path)
	doc, err := e.open(path)
	if err != nil {
		e.log.Warn("open failed", "file", name, "error", err)
		rep := Report{File: name, Error: err.Error()}
		rep.enter(StateAssembled)
		return doctree.Result{Title: errorTitlePrefix + name, Outline: []doctree.Heading{}}, rep
	}
	defer doc.Close()
	return e.AnalyzeDocument(doc)
}

// AnalyzeDocument runs the pipeline on an already open document.
func (e *Engine) AnalyzeDocument(doc parser.Document) (doctree.Result, Report) {
	log := e.log.With("file", doc.Name())
	rep := Report{File: doc.Name(), PageCount: doc.PageCount()}

	rep.enter(StateNativeCheck)
	items, err := doc.Outline()
	if err != nil {
		log.Debug("no readable embedded outline", "error", err)
	}
	if len(items) > 0 {
		native := NativeStrategy{Items: items}
		rep.Strategy = native.Name()
		rep.enter(StateAssembled)
		log.Info("using embedded outline", "entries", len(items))
		return native.Extract(nil), rep
	}

	rep.enter(StateFragmentExtraction)
	pages := loadPages(doc, log)
	headers, footers := RepeatingElements(pages, e.params.Repeating)
	profile := Profile{
		PageCount:    doc.PageCount(),
		BaselineSize: BaselineSize(pages, e.params.DefaultBaseline),
		Headers:      headers,
		Footers:      footers,
	}
	frags, tocPages := ExtractFragments(pages, profile.Suppressed, e.params.TOC)
	rep.BaselineSize = profile.BaselineSize
	rep.Headers, rep.Footers = sortedKeys(headers), sortedKeys(footers)
	rep.TOCPages = tocPages
	rep.Fragments = len(frags)
	log.Debug("fragments extracted",
		"fragments", len(frags),
		"baseline", profile.BaselineSize,
		"headers", len(headers),
		"footers", len(footers),
		"toc_pages", len(tocPages),
	)

	if len(frags) == 0 {
		log.Warn("no text content survived filtering")
		rep.enter(StateAssembled)
		return doctree.Result{Title: NoTextTitle, Outline: []doctree.Heading{}}, rep
	}

	rep.enter(StateClassification)
	class := Classify(frags, profile.PageCount, e.params.Classifier)
	profile.Type = class.Type
	rep.DocumentType, rep.MentionsRFP = class.Type, class.MentionsRFP

	rep.enter(StateEngineDispatch)
	strategy := e.strategyFor(profile.Type)
	rep.Strategy = strategy.Name()
	log.Info("classified document", "document_type", profile.Type, "strategy", strategy.Name())
	res := strategy.Extract(&Input{Doc: doc, Profile: profile, Fragments: frags})
	if len(res.Outline) == 0 {
		log.Warn("strategy produced no headings", "strategy", strategy.Name())
	}

	rep.enter(StateTitleSelection)
	if res.Title == "" {
		res.Title = SelectTitle(frags, firstPageHeight(pages), e.params.Title)
	}

	rep.enter(StateAssembled)
	res.Outline = dedupe(res.Outline)
	return res, rep
}

// strategyFor maps a document type to its strategy. There is no fallback
// between strategies: an empty visual outline stays empty.
func (e *Engine) strategyFor(t DocType) Strategy {
	if t == Technical {
		return VisualStrategy{Params: e.params.Visual, Clusterer: e.clusterer}
	}
	return HybridStrategy{Params: e.params.Hybrid}
}

// loadPages reads every page once. Pages that fail to load are nil.
func loadPages(doc parser.Document, log *slog.Logger) []*parser.Page {
	pages := make([]*parser.Page, doc.PageCount())
	for i := range pages {
		p, err := doc.Page(i + 1)
		if err != nil {
			log.Warn("skipping unreadable page", "page", i+1, "error", err)
			continue
		}
		pages[i] = p
	}
	return pages
}

func firstPageHeight(pages []*parser.Page) float64 {
	if len(pages) == 0 || pages[0] == nil {
		return 0
	}
	return pages[0].Height
}

// sortByPosition orders headings by page, then top edge. Equal positions
// keep their input order.
func sortByPosition(hs []doctree.Heading) []doctree.Heading {
	sort.SliceStable(hs, func(i, j int) bool {
		if hs[i].Page != hs[j].Page {
			return hs[i].Page < hs[j].Page
		}
		return hs[i].Y0() < hs[j].Y0()
	})
	return hs
}

// dedupe drops every heading whose (text, level) pair was already seen. It
// always returns a non-nil slice.
func dedupe(hs []doctree.Heading) []doctree.Heading {
	type key struct {
		text  string
		level doctree.Level
	}
	seen := make(map[key]bool, len(hs))
	out := make([]doctree.Heading, 0, len(hs))
	for _, h := range hs {
		k := key{h.Text, h.Level}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, h)
	}
	return out
}
