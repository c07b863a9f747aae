// Package board keeps the table, insight panel and charts mutually consistent:
// every mutation or selection change runs one full recompute-and-render
// cascade over the current roster. Cascades are serialized under the board
// mutex, the Go port of the dashboard's single-threaded event model.
package board

import (
	"errors"
	"sync"

	"github.com/edulab/markboard/core"
	"github.com/edulab/markboard/core/chart"
	"github.com/edulab/markboard/core/student"
)

// InsightKind says what the insight panel should show.
type InsightKind string

const (
	// InsightDefault - no selection, show the default placeholder.
	InsightDefault InsightKind = "default"
	// InsightMultiple - two students selected, analysis hidden.
	InsightMultiple InsightKind = "multiple"
	// InsightStudent - show the insight for StudentID.
	InsightStudent InsightKind = "student"
)

// InsightView is the resolved insight-panel content.
type InsightView struct {
	Kind      InsightKind     `json:"kind"`
	StudentID int             `json:"student_id,omitempty"`
	Insight   student.Insight `json:"insight,omitempty"`
}

// PrintMode selects the report layout handed to the rendering substrate.
type PrintMode string

const (
	// PrintSingle - exactly one comparison-selected student: focused report
	// with chart.
	PrintSingle PrintMode = "single"
	// PrintFull - any other selection count: full table, no chart.
	PrintFull PrintMode = "full"
)

// Renderer is the rendering substrate the board drives. Implementations own
// the actual widgets / drawing surface.
type Renderer interface {
	RenderRoster(view []student.RankedStudent, sel Selection)
	RenderInsight(view InsightView)
	DrawRadar(prims []chart.Primitive)
	DrawComparison(view chart.ComparisonView)
	DrawEmptyRadar()
	// DrawEmptyComparison closes the comparison view so the surface never
	// shows a pairing the selection no longer holds.
	DrawEmptyComparison()
}

// Board owns the selection state and the view criteria, and orchestrates the
// derive -> filter -> render cascade after every change.
type Board struct {
	mu       sync.Mutex
	svc      *student.Service
	renderer Renderer
	logger   core.Logger
	chartCfg chart.Config

	filter   student.QueryFilter
	sel      Selection
	debounce *Debouncer
}

func New(svc *student.Service, renderer Renderer, logger core.Logger, conf *core.Config) *Board {
	return &Board{
		svc:      svc,
		renderer: renderer,
		logger:   logger,
		chartCfg: chart.Config{
			Width:  conf.Chart.Width,
			Height: conf.Chart.Height,
			Margin: float64(conf.Chart.Margin),
		},
		filter:   student.QueryFilter{Category: student.CategoryAll, Sort: student.SortByRank},
		debounce: NewDebouncer(conf.SearchDebounce),
	}
}

// Refresh runs a full cascade against the current roster.
func (b *Board) Refresh() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cascade()
}

// Selection returns a copy of the current selection state.
func (b *Board) Selection() Selection {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sel.clone()
}

// Filter returns the current view criteria.
func (b *Board) Filter() student.QueryFilter {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.filter
}

// ToggleComparison applies a checkbox change. When two students are already
// selected a third check is rejected: accepted=false tells the caller to
// revert the visual check, the selection is unchanged.
func (b *Board) ToggleComparison(id int, checked bool) (accepted bool, sel Selection, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	accepted = b.sel.toggleComparison(id, checked)
	sel = b.sel.clone()
	if !accepted {
		return accepted, sel, nil
	}
	return accepted, sel, b.cascade()
}

// Focus records a row click. The latest click always wins.
func (b *Board) Focus(id int) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sel.Focused = id
	return b.cascade()
}

// SetSearch updates the search term and schedules a debounced re-render:
// rapid keystrokes collapse into one cascade after the quiet period.
func (b *Board) SetSearch(term string) {
	b.mu.Lock()
	b.filter.Search = core.CleanString(term)
	b.mu.Unlock()

	b.debounce.Schedule(func() {
		if err := b.Refresh(); err != nil {
			b.logger.Error("debounced search render failed", err)
		}
	})
}

func (b *Board) SetCategory(cat student.Category) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.filter.Category = cat
	return b.cascade()
}

func (b *Board) SetSort(key student.SortKey) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.filter.Sort = key
	return b.cascade()
}

// RequestAdd appends a validated student to the roster and cascades.
func (b *Board) RequestAdd(ns student.NewStudent) (student.Student, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	st, err := b.svc.Create(ns)
	if err != nil {
		return student.Student{}, err
	}
	return st, b.cascade()
}

// RequestDelete removes the student, purges it from both selection slots and
// cascades. A stale id is a silent no-op. When the purge drops the comparison
// selection below two, the cascade closes the comparison view.
func (b *Board) RequestDelete(id int) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.svc.Delete(id); err != nil {
		return err
	}
	b.sel.purge(id)
	return b.cascade()
}

// RequestEditMark commits a single-subject edit. Invalid input surfaces a
// ValidationError and leaves the roster untouched; a stale id is swallowed
// since ids can go stale between event queue and processing.
func (b *Board) RequestEditMark(id int, subj student.Subject, rawValue string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, err := b.svc.EditMark(id, subj, rawValue); err != nil {
		if errors.Is(err, student.ErrNotFound) {
			b.logger.Debug("edit on removed student ignored", id)
			return nil
		}
		return err
	}
	return b.cascade()
}

// InsightPanel resolves what the insight panel shows, in priority order:
// both comparison slots full -> analysis hidden; exactly one -> that student;
// else the focused student; else the default placeholder.
func (b *Board) InsightPanel() InsightView {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.resolveInsight()
}

// PrintLayout returns the presentation-mode flag for the print subsystem.
func (b *Board) PrintLayout() PrintMode {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.sel.Comparison) == 1 {
		return PrintSingle
	}
	return PrintFull
}

// ExportCSV renders the full ranked roster as CSV.
func (b *Board) ExportCSV() (string, error) {
	return b.svc.ExportCSV()
}

// cascade recomputes everything from the roster and redraws every surface.
// Callers must hold b.mu.
func (b *Board) cascade() error {
	ranked, err := b.svc.Ranked()
	if err != nil {
		return err
	}

	view := student.ApplyFilter(ranked, b.filter)
	b.renderer.RenderRoster(view, b.sel.clone())

	insight := b.resolveInsight()
	b.renderer.RenderInsight(insight)

	if insight.Kind == InsightStudent {
		if st, err := b.svc.GetByID(insight.StudentID); err == nil {
			b.renderer.DrawRadar(chart.Radar(st, b.chartCfg))
		} else {
			b.renderer.DrawEmptyRadar()
		}
	} else {
		b.renderer.DrawEmptyRadar()
	}

	if len(b.sel.Comparison) == MaxComparison {
		a, errA := b.svc.GetByID(b.sel.Comparison[0])
		c, errC := b.svc.GetByID(b.sel.Comparison[1])
		if errA == nil && errC == nil {
			b.renderer.DrawComparison(chart.Comparison(a, c, b.chartCfg))
			return nil
		}
	}
	b.renderer.DrawEmptyComparison()
	return nil
}

// resolveInsight implements the insight-panel priority policy. Callers must
// hold b.mu.
func (b *Board) resolveInsight() InsightView {
	switch {
	case len(b.sel.Comparison) == MaxComparison:
		return InsightView{Kind: InsightMultiple}
	case len(b.sel.Comparison) == 1:
		return b.insightFor(b.sel.Comparison[0])
	case b.sel.Focused != 0:
		return b.insightFor(b.sel.Focused)
	default:
		return InsightView{Kind: InsightDefault}
	}
}

func (b *Board) insightFor(id int) InsightView {
	ins, err := b.svc.InsightFor(id)
	if err != nil {
		// stale id, corrected on the next cascade
		return InsightView{Kind: InsightDefault}
	}
	return InsightView{Kind: InsightStudent, StudentID: id, Insight: ins}
}
