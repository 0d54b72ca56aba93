// Package toc is the selector: it takes the raw candidate patterns the
// pattern package generated and turns them into one chosen table of
// contents, or none. Infer and InferWithDiagnostics are the entry points;
// everything else in this package exists to support them.
package toc

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/maruel/natural"

	"toccer/article"
	"toccer/beauty"
	"toccer/common"
	"toccer/model"
	"toccer/numeral"
	"toccer/pattern"
)

// Result is the inferred table of contents, if one was found.
type Result struct {
	Template string
	Beauty   float64
	Contents model.Contents
}

// Warner receives a message for a recoverable problem found while
// selecting (currently: a generated template whose regex body failed to
// compile). Infer's caller may pass a zap logger's Warnf-shaped function
// here; a nil Warner silently drops the message.
type Warner func(format string, args ...any)

// Diagnostics, when passed to InferWithDiagnostics, is filled in with the
// intermediate candidate sets so a caller (the CLI's --debug report) can
// dump what the selector considered, not just what it picked.
type Diagnostics struct {
	// Candidates holds every generated pattern, after template dedup and
	// before the per-partition TemplateCount1 truncation.
	Candidates []model.Pattern
	// Survivors holds every pattern that made it through truncation and
	// re-scoring, before the final sort and BeautyMin2 cutoff.
	Survivors []model.Pattern
}

// Infer runs the full pipeline over text and returns the best table of
// contents found, or (nil, nil) if nothing clears the final beauty floor.
// It never retains anything across calls: every structure it builds is
// discarded on return.
func Infer(text string, warn Warner) (*Result, error) {
	return InferWithDiagnostics(text, warn, nil)
}

// InferWithDiagnostics is Infer, plus it fills diag (if non-nil) with the
// intermediate candidate sets the selector considered along the way.
func InferWithDiagnostics(text string, warn Warner, diag *Diagnostics) (*Result, error) {
	text = strings.NewReplacer("\r\n", "\n", "\r", "\n").Replace(text)

	parsers := numeral.Parsers()
	ctx := article.Build(text, parsers)

	candidates := pattern.Generate(ctx, parsers)
	candidates = dedupeByTemplate(candidates)
	if diag != nil {
		diag.Candidates = candidates
	}

	numbers, prefixes := partition(candidates)
	numbers = truncateTop(numbers)
	prefixes = truncateTop(prefixes)

	var survivors []model.Pattern
	survivors = append(survivors, numbers...)
	survivors = append(survivors, prefixes...)

	var rescored []model.Pattern
	var violations []error
	for _, p := range survivors {
		rp, err := rescan(ctx, parsers, p, warn)
		if err != nil {
			violations = append(violations, err)
			continue
		}
		if rp == nil {
			continue
		}
		rescored = append(rescored, *rp)
	}
	if diag != nil {
		diag.Survivors = rescored
	}
	if fe := newFatalError(violations...); fe != nil {
		return nil, fe
	}

	if len(rescored) == 0 {
		return nil, nil
	}

	sortFinal(rescored)

	best := rescored[0]
	if best.Beauty < model.BeautyMin2 {
		return nil, nil
	}
	if err := checkInvariants(best); err != nil {
		return nil, newFatalError(err)
	}

	return &Result{Template: best.Template, Beauty: best.Beauty, Contents: best.Contents}, nil
}

// dedupeByTemplate keeps the first pattern seen for each visible template
// string, matching the selector's "first wins" dedup rule.
func dedupeByTemplate(in []model.Pattern) []model.Pattern {
	seen := make(map[string]bool, len(in))
	out := make([]model.Pattern, 0, len(in))
	for _, p := range in {
		if seen[p.Template] {
			continue
		}
		seen[p.Template] = true
		out = append(out, p)
	}
	return out
}

func partition(in []model.Pattern) (numbers, prefixes []model.Pattern) {
	for _, p := range in {
		switch p.Kind {
		case common.PatternKindNumber:
			numbers = append(numbers, p)
		case common.PatternKindPrefix:
			prefixes = append(prefixes, p)
		}
	}
	return numbers, prefixes
}

// truncateTop sorts by beauty descending and keeps the top TemplateCount1.
func truncateTop(in []model.Pattern) []model.Pattern {
	sort.SliceStable(in, func(i, j int) bool { return in[i].Beauty > in[j].Beauty })
	if len(in) > model.TemplateCount1 {
		in = in[:model.TemplateCount1]
	}
	return in
}

// rescan re-applies a surviving pattern's compiled template to the whole
// article and re-scores it from scratch. It returns (nil, nil) when the
// pattern fails to clear BeautyMin1 after re-scoring (a normal, non-fatal
// rejection), and a non-nil error only for an invariant violation.
func rescan(ctx *article.Context, parsers []*numeral.Parser, p model.Pattern, warn Warner) (*model.Pattern, error) {
	matcher, ok := pattern.CompileTemplate(p.Template)
	if !ok {
		if warn != nil {
			warn("template %q failed to compile, dropping candidate", p.Template)
		}
		return nil, nil
	}

	var parser *numeral.Parser
	if p.Kind == common.PatternKindNumber && p.ParserIndex >= 0 && p.ParserIndex < len(parsers) {
		parser = parsers[p.ParserIndex]
	}

	var contents model.Contents
	for i := range ctx.Lines {
		rec := &ctx.Lines[i]
		trimmed := strings.TrimSpace(rec.Raw)
		if len(trimmed) > model.MaxTitleLength {
			continue
		}
		if !matcher.MatchString(rec.Raw) {
			continue
		}
		entry := model.Entry{Title: trimmed, Cursor: rec.Cursor}
		if parser != nil {
			if m, ok := parser.Extract(rec.Raw); ok {
				n := m.Number
				entry.Number = &n
			}
		}
		contents = append(contents, entry)
	}

	if len(contents) < model.MinContents {
		return nil, nil
	}
	if err := checkCursors(contents); err != nil {
		return nil, err
	}

	b1 := beauty.Size(contents, ctx.Chars) * beauty.Title(contents)
	var b2 float64
	if p.Kind == common.PatternKindNumber {
		b2 = beauty.Numeric(contents)
	} else {
		b2 = p.PrefixScore
	}
	if err := checkFactor("B_size*B_title", b1); err != nil {
		return nil, err
	}
	if err := checkFactor("B_num/prefix-score", b2); err != nil {
		return nil, err
	}

	out := p
	out.Contents = contents
	out.Beauty = b1 * b2
	if out.Beauty < model.BeautyMin1 {
		return nil, nil
	}
	return &out, nil
}

// sortFinal orders survivors by beauty descending, then priority
// ascending, then a natural-alphanumeric comparison of the template
// string for any ties still remaining, so results are deterministic.
func sortFinal(ps []model.Pattern) {
	sort.SliceStable(ps, func(i, j int) bool {
		a, b := ps[i], ps[j]
		if a.Beauty != b.Beauty {
			return a.Beauty > b.Beauty
		}
		if a.Priority != b.Priority {
			return a.Priority < b.Priority
		}
		return natural.Less(a.Template, b.Template)
	})
}

func checkCursors(contents model.Contents) error {
	for i := 1; i < len(contents); i++ {
		if contents[i].Cursor <= contents[i-1].Cursor {
			return fmt.Errorf("cursor %d at entry %d is not strictly increasing after cursor %d", contents[i].Cursor, i, contents[i-1].Cursor)
		}
	}
	return nil
}

func checkFactor(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return fmt.Errorf("scoring factor %s is not a finite non-negative number: %v", name, v)
	}
	return nil
}

func checkInvariants(p model.Pattern) error {
	var errs []error
	if err := checkFactor("beauty", p.Beauty); err != nil {
		errs = append(errs, err)
	}
	if p.Beauty > 1 {
		errs = append(errs, fmt.Errorf("beauty %v exceeds 1", p.Beauty))
	}
	if err := checkCursors(p.Contents); err != nil {
		errs = append(errs, err)
	}
	for _, e := range p.Contents {
		if e.Title != strings.TrimSpace(e.Title) {
			errs = append(errs, fmt.Errorf("title %q is not trimmed", e.Title))
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return newFatalError(errs...)
}
