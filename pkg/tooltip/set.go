package tooltip

import "github.com/JaimedeAnoWork/Southern-Metropolitan/pkg/series"

// Set is the lookup of formatters by ref.
type Set struct {
	formatters map[Ref]Formatter
}

// NewSet registers the built-in formatters. mode configures the
// workforce-flow header; an empty mode means HeaderCompat.
func NewSet(mode HeaderMode) *Set {
	if mode == "" {
		mode = HeaderCompat
	}
	return &Set{formatters: map[Ref]Formatter{
		RefSeries:        Series,
		RefBreakdown:     Breakdown,
		RefWorkforceFlow: WorkforceFlow(mode),
		RefDefault:       Default,
		RefPie:           Pie,
	}}
}

// Lookup returns the formatter registered under ref.
func (s *Set) Lookup(ref Ref) (Formatter, error) {
	f, ok := s.formatters[ref]
	if !ok {
		return nil, &series.NotFoundError{Kind: series.KindFormatter, ID: string(ref)}
	}
	return f, nil
}

// Format looks up ref and formats p with it.
func (s *Set) Format(ref Ref, p Point) (Display, bool, error) {
	f, err := s.Lookup(ref)
	if err != nil {
		return Display{}, false, err
	}
	d, ok := f.Format(p)
	return d, ok, nil
}
