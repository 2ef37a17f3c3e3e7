package dashboard

import (
	"sipsa-dashboard/internal/analysis"
	"sipsa-dashboard/internal/chart"
	"sipsa-dashboard/internal/dataset"
)

// Service answers dashboard queries from the cached immutable table.
// Every call recomputes its views from scratch; there is no state
// beyond the dataset cache.
type Service struct {
	cache *dataset.Cache
	topN  int
}

func NewService(cache *dataset.Cache, topN int) *Service {
	return &Service{
		cache: cache,
		topN:  topN,
	}
}

// Options returns the selector inputs for the current filter.
func (s *Service) Options(f analysis.Filter) (analysis.Options, error) {
	rows, err := s.cache.Snapshot()
	if err != nil {
		return analysis.Options{}, err
	}
	return analysis.SelectorOptions(rows, f), nil
}

// View computes the full dashboard view for a filter selection.
func (s *Service) View(f analysis.Filter) (analysis.View, error) {
	rows, err := s.cache.Snapshot()
	if err != nil {
		return analysis.View{}, err
	}
	return analysis.Compute(rows, f, s.topN), nil
}

// ChartPNG renders the filtered time series as a PNG image.
func (s *Service) ChartPNG(f analysis.Filter) ([]byte, error) {
	view, err := s.View(f)
	if err != nil {
		return nil, err
	}
	return chart.Timeseries(view.Series, f.Product)
}

// Reload drops the cached table and loads it again, returning the new
// observation count.
func (s *Service) Reload() (int, error) {
	s.cache.Invalidate()
	rows, err := s.cache.Snapshot()
	if err != nil {
		return 0, err
	}
	return len(rows), nil
}
