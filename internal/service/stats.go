package service

import (
	"actlog/internal/config"
	"actlog/internal/stats"
	"actlog/internal/window"
)

// StatsReport is a window-filtered breakdown of the log collection.
type StatsReport struct {
	Window    window.Window
	Dimension stats.Dimension
	Summary   stats.Summary
	Groups    []stats.GroupTotal
}

// StatsService computes aggregate reports over the log collection.
type StatsService struct {
	logs   *LogService
	config config.Config
}

// NewStatsService creates a new StatsService over the given log service.
func NewStatsService(logs *LogService, cfg config.Config) *StatsService {
	return &StatsService{logs: logs, config: cfg}
}

// Report filters the collection by the window and breaks the result down
// along the given dimension.
func (s *StatsService) Report(w window.Window, dim stats.Dimension) (*StatsReport, error) {
	entries, err := s.logs.List()
	if err != nil {
		return nil, err
	}

	filtered := window.Filter(entries, w, s.config.Now())

	return &StatsReport{
		Window:    w,
		Dimension: dim,
		Summary:   stats.Summarize(filtered),
		Groups:    stats.Breakdown(filtered, dim),
	}, nil
}
