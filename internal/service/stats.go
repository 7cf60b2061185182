package service

import (
	"context"

	"github.com/vaultpass/passgen-go/internal/model"
)

// StatsReader aggregates recorded generation events.
type StatsReader interface {
	Stats(ctx context.Context) (model.GenerationStats, error)
}

// StatsService exposes generation statistics.
type StatsService struct {
	reader StatsReader
}

// NewStatsService creates a new StatsService.
func NewStatsService(reader StatsReader) *StatsService {
	return &StatsService{reader: reader}
}

// Summary returns the aggregate of all recorded generations.
func (s *StatsService) Summary(ctx context.Context) (model.StatsResponse, error) {
	stats, err := s.reader.Stats(ctx)
	if err != nil {
		return model.StatsResponse{}, err
	}

	return model.StatsResponse{
		Total:           stats.Total,
		AverageLength:   stats.AverageLength,
		LastGeneratedAt: stats.LastGeneratedAt,
	}, nil
}
