// Package sunlight holds the sunlight-window use case.
package sunlight

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/morningfm/front/internal/domain"
)

type sunlightGateway interface {
	FetchSunlightWindow(ctx context.Context, ianaTimezone string, onDate time.Time) (domain.SunlightWindow, error)
}

// Service provides sunlight-window lookups.
type Service struct {
	sunlight sunlightGateway
	log      *slog.Logger
}

// NewService creates a sunlight Service.
func NewService(log *slog.Logger, gw sunlightGateway) *Service {
	return &Service{
		sunlight: gw,
		log:      log.With("service", "sunlight"),
	}
}

// GetWindow fetches the sunrise/sunset window for a timezone and date.
func (s *Service) GetWindow(ctx context.Context, ianaTimezone string, onDate time.Time) (domain.SunlightWindow, error) {
	window, err := s.sunlight.FetchSunlightWindow(ctx, ianaTimezone, onDate)
	if err != nil {
		if domain.IsDomainError(err) {
			return domain.SunlightWindow{}, err
		}
		return domain.SunlightWindow{}, fmt.Errorf("get sunlight window: %w", err)
	}
	return window, nil
}
