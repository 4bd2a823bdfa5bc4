// Package listens holds the listen-log use cases: single fetch, cursor
// pagination, and submission.
package listens

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/morningfm/front/internal/domain"
)

type listensGateway interface {
	FetchListen(ctx context.Context, id string) (domain.Listen, error)
	FetchListens(ctx context.Context, limit int, order domain.SortOrder, before, after *time.Time) ([]domain.Listen, error)
	SubmitListen(ctx context.Context, input domain.ListenInput) (domain.Listen, error)
}

// Service provides listen-log operations.
type Service struct {
	listens listensGateway
	log     *slog.Logger
}

// NewService creates a listens Service.
func NewService(log *slog.Logger, gw listensGateway) *Service {
	return &Service{
		listens: gw,
		log:     log.With("service", "listens"),
	}
}

// GetListen fetches one listen by id.
func (s *Service) GetListen(ctx context.Context, id string) (domain.Listen, error) {
	listen, err := s.listens.FetchListen(ctx, id)
	if err != nil {
		if domain.IsDomainError(err) {
			return domain.Listen{}, err
		}
		return domain.Listen{}, fmt.Errorf("get listen: %w", err)
	}
	return listen, nil
}

// SubmitListen submits one listen. This is a pure pass-through: submission
// policy (the daytime-only rule included) belongs to the backend, and its
// rejection message is surfaced untouched.
func (s *Service) SubmitListen(ctx context.Context, input domain.ListenInput) (domain.Listen, error) {
	listen, err := s.listens.SubmitListen(ctx, input)
	if err != nil {
		if domain.IsDomainError(err) {
			return domain.Listen{}, err
		}
		return domain.Listen{}, fmt.Errorf("submit listen: %w", err)
	}

	s.log.InfoContext(ctx, "listen submitted",
		slog.String("id", listen.ID),
		slog.String("listener_name", listen.ListenerName),
	)
	return listen, nil
}
