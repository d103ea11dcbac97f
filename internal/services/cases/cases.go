// Package cases contains the business logic for the community case list
// and for direct case submission.
package cases

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/neurobond/neurobond/internal/catalog"
	"github.com/neurobond/neurobond/internal/lib/sl"
	"github.com/neurobond/neurobond/internal/metrics"
	"github.com/neurobond/neurobond/internal/models"
)

// ErrConsentRequired is returned when a submission lacks user consent.
var ErrConsentRequired = errors.New("user consent required")

// DefaultListLimit is the page size served when the caller does not ask
// for one. Only this default page is cached.
const DefaultListLimit = 50

const listCacheKey = "cases:list"

// Repository defines the storage methods the service needs.
type Repository interface {
	CreateCase(ctx context.Context, c models.CommunityCase) (int, error)
	ListCases(ctx context.Context, limit, offset int) ([]*models.CommunityCase, error)
}

// Cache describes the caching methods used by the service.
type Cache interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
	Invalidate(key string) error
}

// Service implements the community case business logic.
type Service struct {
	repo  Repository
	cache Cache
	log   *slog.Logger
}

// New creates a cases Service.
func New(repo Repository, cache Cache, log *slog.Logger) *Service {
	return &Service{repo: repo, cache: cache, log: log}
}

// List returns the builtin cases extended by stored submissions, in a
// stable order: builtin first, then stored rows oldest first. Only the
// default page is cached; any other limit/offset goes straight to the
// repository so a warm cache never answers a differently paginated
// request.
func (s *Service) List(ctx context.Context, limit, offset int) ([]models.CommunityCase, error) {
	cacheable := limit == DefaultListLimit && offset == 0

	if cacheable {
		var cached []models.CommunityCase
		found, err := s.cache.Get(listCacheKey, &cached)
		if err != nil {
			s.log.Warn("cache lookup failed", sl.Err(err))
		}
		if found {
			return cached, nil
		}
	}

	stored, err := s.repo.ListCases(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	result := catalog.BuiltinCases()
	for _, c := range stored {
		result = append(result, *c)
	}

	if cacheable {
		if err := s.cache.Set(listCacheKey, result, 5*time.Minute); err != nil {
			s.log.Warn("failed to cache case list", sl.Err(err))
		}
	}
	return result, nil
}

// CreateDirect stores a submitted case. Submissions without consent are
// rejected before any write.
func (s *Service) CreateDirect(ctx context.Context, req models.CreateCaseRequest) (int, error) {
	if !req.UserConsent {
		return 0, ErrConsentRequired
	}

	id, err := s.repo.CreateCase(ctx, models.CommunityCase{
		Title:    req.Title,
		Category: req.Category,
		Dialog:   req.Dialog,
	})
	if err != nil {
		return 0, err
	}

	metrics.CommunityCasesSubmitted.Inc()
	s.log.Info("stored community case", slog.Int("id", id))

	if err := s.cache.Invalidate(listCacheKey); err != nil {
		s.log.Warn("failed to invalidate case list cache", sl.Err(err))
	}
	return id, nil
}
