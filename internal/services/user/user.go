// Package user contains the business logic for registration, lookup and
// subscription activation, with a cache in front of by-email lookups.
package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/neurobond/neurobond/internal/lib/sl"
	"github.com/neurobond/neurobond/internal/models"
	"github.com/neurobond/neurobond/internal/storage/repository"
)

// ErrNotFound is returned when the user does not exist.
var ErrNotFound = repository.ErrUserNotFound

// Repository defines the storage methods the service needs.
type Repository interface {
	CreateUser(ctx context.Context, user models.User) (string, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateSubscriptionStatus(ctx context.Context, email, status string) (int, error)
}

// Cache describes the caching methods used by the service.
type Cache interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
	Invalidate(key string) error
}

// Service implements the user business logic.
type Service struct {
	repo  Repository
	cache Cache
	log   *slog.Logger
}

// New creates a user Service.
func New(repo Repository, cache Cache, log *slog.Logger) *Service {
	return &Service{repo: repo, cache: cache, log: log}
}

func cacheKey(email string) string {
	return fmt.Sprintf("user:email:%s", email)
}

// Register creates a user on the free tier. Registration of an already
// known e-mail returns the existing record unchanged, so a paid visitor
// coming back through onboarding keeps their active status.
func (s *Service) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	existing, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	user := models.User{
		UUID:               uuid.New().String(),
		Name:               req.Name,
		Email:              req.Email,
		PartnerName:        req.PartnerName,
		SubscriptionStatus: models.SubscriptionStatusFree,
	}
	if _, err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	s.log.Info("registered new user", slog.String("uuid", user.UUID))

	if err := s.cache.Set(cacheKey(user.Email), user, time.Hour); err != nil {
		s.log.Warn("failed to cache user", slog.String("key", cacheKey(user.Email)), sl.Err(err))
	}
	return &user, nil
}

// FindByEmail returns the user for an e-mail address, from the cache when
// possible.
func (s *Service) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var cached models.User
	found, err := s.cache.Get(cacheKey(email), &cached)
	if err != nil {
		s.log.Warn("cache lookup failed", sl.Err(err))
	}
	if found {
		return &cached, nil
	}

	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(cacheKey(email), user, time.Hour); err != nil {
		s.log.Warn("failed to cache user", slog.String("key", cacheKey(email)), sl.Err(err))
	}
	return user, nil
}

// ActivateSubscription marks the user's subscription active and
// invalidates the cached record.
func (s *Service) ActivateSubscription(ctx context.Context, email string) error {
	count, err := s.repo.UpdateSubscriptionStatus(ctx, email, models.SubscriptionStatusActive)
	if err != nil {
		return err
	}
	if count == 0 {
		return ErrNotFound
	}
	if err := s.cache.Invalidate(cacheKey(email)); err != nil {
		s.log.Warn("failed to invalidate cached user", slog.String("key", cacheKey(email)), sl.Err(err))
	}
	s.log.Info("activated subscription", slog.String("email", email))
	return nil
}
