package session

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/neurobond/neurobond/internal/lib/jwt"
	"github.com/neurobond/neurobond/internal/lib/sl"
	"github.com/neurobond/neurobond/internal/models"
)

// Session keys. Everything the store owns lives under the keyPrefix so
// Clear can remove the whole session without touching foreign keys.
const (
	keyPrefix = "session."

	keyUser           = keyPrefix + "user"
	keyAvatar         = keyPrefix + "avatar"
	keyPartnerAvatar  = keyPrefix + "partner_avatar"
	keyLanguage       = keyPrefix + "language"
	keyPendingUpgrade = keyPrefix + "pending_upgrade"
)

// Store persists and restores the session across launches.
type Store struct {
	kv    KV
	maker jwt.Maker
	log   *slog.Logger
}

// NewStore creates a Store over the given KV.
func NewStore(kv KV, maker jwt.Maker, log *slog.Logger) *Store {
	return &Store{
		kv:    kv,
		maker: maker,
		log:   log,
	}
}

// Save persists the user as the durable record of truth for session
// restoration.
func (s *Store) Save(user *models.User) error {
	const op = "session.Store.Save"

	token, err := s.maker.GenerateToken(user.UUID, user.Name, user.Email,
		user.PartnerName, user.SubscriptionStatus)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := s.kv.Set(keyUser, token); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Restore returns the persisted user, or nil when no session exists.
// Malformed stored data counts as no session: the failure is logged and
// the caller falls back to the landing view.
func (s *Store) Restore() *models.User {
	raw, ok, err := s.kv.Get(keyUser)
	if err != nil {
		s.log.Warn("session storage unavailable", sl.Err(err))
		return nil
	}
	if !ok || raw == "" {
		return nil
	}

	claims, err := s.maker.ParseToken(raw)
	if err != nil {
		s.log.Warn("stored session is malformed, treating as no session", sl.Err(err))
		return nil
	}

	return &models.User{
		UUID:               claims.UUID,
		Name:               claims.Name,
		Email:              claims.Email,
		PartnerName:        claims.PartnerName,
		SubscriptionStatus: claims.SubscriptionStatus,
	}
}

// Clear removes every session key (logout).
func (s *Store) Clear() {
	keys, err := s.kv.Keys()
	if err != nil {
		s.log.Warn("session storage unavailable", sl.Err(err))
		return
	}
	for _, k := range keys {
		if strings.HasPrefix(k, keyPrefix) {
			if err := s.kv.Delete(k); err != nil {
				s.log.Warn("failed to delete session key", slog.String("key", k), sl.Err(err))
			}
		}
	}
}

// SavePendingUpgrade writes the bridge record of an initiated checkout.
func (s *Store) SavePendingUpgrade(p models.PendingUpgrade) error {
	const op = "session.Store.SavePendingUpgrade"
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := s.kv.Set(keyPendingUpgrade, string(raw)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// PendingUpgrade returns the stored pending upgrade, or nil when none
// exists or the record is malformed.
func (s *Store) PendingUpgrade() *models.PendingUpgrade {
	raw, ok, err := s.kv.Get(keyPendingUpgrade)
	if err != nil || !ok || raw == "" {
		return nil
	}
	var p models.PendingUpgrade
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		s.log.Warn("stored pending upgrade is malformed", sl.Err(err))
		return nil
	}
	return &p
}

// ClearPendingUpgrade deletes the pending upgrade record.
func (s *Store) ClearPendingUpgrade() {
	if err := s.kv.Delete(keyPendingUpgrade); err != nil {
		s.log.Warn("failed to clear pending upgrade", sl.Err(err))
	}
}

// SaveAvatar stores the user's avatar image data.
func (s *Store) SaveAvatar(data string) error {
	return s.kv.Set(keyAvatar, data)
}

// Avatar returns the stored avatar image data, empty when absent.
func (s *Store) Avatar() string {
	v, _, _ := s.kv.Get(keyAvatar)
	return v
}

// SavePartnerAvatar stores the partner's avatar image data.
func (s *Store) SavePartnerAvatar(data string) error {
	return s.kv.Set(keyPartnerAvatar, data)
}

// PartnerAvatar returns the stored partner avatar, empty when absent.
func (s *Store) PartnerAvatar() string {
	v, _, _ := s.kv.Get(keyPartnerAvatar)
	return v
}

// SetLanguage stores the language preference.
func (s *Store) SetLanguage(lang string) error {
	return s.kv.Set(keyLanguage, lang)
}

// Language returns the stored language preference, "de" when unset.
func (s *Store) Language() string {
	v, ok, _ := s.kv.Get(keyLanguage)
	if !ok || v == "" {
		return "de"
	}
	return v
}
