package services

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "financeai/internal/errors"
	"financeai/internal/models"
)

const sessionTokenBytes = 32

// sessionService stores login sessions as SHA-256 hashes of opaque tokens.
type sessionService struct {
	db  *gorm.DB
	ttl time.Duration
	now func() time.Time
}

// NewSessionService creates a new SessionServicer with the given lifetime.
func NewSessionService(db *gorm.DB, ttl time.Duration) SessionServicer {
	return &sessionService{db: db, ttl: ttl, now: clock}
}

// HashToken returns the SHA-256 hex digest of a token string.
func HashToken(token string) string {
	h := sha256.Sum256([]byte(token))
	return hex.EncodeToString(h[:])
}

// CreateSession starts a session and returns the raw token for the cookie.
func (s *sessionService) CreateSession(userID string) (string, error) {
	buf := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	raw := hex.EncodeToString(buf)

	session := &models.Session{
		UserID:    userID,
		TokenHash: HashToken(raw),
		ExpiresAt: s.now().Add(s.ttl),
	}
	if err := s.db.Create(session).Error; err != nil {
		return "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return raw, nil
}

// ResolveSession returns the user behind a live session. Expired sessions
// are removed and rejected.
func (s *sessionService) ResolveSession(rawToken string) (string, error) {
	if rawToken == "" {
		return "", apperrors.ErrUnauthorized
	}

	var session models.Session
	if err := s.db.Where("token_hash = ?", HashToken(rawToken)).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.ErrUnauthorized
		}
		return "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if session.Expired(s.now()) {
		s.db.Delete(&session)
		return "", apperrors.ErrUnauthorized
	}
	return session.UserID, nil
}

// RevokeSession deletes the session. Unknown tokens are ignored.
func (s *sessionService) RevokeSession(rawToken string) error {
	if rawToken == "" {
		return nil
	}
	if err := s.db.Where("token_hash = ?", HashToken(rawToken)).Delete(&models.Session{}).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
