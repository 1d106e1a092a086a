package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"arbejdstid/internal/cache"
)

const sessionKeyPrefix = "session:"

// SessionCookie is the name of the cookie carrying the session token.
const SessionCookie = "session"

// Claims are the JWT claims carried by the session cookie. The RegisteredClaims
// ID is the Redis session id; the cookie alone is never trusted.
type Claims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// TokenService signs and validates session cookie tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a token service with the given signing secret and
// session lifetime.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// TTL returns the configured session lifetime.
func (s *TokenService) TTL() time.Duration { return s.ttl }

// Secret returns the signing secret for middleware configuration.
func (s *TokenService) Secret() []byte { return s.secret }

// Generate signs a session token for the user. The session id is returned
// separately so it can be recorded in the session store.
func (s *TokenService) Generate(userID uint, username string) (sessionID, token string, err error) {
	sessionID = uuid.New().String()
	claims := &Claims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	tokenObj := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	token, err = tokenObj.SignedString(s.secret)
	return sessionID, token, err
}

// Validate parses a session token and returns its claims.
func (s *TokenService) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.ID == "" {
		return nil, errors.New("session id not found")
	}
	return claims, nil
}

// SessionStoreInterface defines server-side session state operations.
type SessionStoreInterface interface {
	Put(ctx context.Context, sessionID string, userID uint, username string, ttl time.Duration) error
	Get(ctx context.Context, sessionID string) (userID uint, username string, err error)
	Delete(ctx context.Context, sessionID string) error
}

// SessionStore keeps the authoritative session records in Redis. Logout
// deletes the record, so a replayed cookie fails the guard even before the
// token expires.
type SessionStore struct {
	cache *cache.Client
}

var _ SessionStoreInterface = (*SessionStore)(nil)

// NewSessionStore creates a Redis-backed session store.
func NewSessionStore(cache *cache.Client) *SessionStore {
	return &SessionStore{cache: cache}
}

// Put records a session with TTL.
func (s *SessionStore) Put(ctx context.Context, sessionID string, userID uint, username string, ttl time.Duration) error {
	payload, err := json.Marshal(map[string]interface{}{
		"user_id":  userID,
		"username": username,
	})
	if err != nil {
		return fmt.Errorf("marshal session data: %w", err)
	}
	return s.cache.Set(ctx, sessionKeyPrefix+sessionID, payload, ttl)
}

// Get retrieves a session record. A missing or malformed record is an error;
// callers treat it as an expired session.
func (s *SessionStore) Get(ctx context.Context, sessionID string) (userID uint, username string, err error) {
	data, err := s.cache.Get(ctx, sessionKeyPrefix+sessionID)
	if err != nil {
		return 0, "", fmt.Errorf("session lookup: %w", err)
	}
	if data == nil {
		return 0, "", fmt.Errorf("session not found")
	}

	var record map[string]interface{}
	if err := json.Unmarshal(data, &record); err != nil {
		return 0, "", fmt.Errorf("unmarshal session data: %w", err)
	}

	uid, ok := record["user_id"].(float64)
	if !ok {
		return 0, "", fmt.Errorf("invalid user_id in session data")
	}
	username, ok = record["username"].(string)
	if !ok {
		return 0, "", fmt.Errorf("invalid username in session data")
	}
	return uint(uid), username, nil
}

// Delete removes a session record.
func (s *SessionStore) Delete(ctx context.Context, sessionID string) error {
	return s.cache.Delete(ctx, sessionKeyPrefix+sessionID)
}
