package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// SessionManager issues and validates the signed value stored in the session
// cookie. The guard only checks cookie presence; signature and expiry are the
// issuer's concern.
type SessionManager struct {
	secret []byte
	ttl    time.Duration
}

// NewSessionManager builds a new manager.
func NewSessionManager(secret string, ttlMinutes int) *SessionManager {
	if ttlMinutes <= 0 {
		ttlMinutes = 720
	}
	return &SessionManager{secret: []byte(secret), ttl: time.Duration(ttlMinutes) * time.Minute}
}

// Issue builds and signs a session value.
func (sm *SessionManager) Issue() (string, time.Time, error) {
	expiresAt := time.Now().Add(sm.ttl)
	claims := jwt.RegisteredClaims{
		Subject:   "admin",
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(sm.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Validate checks a session value's signature and expiry.
func (sm *SessionManager) Validate(value string) error {
	parsed, err := jwt.ParseWithClaims(value, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return sm.secret, nil
	})
	if err != nil {
		return err
	}
	if !parsed.Valid {
		return errors.New("invalid session value")
	}
	return nil
}
