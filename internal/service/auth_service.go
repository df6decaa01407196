package service

import (
	"fmt"
	"time"

	"wordblog/internal/repository"

	"github.com/golang-jwt/jwt/v5"
)

const defaultSessionTTL = time.Hour

// AuthService validates credentials against the users table and
// issues/parses the signed session tokens.
type AuthService struct {
	authRepo repository.Authorization
	secret   []byte
	ttl      time.Duration
}

func NewAuthService(repo repository.Authorization, cfg SessionConfig) *AuthService {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &AuthService{
		authRepo: repo,
		secret:   []byte(cfg.Secret),
		ttl:      ttl,
	}
}

var _ Authorization = (*AuthService)(nil)

// Claims defines the session token payload: just the bound username.
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
}

// Login checks the supplied credentials and returns a signed session
// token on success. The stored password is plaintext and compared
// directly; a missing user and a wrong password both come back as
// ErrInvalidCredentials.
func (s *AuthService) Login(username, password string) (string, error) {
	if username == "" || password == "" {
		return "", ValidationError("username and password are required")
	}

	u, err := s.authRepo.GetByUsername(username)
	if err != nil {
		return "", err
	}
	if u == nil || u.Password != password {
		return "", ErrInvalidCredentials
	}

	return s.issueSession(username)
}

// ParseSession verifies a session token and returns the bound username.
func (s *AuthService) ParseSession(token string) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		// Ensure HMAC signing is used
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return "", ErrNotLoggedIn
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || claims.Username == "" {
		return "", ErrNotLoggedIn
	}
	return claims.Username, nil
}

// SessionTTL reports the configured session lifetime, used for the
// cookie Max-Age.
func (s *AuthService) SessionTTL() time.Duration {
	return s.ttl
}

func (s *AuthService) issueSession(username string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Username: username,
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}
