package service

import (
	"context"
	"time"

	"wordblog/internal/models"
	"wordblog/internal/repository"
)

// Authorization handles login and the signed session tokens that gate
// the update endpoint.
type Authorization interface {
	Login(username, password string) (string, error)
	ParseSession(token string) (string, error)
	SessionTTL() time.Duration
}

// Articles exposes the word_info CRUD operations.
type Articles interface {
	List(ctx context.Context) ([]models.Article, error)
	GetBySlug(ctx context.Context, slug string) (models.Article, error)
	Create(ctx context.Context, in ArticleInput) error
	Update(ctx context.Context, slug string, in ArticleInput) error
	DeleteByTitle(ctx context.Context, title string) error
}

type Service struct {
	Articles
	Authorization
}

// SessionConfig carries the signing secret and lifetime for session
// tokens, supplied from configuration.
type SessionConfig struct {
	Secret string
	TTL    time.Duration
}

func NewService(repos *repository.Repository, session SessionConfig) *Service {
	return &Service{
		Articles:      NewArticleService(repos.Articles),
		Authorization: NewAuthService(repos.Auth, session),
	}
}
