package repository

import (
	"context"
	"database/sql"

	"wordblog/internal/models"
)

type Authorization interface {
	Create(username, password string) (int, error)
	GetByUsername(username string) (*models.User, error)
}

// Articles is the data access surface for the word_info table. Slug
// arguments are matched as a suffix of the stored link, delete matches
// the exact title.
type Articles interface {
	List(ctx context.Context) ([]models.Article, error)
	GetBySlug(ctx context.Context, slug string) (*models.Article, error)
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
	Create(ctx context.Context, a models.Article) error
	UpdateBySlug(ctx context.Context, slug string, a models.Article) (int64, error)
	DeleteByTitle(ctx context.Context, title string) (int64, error)
}

type Repository struct {
	Articles Articles
	Auth     Authorization
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Articles: NewArticleRepository(db),
		Auth:     NewUserRepository(db),
	}
}
