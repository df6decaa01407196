package service

import (
	"context"
	"time"

	"wordblog/internal/models"
	"wordblog/internal/repository"
)

// ArticleInput carries the client-supplied fields of an article. The
// server stamps put_time itself.
type ArticleInput struct {
	Title        string
	Introduction string
	Link         string
	Word         string
	TextPinyin   string
}

type ArticleService struct {
	repo repository.Articles

	// now is swappable in tests.
	now func() time.Time
}

func NewArticleService(repo repository.Articles) *ArticleService {
	return &ArticleService{repo: repo, now: time.Now}
}

var _ Articles = (*ArticleService)(nil)

func (s *ArticleService) List(ctx context.Context) ([]models.Article, error) {
	return s.repo.List(ctx)
}

func (s *ArticleService) GetBySlug(ctx context.Context, slug string) (models.Article, error) {
	a, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return models.Article{}, err
	}
	if a == nil {
		return models.Article{}, ErrNotFound
	}
	return *a, nil
}

// Create validates the required fields and inserts a new row with the
// current time as put_time. Word and TextPinyin may be empty.
func (s *ArticleService) Create(ctx context.Context, in ArticleInput) error {
	if in.Title == "" || in.Introduction == "" || in.Link == "" {
		return ValidationError("title, introduction and link are required")
	}
	return s.repo.Create(ctx, models.Article{
		Title:        in.Title,
		Introduction: in.Introduction,
		Link:         in.Link,
		Word:         in.Word,
		TextPinyin:   in.TextPinyin,
		PutTime:      s.now(),
	})
}

// Update overwrites every field of the rows matching slug and re-stamps
// put_time. Word is required here, unlike Create. The existence check
// and the update are two statements, not one atomic step; concurrent
// deletes can still make the update touch zero rows.
func (s *ArticleService) Update(ctx context.Context, slug string, in ArticleInput) error {
	if in.Title == "" || in.Introduction == "" || in.Link == "" || in.Word == "" {
		return ValidationError("title, introduction, link and word are required")
	}

	exists, err := s.repo.ExistsBySlug(ctx, slug)
	if err != nil {
		return err
	}
	if !exists {
		return ErrNotFound
	}

	_, err = s.repo.UpdateBySlug(ctx, slug, models.Article{
		Title:        in.Title,
		Introduction: in.Introduction,
		Link:         in.Link,
		Word:         in.Word,
		TextPinyin:   in.TextPinyin,
		PutTime:      s.now(),
	})
	return err
}

// DeleteByTitle removes all rows with the exact title; zero removed rows
// is a not-found.
func (s *ArticleService) DeleteByTitle(ctx context.Context, title string) error {
	n, err := s.repo.DeleteByTitle(ctx, title)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
