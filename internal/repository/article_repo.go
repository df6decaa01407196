package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"wordblog/internal/models"
)

type ArticleRepository struct {
	db *sql.DB
}

func NewArticleRepository(db *sql.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

var _ Articles = (*ArticleRepository)(nil)

const (
	listArticlesSQL = `SELECT id, title, introduction, link, word, text_pinyin, put_time FROM word_info`

	// Suffix match: callers pass the bare slug, the pattern is built here.
	selectArticleBySlugSQL = `SELECT id, title, introduction, link, word, text_pinyin, put_time FROM word_info WHERE link LIKE ? LIMIT 1`
	countArticlesBySlugSQL = `SELECT COUNT(*) FROM word_info WHERE link LIKE ?`
	updateArticleBySlugSQL = `UPDATE word_info SET title = ?, introduction = ?, link = ?, word = ?, text_pinyin = ?, put_time = ? WHERE link LIKE ?`

	insertArticleSQL        = `INSERT INTO word_info (title, introduction, link, word, text_pinyin, put_time) VALUES (?, ?, ?, ?, ?, ?)`
	deleteArticleByTitleSQL = `DELETE FROM word_info WHERE title = ?`
)

// slugPattern builds the LIKE pattern matching any link ending in slug.
func slugPattern(slug string) string {
	return "%" + slug
}

// List returns every row in the database's natural order. Callers must
// not rely on any particular ordering.
func (r *ArticleRepository) List(ctx context.Context) ([]models.Article, error) {
	rows, err := r.db.QueryContext(ctx, listArticlesSQL)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	defer rows.Close()

	var articles []models.Article
	for rows.Next() {
		var a models.Article
		if err := rows.Scan(&a.ID, &a.Title, &a.Introduction, &a.Link, &a.Word, &a.TextPinyin, &a.PutTime); err != nil {
			return nil, fmt.Errorf("scan article row: %w", err)
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate article rows: %w", err)
	}
	return articles, nil
}

// GetBySlug returns the first row whose link ends in slug, or (nil, nil)
// if none matches.
func (r *ArticleRepository) GetBySlug(ctx context.Context, slug string) (*models.Article, error) {
	var a models.Article
	err := r.db.QueryRowContext(ctx, selectArticleBySlugSQL, slugPattern(slug)).
		Scan(&a.ID, &a.Title, &a.Introduction, &a.Link, &a.Word, &a.TextPinyin, &a.PutTime)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select article by slug %q: %w", slug, err)
	}
	return &a, nil
}

func (r *ArticleRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, countArticlesBySlugSQL, slugPattern(slug)).Scan(&n); err != nil {
		return false, fmt.Errorf("count articles by slug %q: %w", slug, err)
	}
	return n > 0, nil
}

// Create inserts a new row inside an explicit transaction, rolling back
// on failure.
func (r *ArticleRepository) Create(ctx context.Context, a models.Article) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin insert article: %w", err)
	}
	if _, err := tx.ExecContext(ctx, insertArticleSQL,
		a.Title, a.Introduction, a.Link, a.Word, a.TextPinyin, a.PutTime); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("insert article %q: %w", a.Title, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit insert article %q: %w", a.Title, err)
	}
	return nil
}

// UpdateBySlug sets every field on all rows whose link ends in slug and
// returns how many rows were touched. The suffix match can hit more than
// one row; that mirrors the lookup semantics.
func (r *ArticleRepository) UpdateBySlug(ctx context.Context, slug string, a models.Article) (int64, error) {
	res, err := r.db.ExecContext(ctx, updateArticleBySlugSQL,
		a.Title, a.Introduction, a.Link, a.Word, a.TextPinyin, a.PutTime, slugPattern(slug))
	if err != nil {
		return 0, fmt.Errorf("update article by slug %q: %w", slug, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected for slug %q: %w", slug, err)
	}
	return n, nil
}

// DeleteByTitle removes all rows with the exact title inside an explicit
// transaction and returns how many rows were removed.
func (r *ArticleRepository) DeleteByTitle(ctx context.Context, title string) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin delete article: %w", err)
	}
	res, err := tx.ExecContext(ctx, deleteArticleByTitleSQL, title)
	if err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("delete article %q: %w", title, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("rows affected for title %q: %w", title, err)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit delete article %q: %w", title, err)
	}
	return n, nil
}
