package repository

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"wordblog/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func contains(s, substr string) bool { return strings.Contains(s, substr) }

var articleColumns = []string{"id", "title", "introduction", "link", "word", "text_pinyin", "put_time"}

func newMockArticleRepo(t *testing.T) (*ArticleRepository, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	repo := NewArticleRepository(db)
	cleanup := func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet sqlmock expectations: %v", err)
		}
		_ = db.Close()
	}
	return repo, mock, cleanup
}

func TestArticleRepository_List(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name           string
		mockExpect     func(sqlmock.Sqlmock)
		wantLen        int
		wantErr        bool
		errContainsStr string
	}{
		{
			name: "two rows",
			mockExpect: func(m sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(articleColumns).
					AddRow(1, "Hello", "desc", "/words/hello", "content", "pinyin", now).
					AddRow(2, "World", "desc2", "/words/world", "", "", now)
				m.ExpectQuery(regexp.QuoteMeta(listArticlesSQL)).WillReturnRows(rows)
			},
			wantLen: 2,
		},
		{
			name: "empty table",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(listArticlesSQL)).
					WillReturnRows(sqlmock.NewRows(articleColumns))
			},
			wantLen: 0,
		},
		{
			name: "query error",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(listArticlesSQL)).
					WillReturnError(errors.New("db query failed"))
			},
			wantErr:        true,
			errContainsStr: "list articles",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := newMockArticleRepo(t)
			defer cleanup()

			tt.mockExpect(mock)

			got, err := repo.List(context.Background())

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				if !contains(err.Error(), tt.errContainsStr) {
					t.Fatalf("expected error to contain %q, got %q", tt.errContainsStr, err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != tt.wantLen {
				t.Fatalf("unexpected length: want %d, got %d", tt.wantLen, len(got))
			}
		})
	}
}

func TestArticleRepository_GetBySlug(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name           string
		slug           string
		mockExpect     func(sqlmock.Sqlmock)
		wantTitle      string
		wantNil        bool
		wantErr        bool
		errContainsStr string
	}{
		{
			name: "found by suffix",
			slug: "hello",
			mockExpect: func(m sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(articleColumns).
					AddRow(1, "Hello", "desc", "/words/hello", "content", "pinyin", now)
				m.ExpectQuery(regexp.QuoteMeta(selectArticleBySlugSQL)).
					WithArgs("%hello").
					WillReturnRows(rows)
			},
			wantTitle: "Hello",
		},
		{
			name: "no match",
			slug: "missing",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(selectArticleBySlugSQL)).
					WithArgs("%missing").
					WillReturnRows(sqlmock.NewRows(articleColumns))
			},
			wantNil: true,
		},
		{
			name: "query error",
			slug: "hello",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(selectArticleBySlugSQL)).
					WithArgs("%hello").
					WillReturnError(errors.New("db query failed"))
			},
			wantErr:        true,
			errContainsStr: "select article by slug",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := newMockArticleRepo(t)
			defer cleanup()

			tt.mockExpect(mock)

			got, err := repo.GetBySlug(context.Background(), tt.slug)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				if !contains(err.Error(), tt.errContainsStr) {
					t.Fatalf("expected error to contain %q, got %q", tt.errContainsStr, err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantNil {
				if got != nil {
					t.Fatalf("expected nil article, got %+v", got)
				}
				return
			}
			if got == nil || got.Title != tt.wantTitle {
				t.Fatalf("expected title %q, got %+v", tt.wantTitle, got)
			}
		})
	}
}

func TestArticleRepository_ExistsBySlug(t *testing.T) {
	repo, mock, cleanup := newMockArticleRepo(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(countArticlesBySlugSQL)).
		WithArgs("%hello").
		WillReturnRows(sqlmock.NewRows([]string{"COUNT(*)"}).AddRow(2))

	ok, err := repo.ExistsBySlug(context.Background(), "hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatalf("expected exists=true for matching rows")
	}

	mock.ExpectQuery(regexp.QuoteMeta(countArticlesBySlugSQL)).
		WithArgs("%missing").
		WillReturnRows(sqlmock.NewRows([]string{"COUNT(*)"}).AddRow(0))

	ok, err = repo.ExistsBySlug(context.Background(), "missing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatalf("expected exists=false for zero rows")
	}
}

func TestArticleRepository_Create(t *testing.T) {
	now := time.Now()
	article := models.Article{
		Title:        "Hello",
		Introduction: "desc",
		Link:         "/words/hello",
		Word:         "content",
		TextPinyin:   "pinyin",
		PutTime:      now,
	}

	t.Run("success commits", func(t *testing.T) {
		repo, mock, cleanup := newMockArticleRepo(t)
		defer cleanup()

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(insertArticleSQL)).
			WithArgs("Hello", "desc", "/words/hello", "content", "pinyin", now).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		if err := repo.Create(context.Background(), article); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("exec failure rolls back", func(t *testing.T) {
		repo, mock, cleanup := newMockArticleRepo(t)
		defer cleanup()

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(insertArticleSQL)).
			WithArgs("Hello", "desc", "/words/hello", "content", "pinyin", now).
			WillReturnError(errors.New("db exec failed"))
		mock.ExpectRollback()

		err := repo.Create(context.Background(), article)
		if err == nil {
			t.Fatalf("expected error, got nil")
		}
		if !contains(err.Error(), "insert article") {
			t.Fatalf("unexpected error text: %v", err)
		}
	})
}

func TestArticleRepository_UpdateBySlug(t *testing.T) {
	now := time.Now()
	article := models.Article{
		Title:        "Hello",
		Introduction: "desc",
		Link:         "/words/hello",
		Word:         "content",
		TextPinyin:   "pinyin",
		PutTime:      now,
	}

	t.Run("updates all matching rows", func(t *testing.T) {
		repo, mock, cleanup := newMockArticleRepo(t)
		defer cleanup()

		// The suffix match can legitimately touch more than one row.
		mock.ExpectExec(regexp.QuoteMeta(updateArticleBySlugSQL)).
			WithArgs("Hello", "desc", "/words/hello", "content", "pinyin", now, "%hello").
			WillReturnResult(sqlmock.NewResult(0, 2))

		n, err := repo.UpdateBySlug(context.Background(), "hello", article)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != 2 {
			t.Fatalf("expected 2 rows affected, got %d", n)
		}
	})

	t.Run("exec error", func(t *testing.T) {
		repo, mock, cleanup := newMockArticleRepo(t)
		defer cleanup()

		mock.ExpectExec(regexp.QuoteMeta(updateArticleBySlugSQL)).
			WithArgs("Hello", "desc", "/words/hello", "content", "pinyin", now, "%hello").
			WillReturnError(errors.New("db exec failed"))

		if _, err := repo.UpdateBySlug(context.Background(), "hello", article); err == nil {
			t.Fatalf("expected error, got nil")
		}
	})
}

func TestArticleRepository_DeleteByTitle(t *testing.T) {
	t.Run("reports rows removed", func(t *testing.T) {
		repo, mock, cleanup := newMockArticleRepo(t)
		defer cleanup()

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(deleteArticleByTitleSQL)).
			WithArgs("Hello").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		n, err := repo.DeleteByTitle(context.Background(), "Hello")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != 1 {
			t.Fatalf("expected 1 row removed, got %d", n)
		}
	})

	t.Run("zero rows is not an error here", func(t *testing.T) {
		repo, mock, cleanup := newMockArticleRepo(t)
		defer cleanup()

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(deleteArticleByTitleSQL)).
			WithArgs("Missing").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		n, err := repo.DeleteByTitle(context.Background(), "Missing")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != 0 {
			t.Fatalf("expected 0 rows removed, got %d", n)
		}
	})

	t.Run("exec failure rolls back", func(t *testing.T) {
		repo, mock, cleanup := newMockArticleRepo(t)
		defer cleanup()

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(deleteArticleByTitleSQL)).
			WithArgs("Hello").
			WillReturnError(errors.New("db exec failed"))
		mock.ExpectRollback()

		if _, err := repo.DeleteByTitle(context.Background(), "Hello"); err == nil {
			t.Fatalf("expected error, got nil")
		}
	})
}
