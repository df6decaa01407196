package handlers

import (
	"context"
	"time"

	"wordblog/internal/logger"
	"wordblog/internal/models"
	"wordblog/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service mocks ----

type mockAuth struct {
	loginToken string
	loginErr   error
	parseName  string
	parseErr   error
	ttl        time.Duration

	lastLoginUsername string
	lastLoginPassword string
	lastParseToken    string
}

func (m *mockAuth) Login(username, password string) (string, error) {
	m.lastLoginUsername = username
	m.lastLoginPassword = password
	return m.loginToken, m.loginErr
}

func (m *mockAuth) ParseSession(token string) (string, error) {
	m.lastParseToken = token
	return m.parseName, m.parseErr
}

func (m *mockAuth) SessionTTL() time.Duration {
	if m.ttl == 0 {
		return time.Hour
	}
	return m.ttl
}

type mockArticles struct {
	listResp []models.Article
	listErr  error

	getResp models.Article
	getErr  error

	createErr error
	updateErr error
	deleteErr error

	lastGetSlug     string
	lastCreateIn    service.ArticleInput
	lastUpdateSlug  string
	lastUpdateIn    service.ArticleInput
	lastDeleteTitle string

	createCalls int
	updateCalls int
	deleteCalls int
}

func (m *mockArticles) List(ctx context.Context) ([]models.Article, error) {
	return m.listResp, m.listErr
}

func (m *mockArticles) GetBySlug(ctx context.Context, slug string) (models.Article, error) {
	m.lastGetSlug = slug
	return m.getResp, m.getErr
}

func (m *mockArticles) Create(ctx context.Context, in service.ArticleInput) error {
	m.createCalls++
	m.lastCreateIn = in
	return m.createErr
}

func (m *mockArticles) Update(ctx context.Context, slug string, in service.ArticleInput) error {
	m.updateCalls++
	m.lastUpdateSlug = slug
	m.lastUpdateIn = in
	return m.updateErr
}

func (m *mockArticles) DeleteByTitle(ctx context.Context, title string) error {
	m.deleteCalls++
	m.lastDeleteTitle = title
	return m.deleteErr
}

// newTestRouter builds a full router around the given (mock-backed) service.
func newTestRouter(s *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s, logger.Get(logger.ErrorLevel))
	return h.InitRoutes()
}
