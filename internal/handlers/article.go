package handlers

import (
	"errors"
	"net/http"

	"wordblog/internal/models"
	"wordblog/internal/service"

	"github.com/gin-gonic/gin"
)

// Request DTO shared by create and update. Required fields are enforced
// in the service, which distinguishes the two operations' rules.
type articleRequest struct {
	Title        string `json:"title"`
	Introduction string `json:"introduction"`
	Link         string `json:"link"`
	Word         string `json:"word"`
	TextPinyin   string `json:"text_pinyin"`
}

func (r articleRequest) toInput() service.ArticleInput {
	return service.ArticleInput{
		Title:        r.Title,
		Introduction: r.Introduction,
		Link:         r.Link,
		Word:         r.Word,
		TextPinyin:   r.TextPinyin,
	}
}

// writeError maps service error kinds to HTTP statuses; everything
// unrecognized is a 500 carrying the underlying error text.
func (h *Handler) writeError(c *gin.Context, err error, logKey string) {
	var verr service.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"message": verr.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "article not found"})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid username or password"})
	case errors.Is(err, service.ErrNotLoggedIn):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "not logged in"})
	default:
		if h.log != nil {
			h.log.Errorw(logKey, "err", err, "request_id", c.GetString(requestIDKey))
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "server error: " + err.Error()})
	}
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// @Summary      List all word entries
// @Tags         articles
// @Produce      json
// @Success      200  {array}   models.Article
// @Failure      500  {object}  map[string]string
// @Router       /api/getWordList [get]
func (h *Handler) listArticles(c *gin.Context) {
	articles, err := h.services.List(c.Request.Context())
	if err != nil {
		h.writeError(c, err, "list_articles_failed")
		return
	}
	if articles == nil {
		articles = []models.Article{}
	}
	c.JSON(http.StatusOK, articles)
}

// @Summary      Get one article by slug
// @Description  The slug is matched as a suffix of the stored link.
// @Tags         articles
// @Produce      json
// @Param        slug  path  string  true  "Link suffix"
// @Success      200  {object}  models.Article
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/article/{slug} [get]
func (h *Handler) getArticle(c *gin.Context) {
	article, err := h.services.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.writeError(c, err, "get_article_failed")
		return
	}
	c.JSON(http.StatusOK, article)
}

// @Summary      Create an article
// @Tags         articles
// @Accept       json
// @Produce      json
// @Param        body  body  articleRequest  true  "Article fields; word and text_pinyin optional"
// @Success      201  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/article [post]
func (h *Handler) addArticle(c *gin.Context) {
	var req articleRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	if err := h.services.Create(c.Request.Context(), req.toInput()); err != nil {
		h.writeError(c, err, "add_article_failed")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "article created"})
}

// @Summary      Update the articles matching a slug
// @Description  Requires a session cookie. All rows whose link ends in the slug are updated.
// @Tags         articles
// @Accept       json
// @Produce      json
// @Param        slug  path  string          true  "Link suffix"
// @Param        body  body  articleRequest  true  "Article fields; text_pinyin optional"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/article/{slug} [put]
func (h *Handler) updateArticle(c *gin.Context) {
	var req articleRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	if err := h.services.Update(c.Request.Context(), c.Param("slug"), req.toInput()); err != nil {
		h.writeError(c, err, "update_article_failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "article updated"})
}

// @Summary      Delete the articles with an exact title
// @Tags         articles
// @Produce      json
// @Param        title  path  string  true  "Exact title"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/article/{title} [delete]
func (h *Handler) deleteArticle(c *gin.Context) {
	if err := h.services.DeleteByTitle(c.Request.Context(), c.Param("title")); err != nil {
		h.writeError(c, err, "delete_article_failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "article deleted"})
}
