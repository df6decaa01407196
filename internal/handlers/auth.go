package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// bindJSONOrBadRequest tries to bind the request body into dst and writes a 400 JSON on failure.
// Returns false if the request was already handled, true otherwise.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if h.log != nil {
			h.log.Infow("bad_request_body", "err", err, "request_id", c.GetString(requestIDKey))
		}
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid body: " + err.Error()})
		return false
	}
	return true
}

// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  loginRequest  true  "Credentials"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/login [post]
func (h *Handler) login(c *gin.Context) {
	var input loginRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	token, err := h.services.Login(input.Username, input.Password)
	if err != nil {
		h.writeError(c, err, "login_failed")
		return
	}

	maxAge := int(h.services.SessionTTL().Seconds())
	c.SetCookie(sessionCookie, token, maxAge, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "login successful"})
}

// @Summary      Log out
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/logout [post]
func (h *Handler) logout(c *gin.Context) {
	// Idempotent: clearing an absent cookie is still a success.
	c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// @Summary      Report session state
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/check_login [get]
func (h *Handler) checkLogin(c *gin.Context) {
	token, err := c.Cookie(sessionCookie)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"logged_in": false})
		return
	}

	username, err := h.services.ParseSession(token)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"logged_in": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"logged_in": true, "username": username})
}
