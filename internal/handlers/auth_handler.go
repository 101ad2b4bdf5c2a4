package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/loanlift/loanlift-api/internal/auth"
	"github.com/loanlift/loanlift-api/internal/utils"
)

type issueTokenRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password"`
}

// Liveness answers a plain text banner on the root path.
func (h *Handler) Liveness(c *gin.Context) {
	c.String(http.StatusOK, "loanlift api is running")
}

// IssueToken signs a session token for the submitted identity and sets
// it as an HTTP-only cookie. When the stored user carries a password
// hash the submitted password must match it.
func (h *Handler) IssueToken(c *gin.Context) {
	var req issueTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.Users.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up user"})
		return
	}
	if user != nil && user.PasswordHash != "" {
		if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
	}

	token, err := h.Tokens.Issue(req.Email)
	if err != nil {
		log.Printf("IssueToken: could not sign token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token"})
		return
	}

	h.setSessionCookie(c, token)
	c.JSON(http.StatusOK, gin.H{"success": true, "token": token})
}

// Logout clears the session cookie.
func (h *Handler) Logout(c *gin.Context) {
	h.clearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) setSessionCookie(c *gin.Context, token string) {
	if h.SecureCookies {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteLaxMode)
	}
	c.SetCookie(auth.CookieName, token, int(auth.TokenTTL.Seconds()), "/", "", h.SecureCookies, true)
}

func (h *Handler) clearSessionCookie(c *gin.Context) {
	if h.SecureCookies {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteLaxMode)
	}
	c.SetCookie(auth.CookieName, "", -1, "/", "", h.SecureCookies, true)
}
