package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/taskflowhq/taskflow-api/internal/auth"
)

type AuthHandler struct {
	svc *auth.Service
}

func NewAuthHandler(svc *auth.Service) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// --------- Requests ---------

type RequestCodeRequest struct {
	Phone string `json:"phone" binding:"required"`
}

type VerifyCodeRequest struct {
	Phone string `json:"phone" binding:"required"`
	Code  string `json:"code" binding:"required"`
}

type LoginRequest struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
	Code     string `json:"code"`
}

// --------- Handlers ---------

func (h *AuthHandler) RequestCode(c *gin.Context) {
	var req RequestCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	cooldown, err := h.svc.RequestCode(c.Request.Context(), req.Phone)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sent":                true,
		"retry_after_seconds": int(cooldown.Seconds()),
	})
}

func (h *AuthHandler) VerifyCode(c *gin.Context) {
	var req VerifyCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	valid, err := h.svc.CheckCode(c.Request.Context(), req.Phone, req.Code)
	if err != nil {
		writeError(c, err)
		return
	}
	if !valid {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_or_expired_code"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"valid": true})
}

// Login verifies the one-time code when one is supplied and then
// authenticates by phone lookup. Skipping the code goes straight from idle
// to logged in.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Code != "" {
		valid, err := h.svc.CheckCode(c.Request.Context(), req.Phone, req.Code)
		if err != nil {
			writeError(c, err)
			return
		}
		if !valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_or_expired_code"})
			return
		}
	}

	user, token, err := h.svc.Login(req.Phone, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  user.Sanitized(),
		"token": token,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.svc.Logout(currentUserID(c)); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"logged_out": true})
}

// Session exposes the durable session slot so a restarted client can
// rehydrate its authenticated state.
func (h *AuthHandler) Session(c *gin.Context) {
	user, ok, err := h.svc.CurrentUser()
	if err != nil {
		writeError(c, err)
		return
	}
	if !ok {
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"authenticated": true,
		"user":          user.Sanitized(),
	})
}
