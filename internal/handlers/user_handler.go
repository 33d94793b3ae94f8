package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/taskflowhq/taskflow-api/internal/audit"
	"github.com/taskflowhq/taskflow-api/internal/auth"
	"github.com/taskflowhq/taskflow-api/internal/httperr"
	"github.com/taskflowhq/taskflow-api/internal/httpresp"
	"github.com/taskflowhq/taskflow-api/internal/models"
	"github.com/taskflowhq/taskflow-api/internal/store"
	"github.com/taskflowhq/taskflow-api/internal/validators"
)

type UserHandler struct {
	store *store.Store
	svc   *auth.Service
	audit *audit.Dispatcher
}

func NewUserHandler(st *store.Store, svc *auth.Service, auditDispatcher *audit.Dispatcher) *UserHandler {
	return &UserHandler{store: st, svc: svc, audit: auditDispatcher}
}

// --------- Requests ---------

type SaveUserRequest struct {
	ID       string `json:"id"`
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Role     string `json:"role" binding:"required"`
	Avatar   string `json:"avatar"`
	Password string `json:"password"`
}

type InviteRequest struct {
	Phone string `json:"phone" binding:"required"`
	Role  string `json:"role" binding:"required"`
}

// --------- Handlers ---------

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.store.Users()
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]models.User, 0, len(users))
	for _, u := range users {
		out = append(out, u.Sanitized())
	}
	httpresp.List(c, out)
}

func (h *UserHandler) Save(c *gin.Context) {
	var req SaveUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	phone := strings.TrimSpace(req.Phone)
	if !validators.IsPhoneValid(phone) {
		httperr.BadRequest(c, "invalid_phone", "phone must be +<10..15 digits>")
		return
	}

	role := models.Role(req.Role)
	switch role {
	case models.RoleAdmin, models.RoleManager, models.RoleStaff, models.RoleGuest:
	default:
		httperr.BadRequest(c, "invalid_role", "unknown role")
		return
	}

	user := models.User{
		ID:     req.ID,
		Name:   req.Name,
		Phone:  phone,
		Role:   role,
		Avatar: req.Avatar,
	}

	// passwords are hashed at rest but never checked at login; the login
	// flow authenticates by phone + one-time code
	if req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			httperr.Internal(c, "failed_to_hash_password", err.Error())
			return
		}
		user.PasswordHash = string(hashed)
	} else if req.ID != "" {
		if existing, found, err := h.store.UserByID(req.ID); err == nil && found {
			user.PasswordHash = existing.PasswordHash
		}
	}

	saved, err := h.store.SaveUser(user)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, saved.Sanitized())
}

// Delete removes a user. Self-deletion is blocked in the UI only; the store
// stays permissive on purpose.
func (h *UserHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.store.DeleteUser(id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

func (h *UserHandler) Invite(c *gin.Context) {
	var req InviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	inviter, found, err := h.store.UserByID(currentUserID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	if !found {
		httperr.NotFound(c, "user_not_found", "user no longer exists")
		return
	}

	if err := h.svc.SendInvitation(c.Request.Context(), req.Phone, inviter.Name, req.Role); err != nil {
		writeError(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &inviter.ID,
		Action:   "user_invited",
		Entity:   "user",
		Metadata: map[string]string{"phone": req.Phone, "role": req.Role},
	})

	c.JSON(http.StatusOK, gin.H{"invited": true})
}
