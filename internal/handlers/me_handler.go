package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/taskflowhq/taskflow-api/internal/avatar"
	"github.com/taskflowhq/taskflow-api/internal/httperr"
	"github.com/taskflowhq/taskflow-api/internal/store"
)

type MeHandler struct {
	store    *store.Store
	uploader *avatar.Uploader
}

func NewMeHandler(st *store.Store, uploader *avatar.Uploader) *MeHandler {
	return &MeHandler{store: st, uploader: uploader}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	user, found, err := h.store.UserByID(currentUserID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	if !found {
		httperr.NotFound(c, "user_not_found", "user no longer exists")
		return
	}

	c.JSON(http.StatusOK, user.Sanitized())
}

// UploadAvatar replaces the caller's avatar with an uploaded image, pushed
// through the webp pipeline to object storage.
func (h *MeHandler) UploadAvatar(c *gin.Context) {
	if h.uploader == nil {
		httperr.NotFound(c, "avatar_upload_disabled", "avatar upload is not configured")
		return
	}

	user, found, err := h.store.UserByID(currentUserID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	if !found {
		httperr.NotFound(c, "user_not_found", "user no longer exists")
		return
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		httperr.BadRequest(c, "missing_avatar_file", "multipart field 'avatar' is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httperr.BadRequest(c, "unreadable_avatar_file", err.Error())
		return
	}
	defer file.Close()

	url, err := h.uploader.Upload(c.Request.Context(), user.ID, file)
	if err != nil {
		httperr.Internal(c, "avatar_upload_failed", err.Error())
		return
	}

	user.Avatar = url
	if _, err := h.store.SaveUser(user); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"avatar": url})
}
