package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/taskflowhq/taskflow-api/internal/httpresp"
	"github.com/taskflowhq/taskflow-api/internal/store"
)

type SettingsHandler struct {
	store *store.Store
}

func NewSettingsHandler(st *store.Store) *SettingsHandler {
	return &SettingsHandler{store: st}
}

func (h *SettingsHandler) ListPermissions(c *gin.Context) {
	permissions, err := h.store.Permissions()
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.List(c, permissions)
}

type RoleCapability struct {
	Feature string `json:"feature"`
	Admin   bool   `json:"admin"`
	Manager bool   `json:"manager"`
	Staff   bool   `json:"staff"`
	Guest   bool   `json:"guest"`
}

// RoleCapabilities returns the settings-page capability matrix. It is
// hand-coded and NOT derived from the stored Permission records; the two
// have never been connected.
func (h *SettingsHandler) RoleCapabilities(c *gin.Context) {
	httpresp.List(c, []RoleCapability{
		{Feature: "View Calendar", Admin: true, Manager: true, Staff: true, Guest: true},
		{Feature: "Create Events", Admin: true, Manager: true, Staff: true},
		{Feature: "Manage Users", Admin: true, Manager: true},
		{Feature: "Manage Event Types", Admin: true, Manager: true},
		{Feature: "Manage Settings", Admin: true},
	})
}
