package api

import (
	"net/http"

	reqdto "travel-backoffice/internal/handler/dto/request"
	"travel-backoffice/internal/handler/httperr"
	"travel-backoffice/internal/handler/middleware"
	"travel-backoffice/internal/usecase/commands"
	"travel-backoffice/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	cmds  commands.SettingsCommands
	q     queries.SettingsQueries
	audit queries.AuditQueries
}

func NewSettingsHandler(cmds commands.SettingsCommands, q queries.SettingsQueries, audit queries.AuditQueries) *SettingsHandler {
	return &SettingsHandler{cmds: cmds, q: q, audit: audit}
}

// @Summary Get settings
// @Description Typed settings with defaults applied. The SMTP password is never returned.
// @Tags settings
// @Produce json
// @Success 200 {object} setting.Settings
// @Failure 403 {object} httperr.Response
// @Router /settings [get]
func (h *SettingsHandler) Get(c *gin.Context) {
	s, err := h.q.Get(c.Request.Context())
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

// @Summary Update settings
// @Description Writes only the keys present in the body
// @Tags settings
// @Accept json
// @Produce json
// @Param request body reqdto.SettingsRequest true "Key/value pairs"
// @Success 200 {object} setting.Settings
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /settings [put]
func (h *SettingsHandler) Update(c *gin.Context) {
	var req reqdto.SettingsRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.cmds.Update(c.Request.Context(), req.ToUpdates(), middleware.GetActor(c)); err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	s, err := h.q.Get(c.Request.Context())
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

// @Summary System information
// @Description Row counts and the ten most recent audit entries
// @Tags settings
// @Produce json
// @Success 200 {object} queries.SystemInfo
// @Failure 403 {object} httperr.Response
// @Router /settings/system [get]
func (h *SettingsHandler) System(c *gin.Context) {
	info, err := h.audit.SystemInfo(c.Request.Context())
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}
