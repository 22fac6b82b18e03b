package api

import (
	"net/http"

	resdto "travel-backoffice/internal/handler/dto/response"
	"travel-backoffice/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PackageHandler struct {
	q queries.PackageQueries
}

func NewPackageHandler(q queries.PackageQueries) *PackageHandler {
	return &PackageHandler{q: q}
}

// @Summary List packages
// @Description List the tour package catalog with base prices for a 7-day stay
// @Tags packages
// @Produce json
// @Success 200 {array} resdto.PackageResponse
// @Router /packages [get]
func (h *PackageHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromPackageViews(h.q.List()))
}
