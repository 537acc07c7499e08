package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/doctors-portal-api/internal/httperr"
	"github.com/BruksfildServices01/doctors-portal-api/internal/httpresp"
	"github.com/BruksfildServices01/doctors-portal-api/internal/infra/repository"
)

type AuditLogsHandler struct {
	logs *repository.AuditLogMongoRepository
}

func NewAuditLogsHandler(logs *repository.AuditLogMongoRepository) *AuditLogsHandler {
	return &AuditLogsHandler{logs: logs}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	limit := int64(50)
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.ParseInt(raw, 10, 64); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	if limit > 200 {
		limit = 200
	}

	logs, err := h.logs.ListRecent(c.Request.Context(), limit)
	if err != nil {
		httperr.Upstream(c, "store_unavailable", "Could not load audit logs.")
		return
	}

	httpresp.List(c, logs)
}
