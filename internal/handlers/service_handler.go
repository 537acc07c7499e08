package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/doctors-portal-api/internal/httperr"
	"github.com/BruksfildServices01/doctors-portal-api/internal/httpresp"
	"github.com/BruksfildServices01/doctors-portal-api/internal/infra/cache"
)

type ServiceHandler struct {
	catalog *cache.CatalogCache
}

func NewServiceHandler(catalog *cache.CatalogCache) *ServiceHandler {
	return &ServiceHandler{catalog: catalog}
}

func (h *ServiceHandler) List(c *gin.Context) {
	services, err := h.catalog.ListServices(c.Request.Context())
	if err != nil {
		httperr.Upstream(c, "store_unavailable", "Could not load the service catalog.")
		return
	}

	httpresp.OK(c, services)
}
