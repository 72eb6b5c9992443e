package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/oceanus/vessel-records-backend/internal/service"
	"github.com/oceanus/vessel-records-backend/pkg/response"
)

// ReportHandler handles HTTP requests for commodity and location reports
type ReportHandler struct {
	service *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(service *service.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// GetCommodityDistributions handles GET /api/v1/commodity-distributions
func (h *ReportHandler) GetCommodityDistributions(c *gin.Context) {
	response.Success(c, h.service.Distributions())
}

// GetCommodityLedger handles GET /api/v1/commodity-ledger?direction=all|import|export
func (h *ReportHandler) GetCommodityLedger(c *gin.Context) {
	direction := c.DefaultQuery("direction", "all")

	records, err := h.service.CommodityLedger(direction)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, records)
}

// GetVesselCommodityUnion handles GET /api/v1/vessel-commodity-union
func (h *ReportHandler) GetVesselCommodityUnion(c *gin.Context) {
	response.Success(c, h.service.VesselCommodityUnion())
}

// GetCommodityFishingLocations handles GET /api/v1/commodity-fishing-locations
func (h *ReportHandler) GetCommodityFishingLocations(c *gin.Context) {
	response.Success(c, h.service.FishingLocations())
}

// GetLocations handles GET /api/v1/locations
func (h *ReportHandler) GetLocations(c *gin.Context) {
	response.Success(c, h.service.Locations())
}
