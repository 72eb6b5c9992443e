package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/oceanus/vessel-records-backend/internal/models"
	"github.com/oceanus/vessel-records-backend/internal/service"
	"github.com/oceanus/vessel-records-backend/pkg/response"
)

// MovementHandler handles HTTP requests for vessel movement queries
type MovementHandler struct {
	service *service.MovementService
}

// NewMovementHandler creates a new movement handler
func NewMovementHandler(service *service.MovementService) *MovementHandler {
	return &MovementHandler{service: service}
}

// bindWindow decodes the common windowed request body.
func bindWindow(c *gin.Context) (*models.WindowQuery, bool) {
	var q models.WindowQuery
	if err := c.ShouldBindJSON(&q); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return nil, false
	}
	return &q, true
}

// fail maps service errors onto the response taxonomy: validation failures
// are client errors, everything else is a server error.
func fail(c *gin.Context, err error) {
	if errors.Is(err, service.ErrValidation) {
		response.BadRequest(c, err.Error())
		return
	}
	response.InternalError(c, err.Error())
}

// GetVesselMovements handles GET /api/v1/vessel-movements
func (h *MovementHandler) GetVesselMovements(c *gin.Context) {
	response.Success(c, h.service.TransportMovements())
}

// GetHarborMovements handles GET /api/v1/harbor-movements
func (h *MovementHandler) GetHarborMovements(c *gin.Context) {
	response.Success(c, h.service.HarborMovements())
}

// AggregateVesselMovements handles POST /api/v1/aggregate-vessel-movements
func (h *MovementHandler) AggregateVesselMovements(c *gin.Context) {
	q, ok := bindWindow(c)
	if !ok {
		return
	}

	segments, err := h.service.Aggregate(q)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, segments)
}

// VesselTimeSeries handles POST /api/v1/vessel-time-series
func (h *MovementHandler) VesselTimeSeries(c *gin.Context) {
	q, ok := bindWindow(c)
	if !ok {
		return
	}

	grid, err := h.service.TimeSeries(q)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, grid)
}

// VesselSimilarityEmbedding handles POST /api/v1/vessel-similarity-embedding
func (h *MovementHandler) VesselSimilarityEmbedding(c *gin.Context) {
	q, ok := bindWindow(c)
	if !ok {
		return
	}

	coords, err := h.service.Embedding(q)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, coords)
}

// VesselTravelDistance handles POST /api/v1/vessel-travel-distance
func (h *MovementHandler) VesselTravelDistance(c *gin.Context) {
	q, ok := bindWindow(c)
	if !ok {
		return
	}

	distances, err := h.service.TravelDistances(q)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, distances)
}
