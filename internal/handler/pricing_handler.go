package handler

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jakubodys-twoje-pokoje/TP-Cenniki-sub000/internal/domain"
	"github.com/jakubodys-twoje-pokoje/TP-Cenniki-sub000/internal/dto"
	"github.com/jakubodys-twoje-pokoje/TP-Cenniki-sub000/internal/export"
	"github.com/jakubodys-twoje-pokoje/TP-Cenniki-sub000/internal/service"
	"github.com/jakubodys-twoje-pokoje/TP-Cenniki-sub000/pkg/response"
)

// PricingHandler handles grid and ladder HTTP requests
type PricingHandler struct {
	pricingService  service.PricingService
	propertyService service.PropertyService
}

// NewPricingHandler creates a new PricingHandler
func NewPricingHandler(pricingService service.PricingService, propertyService service.PropertyService) *PricingHandler {
	return &PricingHandler{
		pricingService:  pricingService,
		propertyService: propertyService,
	}
}

// Grid handles GET /properties/:id/grid
func (h *PricingHandler) Grid(c *gin.Context) {
	var req dto.GridRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Invalid query parameters"))
		return
	}

	grid, err := h.pricingService.Grid(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.writeError(c, err, "Failed to compute pricing grid")
		return
	}
	c.JSON(http.StatusOK, response.Success(grid))
}

// GridExport handles GET /properties/:id/grid/export - the grid as a CSV file
func (h *PricingHandler) GridExport(c *gin.Context) {
	var req dto.GridRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Invalid query parameters"))
		return
	}

	propertyID := c.Param("id")
	grid, err := h.pricingService.Grid(c.Request.Context(), propertyID, &req)
	if err != nil {
		h.writeError(c, err, "Failed to compute pricing grid")
		return
	}

	// channel column order follows the stored configuration
	property, err := h.propertyService.GetProperty(c.Request.Context(), propertyID)
	if err != nil {
		h.writeError(c, err, "Failed to get property")
		return
	}
	cfg, err := property.ConfigFor(req.ProfileID)
	if err != nil {
		h.writeError(c, err, "Failed to resolve profile")
		return
	}

	var buf bytes.Buffer
	if err := export.WriteGridCSV(&buf, grid.Rows, cfg.Channels); err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to render CSV"))
		return
	}

	filename := fmt.Sprintf("cennik-%s.csv", propertyID)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// Ladder handles GET /properties/:id/ladder
func (h *PricingHandler) Ladder(c *gin.Context) {
	var req dto.LadderRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("room_id and season_id are required"))
		return
	}

	ladder, err := h.pricingService.Ladder(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.writeError(c, err, "Failed to compute price ladder")
		return
	}
	c.JSON(http.StatusOK, response.Success(ladder))
}

func (h *PricingHandler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrPropertyNotFound):
		c.JSON(http.StatusNotFound, response.NotFound("Property not found"))
	case errors.Is(err, service.ErrRoomNotFound):
		c.JSON(http.StatusNotFound, response.NotFound("Room not found"))
	case errors.Is(err, service.ErrSeasonNotFound):
		c.JSON(http.StatusNotFound, response.NotFound("Season not found"))
	case errors.Is(err, domain.ErrProfileNotFound):
		c.JSON(http.StatusNotFound, response.Error(response.ErrCodeProfileNotFound, "Profile not found"))
	default:
		c.JSON(http.StatusInternalServerError, response.InternalError(fallback))
	}
}
