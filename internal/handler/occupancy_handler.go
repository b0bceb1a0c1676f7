package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jakubodys-twoje-pokoje/TP-Cenniki-sub000/internal/dto"
	"github.com/jakubodys-twoje-pokoje/TP-Cenniki-sub000/internal/service"
	"github.com/jakubodys-twoje-pokoje/TP-Cenniki-sub000/pkg/response"
)

// OccupancyHandler handles occupancy read HTTP requests
type OccupancyHandler struct {
	occupancyService service.OccupancyService
}

// NewOccupancyHandler creates a new OccupancyHandler
func NewOccupancyHandler(occupancyService service.OccupancyService) *OccupancyHandler {
	return &OccupancyHandler{occupancyService: occupancyService}
}

// Occupancy handles GET /properties/:id/occupancy
func (h *OccupancyHandler) Occupancy(c *gin.Context) {
	var req dto.OccupancyRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("start_date and end_date are required"))
		return
	}

	result, err := h.occupancyService.Occupancy(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPropertyNotFound):
			c.JSON(http.StatusNotFound, response.NotFound("Property not found"))
		case errors.Is(err, service.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, response.NotFound("Room not found"))
		case errors.Is(err, service.ErrInvalidDateRange):
			c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		case errors.Is(err, service.ErrPMSNotLinked):
			c.JSON(http.StatusBadRequest, response.BadRequest("Property is not linked to a PMS property"))
		default:
			c.JSON(http.StatusBadGateway, response.Error(response.ErrCodeOccupancyUnavailable, "Failed to read occupancy from the PMS"))
		}
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}
