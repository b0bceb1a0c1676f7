package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jakubodys-twoje-pokoje/TP-Cenniki-sub000/internal/domain"
	"github.com/jakubodys-twoje-pokoje/TP-Cenniki-sub000/internal/dto"
	"github.com/jakubodys-twoje-pokoje/TP-Cenniki-sub000/internal/service"
	"github.com/jakubodys-twoje-pokoje/TP-Cenniki-sub000/pkg/response"
)

// PushHandler handles price push HTTP requests
type PushHandler struct {
	pushService service.PushService
}

// NewPushHandler creates a new PushHandler
func NewPushHandler(pushService service.PushService) *PushHandler {
	return &PushHandler{pushService: pushService}
}

// Push handles POST /properties/:id/push. Prices only move to the PMS on
// this explicit request, never automatically.
func (h *PushHandler) Push(c *gin.Context) {
	var req dto.PushPricesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Invalid request body"))
		return
	}

	result, err := h.pushService.PushPrices(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPropertyNotFound):
			c.JSON(http.StatusNotFound, response.NotFound("Property not found"))
		case errors.Is(err, service.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, response.NotFound("Room not found"))
		case errors.Is(err, service.ErrSeasonNotFound):
			c.JSON(http.StatusNotFound, response.NotFound("Season not found"))
		case errors.Is(err, domain.ErrProfileNotFound):
			c.JSON(http.StatusNotFound, response.Error(response.ErrCodeProfileNotFound, "Profile not found"))
		case errors.Is(err, service.ErrInvalidDateRange):
			c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		case errors.Is(err, service.ErrPMSNotLinked):
			c.JSON(http.StatusBadRequest, response.BadRequest("Property is not linked to a PMS property"))
		default:
			c.JSON(http.StatusInternalServerError, response.InternalError("Failed to push prices"))
		}
		return
	}

	// per-channel outcomes ride in a success envelope; a channel that
	// failed is visible in its own result entry
	c.JSON(http.StatusOK, response.Success(result))
}
