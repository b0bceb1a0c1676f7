package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jakubodys-twoje-pokoje/TP-Cenniki-sub000/internal/domain"
	"github.com/jakubodys-twoje-pokoje/TP-Cenniki-sub000/internal/dto"
	"github.com/jakubodys-twoje-pokoje/TP-Cenniki-sub000/internal/pricing"
	"github.com/jakubodys-twoje-pokoje/TP-Cenniki-sub000/internal/service"
	"github.com/jakubodys-twoje-pokoje/TP-Cenniki-sub000/pkg/response"
)

// PropertyHandler handles property configuration HTTP requests
type PropertyHandler struct {
	propertyService service.PropertyService
}

// NewPropertyHandler creates a new PropertyHandler
func NewPropertyHandler(propertyService service.PropertyService) *PropertyHandler {
	return &PropertyHandler{propertyService: propertyService}
}

// List handles GET /properties
func (h *PropertyHandler) List(c *gin.Context) {
	properties, err := h.propertyService.ListProperties(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to list properties"))
		return
	}

	summaries := make([]*dto.PropertySummary, len(properties))
	for i, property := range properties {
		summaries[i] = dto.ToPropertySummary(property)
	}
	c.JSON(http.StatusOK, response.Success(summaries))
}

// Get handles GET /properties/:id
func (h *PropertyHandler) Get(c *gin.Context) {
	property, err := h.propertyService.GetProperty(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrPropertyNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Property not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to get property"))
		return
	}
	c.JSON(http.StatusOK, response.Success(dto.ToPropertyResponse(property)))
}

// Create handles POST /properties
func (h *PropertyHandler) Create(c *gin.Context) {
	var req dto.CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Invalid request body"))
		return
	}

	property, err := h.propertyService.CreateProperty(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, domain.ErrPropertyNameRequired) {
			c.JSON(http.StatusBadRequest, response.BadRequest("Property name is required"))
			return
		}
		if isPricingConfigError(err) {
			c.JSON(http.StatusUnprocessableEntity, response.InvalidPricingConfig(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to create property"))
		return
	}

	c.JSON(http.StatusCreated, response.Success(dto.ToPropertyResponse(property)))
}

// Update handles PUT /properties/:id
func (h *PropertyHandler) Update(c *gin.Context) {
	var req dto.UpdatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Invalid request body"))
		return
	}

	property, err := h.propertyService.UpdateProperty(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, service.ErrPropertyNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Property not found"))
			return
		}
		if isPricingConfigError(err) {
			c.JSON(http.StatusUnprocessableEntity, response.InvalidPricingConfig(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to update property"))
		return
	}

	c.JSON(http.StatusOK, response.Success(dto.ToPropertyResponse(property)))
}

// Delete handles DELETE /properties/:id
func (h *PropertyHandler) Delete(c *gin.Context) {
	if err := h.propertyService.DeleteProperty(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrPropertyNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Property not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to delete property"))
		return
	}
	c.JSON(http.StatusOK, response.Success(map[string]string{"message": "Property deleted successfully"}))
}

// SaveProfile handles POST /properties/:id/profiles
func (h *PropertyHandler) SaveProfile(c *gin.Context) {
	var req dto.SaveProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Profile name is required"))
		return
	}

	profile, err := h.propertyService.SaveProfile(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, service.ErrPropertyNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Property not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to save profile"))
		return
	}

	c.JSON(http.StatusCreated, response.Success(dto.ProfileSummary{ID: profile.ID, Name: profile.Name}))
}

// DeleteProfile handles DELETE /properties/:id/profiles/:profileId
func (h *PropertyHandler) DeleteProfile(c *gin.Context) {
	err := h.propertyService.DeleteProfile(c.Request.Context(), c.Param("id"), c.Param("profileId"))
	if err != nil {
		if errors.Is(err, service.ErrPropertyNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Property not found"))
			return
		}
		if errors.Is(err, domain.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, response.Error(response.ErrCodeProfileNotFound, "Profile not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to delete profile"))
		return
	}
	c.JSON(http.StatusOK, response.Success(map[string]string{"message": "Profile deleted successfully"}))
}

// isPricingConfigError reports whether the error came out of configuration
// validation rather than storage
func isPricingConfigError(err error) bool {
	return errors.Is(err, pricing.ErrInvalidMultiplier) ||
		errors.Is(err, pricing.ErrInvalidMaxOccupancy) ||
		errors.Is(err, pricing.ErrInvalidPercent) ||
		errors.Is(err, pricing.ErrInvalidChannelConfig)
}
