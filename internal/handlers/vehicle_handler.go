package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/drive-schedule-service/internal/services"
	"github.com/SAP-F-2025/drive-schedule-service/internal/utils"
)

type VehicleHandler struct {
	BaseHandler
	service services.VehicleService
}

func NewVehicleHandler(service services.VehicleService, logger utils.Logger) *VehicleHandler {
	return &VehicleHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// CreateVehicle registers a vehicle
// @Summary Create vehicle
// @Description Status defaults to active when omitted
// @Tags vehicles
// @Accept json
// @Produce json
// @Param request body services.CreateVehicleRequest true "Vehicle"
// @Success 201 {object} models.Vehicle
// @Failure 400 {object} ErrorResponse "Bad request"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /vehicles [post]
func (h *VehicleHandler) CreateVehicle(c *gin.Context) {
	var req services.CreateVehicleRequest
	if !h.bindJSON(c, &req) {
		return
	}

	h.LogRequest(c, "Creating vehicle", "plate", req.Plate)

	vehicle, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, vehicle)
}

// ListVehicles lists every vehicle
// @Summary List vehicles
// @Tags vehicles
// @Produce json
// @Success 200 {array} models.Vehicle
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /vehicles [get]
func (h *VehicleHandler) ListVehicles(c *gin.Context) {
	h.LogRequest(c, "Listing vehicles")

	vehicles, err := h.service.List(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, vehicles)
}
