package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/freight_management_app/internal/core/domain"
	portssvc "github.com/SscSPs/freight_management_app/internal/core/ports/services"
	"github.com/SscSPs/freight_management_app/internal/dto"
	"github.com/SscSPs/freight_management_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type shipmentHandler struct {
	shipmentService portssvc.ShipmentSvcFacade
}

func newShipmentHandler(ss portssvc.ShipmentSvcFacade) *shipmentHandler {
	return &shipmentHandler{
		shipmentService: ss,
	}
}

func registerShipmentRoutes(rg *gin.RouterGroup, shipmentService portssvc.ShipmentSvcFacade) {
	h := newShipmentHandler(shipmentService)

	shipments := rg.Group("/shipments", middleware.RequireSection(domain.SectionShipments))
	{
		shipments.GET("", h.listShipments)
		shipments.POST("", h.createShipment)
		shipments.GET("/:shipmentID", h.getShipment)
		shipments.PUT("/:shipmentID", h.updateShipment)
		shipments.DELETE("/:shipmentID", h.deleteShipment)
	}
}

// listShipments godoc
// @Summary List shipments
// @Description Lists shipments newest first with the customer company name, optionally filtered
// @Tags shipments
// @Produce  json
// @Param   status query string false "Shipment status"
// @Param   customerID query string false "Customer ID"
// @Success 200 {array} domain.Shipment
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list shipments"
// @Security BearerAuth
// @Router /shipments [get]
func (h *shipmentHandler) listShipments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListShipmentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListShipments", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	shipments, err := h.shipmentService.ListShipments(c.Request.Context(), params)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list shipments")
		return
	}
	c.JSON(http.StatusOK, shipments)
}

// getShipment godoc
// @Summary Get a shipment by ID
// @Tags shipments
// @Produce  json
// @Param   shipmentID path string true "Shipment ID"
// @Success 200 {object} domain.Shipment
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Shipment not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve shipment"
// @Security BearerAuth
// @Router /shipments/{shipmentID} [get]
func (h *shipmentHandler) getShipment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	shipmentID := c.Param("shipmentID")

	shipment, err := h.shipmentService.GetShipmentByID(c.Request.Context(), shipmentID)
	if err != nil {
		respondWithError(c, logger.With(slog.String("shipment_id", shipmentID)), err, "Failed to retrieve shipment")
		return
	}
	c.JSON(http.StatusOK, shipment)
}

// createShipment godoc
// @Summary Create a shipment
// @Tags shipments
// @Accept  json
// @Produce  json
// @Param   shipment body dto.CreateShipmentRequest true "Shipment details"
// @Success 201 {object} domain.Shipment
// @Failure 400 {object} ErrorResponse "Invalid input or unknown customer"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 409 {object} ErrorResponse "Shipment number already exists"
// @Failure 500 {object} ErrorResponse "Failed to create shipment"
// @Security BearerAuth
// @Router /shipments [post]
func (h *shipmentHandler) createShipment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateShipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateShipment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("creator_user_id", creatorUserID))

	shipment, err := h.shipmentService.CreateShipment(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create shipment")
		return
	}

	logger.Info("Shipment created successfully", slog.String("shipment_id", shipment.ShipmentID))
	c.JSON(http.StatusCreated, shipment)
}

// updateShipment godoc
// @Summary Update a shipment
// @Tags shipments
// @Accept  json
// @Produce  json
// @Param   shipmentID path string true "Shipment ID"
// @Param   shipment body dto.UpdateShipmentRequest true "Shipment details to update"
// @Success 200 {object} domain.Shipment
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Shipment not found"
// @Failure 500 {object} ErrorResponse "Failed to update shipment"
// @Security BearerAuth
// @Router /shipments/{shipmentID} [put]
func (h *shipmentHandler) updateShipment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	shipmentID := c.Param("shipmentID")

	var req dto.UpdateShipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateShipment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	shipment, err := h.shipmentService.UpdateShipment(c.Request.Context(), shipmentID, req)
	if err != nil {
		respondWithError(c, logger.With(slog.String("shipment_id", shipmentID)), err, "Failed to update shipment")
		return
	}
	c.JSON(http.StatusOK, shipment)
}

// deleteShipment godoc
// @Summary Delete a shipment
// @Tags shipments
// @Param   shipmentID path string true "Shipment ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Shipment not found"
// @Failure 500 {object} ErrorResponse "Failed to delete shipment"
// @Security BearerAuth
// @Router /shipments/{shipmentID} [delete]
func (h *shipmentHandler) deleteShipment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	shipmentID := c.Param("shipmentID")

	if err := h.shipmentService.DeleteShipment(c.Request.Context(), shipmentID); err != nil {
		respondWithError(c, logger.With(slog.String("shipment_id", shipmentID)), err, "Failed to delete shipment")
		return
	}
	c.Status(http.StatusNoContent)
}
