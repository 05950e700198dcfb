package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/frotaops/route-manager/internal/application"
	"github.com/frotaops/route-manager/internal/response"
)

// VehicleHandler handles HTTP requests for vehicles and vehicle documents.
type VehicleHandler struct {
	service *application.VehicleService
}

// NewVehicleHandler creates a new VehicleHandler.
func NewVehicleHandler(service *application.VehicleService) *VehicleHandler {
	return &VehicleHandler{service: service}
}

// RegisterRoutes registers all vehicle routes on the given router group.
func (h *VehicleHandler) RegisterRoutes(r *gin.RouterGroup) {
	vehicles := r.Group("/api/v1/vehicles")
	{
		vehicles.GET("", h.ListVehicles)
		vehicles.POST("", h.CreateVehicle)
		vehicles.GET("/documents", h.ListDocuments)
		vehicles.POST("/documents", h.CreateDocument)
		vehicles.GET("/documents/:id", h.GetDocument)
		vehicles.PUT("/documents/:id", h.UpdateDocument)
		vehicles.DELETE("/documents/:id", h.DeleteDocument)
		vehicles.GET("/:id", h.GetVehicle)
		vehicles.PUT("/:id", h.UpdateVehicle)
		vehicles.DELETE("/:id", h.DeleteVehicle)
		vehicles.GET("/:id/documents", h.ListDocumentsOfVehicle)
	}
}

// --- Vehicles ---

// ListVehicles handles GET /api/v1/vehicles.
func (h *VehicleHandler) ListVehicles(c *gin.Context) {
	q, ok := pagination(c)
	if !ok {
		return
	}

	vehicles, err := h.service.ListVehicles(c.Request.Context(), q.Page, q.Limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"vehicles": vehicles, "results": len(vehicles)})
}

// GetVehicle handles GET /api/v1/vehicles/:id.
func (h *VehicleHandler) GetVehicle(c *gin.Context) {
	id, ok := pathID(c, "vehicle")
	if !ok {
		return
	}

	vehicle, err := h.service.GetVehicle(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, vehicle)
}

// CreateVehicle handles POST /api/v1/vehicles.
func (h *VehicleHandler) CreateVehicle(c *gin.Context) {
	var req application.RegisterVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	vehicle, err := h.service.CreateVehicle(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, vehicle)
}

// UpdateVehicle handles PUT /api/v1/vehicles/:id.
func (h *VehicleHandler) UpdateVehicle(c *gin.Context) {
	id, ok := pathID(c, "vehicle")
	if !ok {
		return
	}

	var req application.RegisterVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	vehicle, err := h.service.UpdateVehicle(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, vehicle)
}

// DeleteVehicle handles DELETE /api/v1/vehicles/:id.
func (h *VehicleHandler) DeleteVehicle(c *gin.Context) {
	id, ok := pathID(c, "vehicle")
	if !ok {
		return
	}

	vehicle, err := h.service.DeleteVehicle(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, vehicle)
}

// ListDocumentsOfVehicle handles GET /api/v1/vehicles/:id/documents.
func (h *VehicleHandler) ListDocumentsOfVehicle(c *gin.Context) {
	id, ok := pathID(c, "vehicle")
	if !ok {
		return
	}

	documents, err := h.service.ListDocumentsOfVehicle(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"documents": documents, "results": len(documents)})
}

// --- Vehicle documents ---

// ListDocuments handles GET /api/v1/vehicles/documents.
func (h *VehicleHandler) ListDocuments(c *gin.Context) {
	q, ok := pagination(c)
	if !ok {
		return
	}

	documents, err := h.service.ListDocuments(c.Request.Context(), q.Page, q.Limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"documents": documents, "results": len(documents)})
}

// GetDocument handles GET /api/v1/vehicles/documents/:id.
func (h *VehicleHandler) GetDocument(c *gin.Context) {
	id, ok := pathID(c, "vehicle document")
	if !ok {
		return
	}

	document, err := h.service.GetDocument(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, document)
}

// CreateDocument handles POST /api/v1/vehicles/documents.
func (h *VehicleHandler) CreateDocument(c *gin.Context) {
	var req application.RegisterVehicleDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	document, err := h.service.CreateDocument(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, document)
}

// UpdateDocument handles PUT /api/v1/vehicles/documents/:id.
func (h *VehicleHandler) UpdateDocument(c *gin.Context) {
	id, ok := pathID(c, "vehicle document")
	if !ok {
		return
	}

	var req application.RegisterVehicleDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	document, err := h.service.UpdateDocument(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, document)
}

// DeleteDocument handles DELETE /api/v1/vehicles/documents/:id.
func (h *VehicleHandler) DeleteDocument(c *gin.Context) {
	id, ok := pathID(c, "vehicle document")
	if !ok {
		return
	}

	document, err := h.service.DeleteDocument(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, document)
}
