package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/frotaops/route-manager/internal/application"
	"github.com/frotaops/route-manager/internal/response"
)

// CollaboratorHandler handles HTTP requests for collaborators, drivers and
// CNH licence types.
type CollaboratorHandler struct {
	service *application.CollaboratorService
}

// NewCollaboratorHandler creates a new CollaboratorHandler.
func NewCollaboratorHandler(service *application.CollaboratorService) *CollaboratorHandler {
	return &CollaboratorHandler{service: service}
}

// RegisterRoutes registers all collaborator routes on the given router group.
// Drivers and CNH types live under the collaborator scope.
func (h *CollaboratorHandler) RegisterRoutes(r *gin.RouterGroup) {
	collaborators := r.Group("/api/v1/collaborators")
	{
		collaborators.GET("", h.ListCollaborators)
		collaborators.POST("", h.CreateCollaborator)
		collaborators.GET("/drivers", h.ListDrivers)
		collaborators.POST("/drivers", h.CreateDriver)
		collaborators.GET("/drivers/cnh", h.ListCnhTypes)
		collaborators.POST("/drivers/cnh", h.CreateCnhType)
		collaborators.GET("/drivers/cnh/:id", h.GetCnhType)
		collaborators.GET("/drivers/:id", h.GetDriver)
		collaborators.PUT("/drivers/:id", h.UpdateDriver)
		collaborators.DELETE("/drivers/:id", h.DeleteDriver)
		collaborators.GET("/:id", h.GetCollaborator)
		collaborators.PUT("/:id", h.UpdateCollaborator)
		collaborators.DELETE("/:id", h.DeleteCollaborator)
		collaborators.GET("/:id/drivers", h.GetDriverOfCollaborator)
		collaborators.PUT("/:id/drivers", h.UpdateDriverOfCollaborator)
	}
}

// --- Collaborators ---

// ListCollaborators handles GET /api/v1/collaborators.
func (h *CollaboratorHandler) ListCollaborators(c *gin.Context) {
	q, ok := pagination(c)
	if !ok {
		return
	}

	collaborators, err := h.service.ListCollaborators(c.Request.Context(), q.Page, q.Limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"collaborators": collaborators, "results": len(collaborators)})
}

// GetCollaborator handles GET /api/v1/collaborators/:id.
func (h *CollaboratorHandler) GetCollaborator(c *gin.Context) {
	id, ok := pathID(c, "collaborator")
	if !ok {
		return
	}

	collaborator, err := h.service.GetCollaborator(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, collaborator)
}

// CreateCollaborator handles POST /api/v1/collaborators.
func (h *CollaboratorHandler) CreateCollaborator(c *gin.Context) {
	var req application.RegisterCollaboratorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	collaborator, err := h.service.CreateCollaborator(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, collaborator)
}

// UpdateCollaborator handles PUT /api/v1/collaborators/:id.
func (h *CollaboratorHandler) UpdateCollaborator(c *gin.Context) {
	id, ok := pathID(c, "collaborator")
	if !ok {
		return
	}

	var req application.RegisterCollaboratorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	collaborator, err := h.service.UpdateCollaborator(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, collaborator)
}

// DeleteCollaborator handles DELETE /api/v1/collaborators/:id.
func (h *CollaboratorHandler) DeleteCollaborator(c *gin.Context) {
	id, ok := pathID(c, "collaborator")
	if !ok {
		return
	}

	collaborator, err := h.service.DeleteCollaborator(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, collaborator)
}

// GetDriverOfCollaborator handles GET /api/v1/collaborators/:id/drivers.
func (h *CollaboratorHandler) GetDriverOfCollaborator(c *gin.Context) {
	id, ok := pathID(c, "collaborator")
	if !ok {
		return
	}

	driver, err := h.service.GetDriverOfCollaborator(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, driver)
}

// UpdateDriverOfCollaborator handles PUT /api/v1/collaborators/:id/drivers.
// It updates the driver record attached to the collaborator.
func (h *CollaboratorHandler) UpdateDriverOfCollaborator(c *gin.Context) {
	id, ok := pathID(c, "collaborator")
	if !ok {
		return
	}

	var req application.RegisterDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	driver, err := h.service.GetDriverOfCollaborator(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	updated, err := h.service.UpdateDriver(c.Request.Context(), driver.ID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, updated)
}

// --- Drivers ---

// ListDrivers handles GET /api/v1/collaborators/drivers.
func (h *CollaboratorHandler) ListDrivers(c *gin.Context) {
	q, ok := pagination(c)
	if !ok {
		return
	}

	drivers, err := h.service.ListDrivers(c.Request.Context(), q.Page, q.Limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"drivers": drivers, "results": len(drivers)})
}

// GetDriver handles GET /api/v1/collaborators/drivers/:id.
func (h *CollaboratorHandler) GetDriver(c *gin.Context) {
	id, ok := pathID(c, "driver")
	if !ok {
		return
	}

	driver, err := h.service.GetDriver(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, driver)
}

// CreateDriver handles POST /api/v1/collaborators/drivers.
func (h *CollaboratorHandler) CreateDriver(c *gin.Context) {
	var req application.RegisterDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	driver, err := h.service.CreateDriver(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, driver)
}

// UpdateDriver handles PUT /api/v1/collaborators/drivers/:id.
func (h *CollaboratorHandler) UpdateDriver(c *gin.Context) {
	id, ok := pathID(c, "driver")
	if !ok {
		return
	}

	var req application.RegisterDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	driver, err := h.service.UpdateDriver(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, driver)
}

// DeleteDriver handles DELETE /api/v1/collaborators/drivers/:id.
func (h *CollaboratorHandler) DeleteDriver(c *gin.Context) {
	id, ok := pathID(c, "driver")
	if !ok {
		return
	}

	driver, err := h.service.DeleteDriver(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, driver)
}

// --- CNH types ---

// ListCnhTypes handles GET /api/v1/collaborators/drivers/cnh.
func (h *CollaboratorHandler) ListCnhTypes(c *gin.Context) {
	q, ok := pagination(c)
	if !ok {
		return
	}

	types, err := h.service.ListCnhTypes(c.Request.Context(), q.Page, q.Limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"types": types, "results": len(types)})
}

// GetCnhType handles GET /api/v1/collaborators/drivers/cnh/:id.
func (h *CollaboratorHandler) GetCnhType(c *gin.Context) {
	id, ok := pathID(c, "CNH type")
	if !ok {
		return
	}

	cnhType, err := h.service.GetCnhType(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, cnhType)
}

// CreateCnhType handles POST /api/v1/collaborators/drivers/cnh.
func (h *CollaboratorHandler) CreateCnhType(c *gin.Context) {
	var req application.RegisterCnhTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	cnhType, err := h.service.CreateCnhType(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, cnhType)
}
