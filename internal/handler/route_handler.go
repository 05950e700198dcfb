package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/frotaops/route-manager/internal/application"
	"github.com/frotaops/route-manager/internal/response"
)

// RouteHandler handles HTTP requests for routes and route statuses.
type RouteHandler struct {
	service *application.RouteService
}

// NewRouteHandler creates a new RouteHandler.
func NewRouteHandler(service *application.RouteService) *RouteHandler {
	return &RouteHandler{service: service}
}

// RegisterRoutes registers all route endpoints on the given router group.
func (h *RouteHandler) RegisterRoutes(r *gin.RouterGroup) {
	routes := r.Group("/api/v1/routes")
	{
		routes.GET("", h.ListRoutes)
		routes.POST("", h.CreateRoute)
		routes.GET("/status", h.ListRouteStatuses)
		routes.POST("/status", h.CreateRouteStatus)
		routes.GET("/status/:id", h.GetRouteStatus)
		routes.PUT("/status/:id", h.UpdateRouteStatus)
		routes.DELETE("/status/:id", h.DeleteRouteStatus)
		routes.GET("/:id", h.GetRoute)
		routes.PUT("/:id", h.UpdateRoute)
		routes.DELETE("/:id", h.DeleteRoute)
		routes.GET("/:id/status", h.GetStatusOfRoute)
	}
}

// --- Routes ---

// ListRoutes handles GET /api/v1/routes.
func (h *RouteHandler) ListRoutes(c *gin.Context) {
	q, ok := pagination(c)
	if !ok {
		return
	}

	routes, err := h.service.ListRoutes(c.Request.Context(), q.Page, q.Limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"routes": routes, "results": len(routes)})
}

// GetRoute handles GET /api/v1/routes/:id.
func (h *RouteHandler) GetRoute(c *gin.Context) {
	id, ok := pathID(c, "route")
	if !ok {
		return
	}

	route, err := h.service.GetRoute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, route)
}

// CreateRoute handles POST /api/v1/routes.
func (h *RouteHandler) CreateRoute(c *gin.Context) {
	var req application.RegisterRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	route, err := h.service.CreateRoute(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, route)
}

// UpdateRoute handles PUT /api/v1/routes/:id.
func (h *RouteHandler) UpdateRoute(c *gin.Context) {
	id, ok := pathID(c, "route")
	if !ok {
		return
	}

	var req application.RegisterRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	route, err := h.service.UpdateRoute(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, route)
}

// DeleteRoute handles DELETE /api/v1/routes/:id.
func (h *RouteHandler) DeleteRoute(c *gin.Context) {
	id, ok := pathID(c, "route")
	if !ok {
		return
	}

	route, err := h.service.DeleteRoute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, route)
}

// GetStatusOfRoute handles GET /api/v1/routes/:id/status.
func (h *RouteHandler) GetStatusOfRoute(c *gin.Context) {
	id, ok := pathID(c, "route")
	if !ok {
		return
	}

	status, err := h.service.GetStatusOfRoute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, status)
}

// --- Route statuses ---

// ListRouteStatuses handles GET /api/v1/routes/status.
func (h *RouteHandler) ListRouteStatuses(c *gin.Context) {
	q, ok := pagination(c)
	if !ok {
		return
	}

	statuses, err := h.service.ListRouteStatuses(c.Request.Context(), q.Page, q.Limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"status": statuses, "results": len(statuses)})
}

// GetRouteStatus handles GET /api/v1/routes/status/:id.
func (h *RouteHandler) GetRouteStatus(c *gin.Context) {
	id, ok := pathID(c, "route status")
	if !ok {
		return
	}

	status, err := h.service.GetRouteStatus(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, status)
}

// CreateRouteStatus handles POST /api/v1/routes/status.
func (h *RouteHandler) CreateRouteStatus(c *gin.Context) {
	var req application.RegisterRouteStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	status, err := h.service.CreateRouteStatus(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, status)
}

// UpdateRouteStatus handles PUT /api/v1/routes/status/:id.
func (h *RouteHandler) UpdateRouteStatus(c *gin.Context) {
	id, ok := pathID(c, "route status")
	if !ok {
		return
	}

	var req application.RegisterRouteStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	status, err := h.service.UpdateRouteStatus(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, status)
}

// DeleteRouteStatus handles DELETE /api/v1/routes/status/:id.
func (h *RouteHandler) DeleteRouteStatus(c *gin.Context) {
	id, ok := pathID(c, "route status")
	if !ok {
		return
	}

	status, err := h.service.DeleteRouteStatus(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, status)
}
