package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/frotaops/route-manager/internal/application"
	"github.com/frotaops/route-manager/internal/response"
)

// ReferenceHandler handles HTTP requests for the geographic reference data:
// countries, states, cities and addresses.
type ReferenceHandler struct {
	service *application.ReferenceService
}

// NewReferenceHandler creates a new ReferenceHandler.
func NewReferenceHandler(service *application.ReferenceService) *ReferenceHandler {
	return &ReferenceHandler{service: service}
}

// RegisterRoutes registers all reference-data routes on the given router group.
func (h *ReferenceHandler) RegisterRoutes(r *gin.RouterGroup) {
	countries := r.Group("/api/v1/countries")
	{
		countries.GET("", h.ListCountries)
		countries.POST("", h.CreateCountry)
		countries.GET("/:id", h.GetCountry)
		countries.PUT("/:id", h.UpdateCountry)
		countries.DELETE("/:id", h.DeleteCountry)
		countries.GET("/:id/states", h.ListStatesOfCountry)
	}

	states := r.Group("/api/v1/states")
	{
		states.GET("", h.ListStates)
		states.POST("", h.CreateState)
		states.GET("/:id", h.GetState)
		states.PUT("/:id", h.UpdateState)
		states.DELETE("/:id", h.DeleteState)
		states.GET("/:id/cities", h.ListCitiesOfState)
	}

	cities := r.Group("/api/v1/cities")
	{
		cities.GET("", h.ListCities)
		cities.POST("", h.CreateCity)
		cities.GET("/:id", h.GetCity)
		cities.PUT("/:id", h.UpdateCity)
		cities.DELETE("/:id", h.DeleteCity)
		cities.GET("/:id/addresses", h.ListAddressesOfCity)
	}

	addresses := r.Group("/api/v1/addresses")
	{
		addresses.GET("", h.ListAddresses)
		addresses.POST("", h.CreateAddress)
		addresses.GET("/:id", h.GetAddress)
		addresses.PUT("/:id", h.UpdateAddress)
		addresses.DELETE("/:id", h.DeleteAddress)
	}
}

// --- Countries ---

// ListCountries handles GET /api/v1/countries.
func (h *ReferenceHandler) ListCountries(c *gin.Context) {
	q, ok := pagination(c)
	if !ok {
		return
	}

	countries, err := h.service.ListCountries(c.Request.Context(), q.Page, q.Limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"countries": countries, "results": len(countries)})
}

// GetCountry handles GET /api/v1/countries/:id.
func (h *ReferenceHandler) GetCountry(c *gin.Context) {
	id, ok := pathID(c, "country")
	if !ok {
		return
	}

	country, err := h.service.GetCountry(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, country)
}

// CreateCountry handles POST /api/v1/countries.
func (h *ReferenceHandler) CreateCountry(c *gin.Context) {
	var req application.RegisterCountryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	country, err := h.service.CreateCountry(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, country)
}

// UpdateCountry handles PUT /api/v1/countries/:id.
func (h *ReferenceHandler) UpdateCountry(c *gin.Context) {
	id, ok := pathID(c, "country")
	if !ok {
		return
	}

	var req application.RegisterCountryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	country, err := h.service.UpdateCountry(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, country)
}

// DeleteCountry handles DELETE /api/v1/countries/:id.
func (h *ReferenceHandler) DeleteCountry(c *gin.Context) {
	id, ok := pathID(c, "country")
	if !ok {
		return
	}

	country, err := h.service.DeleteCountry(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, country)
}

// ListStatesOfCountry handles GET /api/v1/countries/:id/states.
func (h *ReferenceHandler) ListStatesOfCountry(c *gin.Context) {
	id, ok := pathID(c, "country")
	if !ok {
		return
	}

	states, err := h.service.ListStatesOfCountry(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"states": states, "results": len(states)})
}

// --- States ---

// ListStates handles GET /api/v1/states.
func (h *ReferenceHandler) ListStates(c *gin.Context) {
	q, ok := pagination(c)
	if !ok {
		return
	}

	states, err := h.service.ListStates(c.Request.Context(), q.Page, q.Limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"states": states, "results": len(states)})
}

// GetState handles GET /api/v1/states/:id.
func (h *ReferenceHandler) GetState(c *gin.Context) {
	id, ok := pathID(c, "state")
	if !ok {
		return
	}

	state, err := h.service.GetState(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, state)
}

// CreateState handles POST /api/v1/states.
func (h *ReferenceHandler) CreateState(c *gin.Context) {
	var req application.RegisterStateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	state, err := h.service.CreateState(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, state)
}

// UpdateState handles PUT /api/v1/states/:id.
func (h *ReferenceHandler) UpdateState(c *gin.Context) {
	id, ok := pathID(c, "state")
	if !ok {
		return
	}

	var req application.RegisterStateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	state, err := h.service.UpdateState(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, state)
}

// DeleteState handles DELETE /api/v1/states/:id.
func (h *ReferenceHandler) DeleteState(c *gin.Context) {
	id, ok := pathID(c, "state")
	if !ok {
		return
	}

	state, err := h.service.DeleteState(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, state)
}

// ListCitiesOfState handles GET /api/v1/states/:id/cities.
func (h *ReferenceHandler) ListCitiesOfState(c *gin.Context) {
	id, ok := pathID(c, "state")
	if !ok {
		return
	}

	cities, err := h.service.ListCitiesOfState(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"cities": cities, "results": len(cities)})
}

// --- Cities ---

// ListCities handles GET /api/v1/cities.
func (h *ReferenceHandler) ListCities(c *gin.Context) {
	q, ok := pagination(c)
	if !ok {
		return
	}

	cities, err := h.service.ListCities(c.Request.Context(), q.Page, q.Limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"cities": cities, "results": len(cities)})
}

// GetCity handles GET /api/v1/cities/:id.
func (h *ReferenceHandler) GetCity(c *gin.Context) {
	id, ok := pathID(c, "city")
	if !ok {
		return
	}

	city, err := h.service.GetCity(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, city)
}

// CreateCity handles POST /api/v1/cities.
func (h *ReferenceHandler) CreateCity(c *gin.Context) {
	var req application.RegisterCityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	city, err := h.service.CreateCity(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, city)
}

// UpdateCity handles PUT /api/v1/cities/:id.
func (h *ReferenceHandler) UpdateCity(c *gin.Context) {
	id, ok := pathID(c, "city")
	if !ok {
		return
	}

	var req application.RegisterCityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	city, err := h.service.UpdateCity(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, city)
}

// DeleteCity handles DELETE /api/v1/cities/:id.
func (h *ReferenceHandler) DeleteCity(c *gin.Context) {
	id, ok := pathID(c, "city")
	if !ok {
		return
	}

	city, err := h.service.DeleteCity(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, city)
}

// ListAddressesOfCity handles GET /api/v1/cities/:id/addresses.
func (h *ReferenceHandler) ListAddressesOfCity(c *gin.Context) {
	id, ok := pathID(c, "city")
	if !ok {
		return
	}

	addresses, err := h.service.ListAddressesOfCity(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"addresses": addresses, "results": len(addresses)})
}

// --- Addresses ---

// ListAddresses handles GET /api/v1/addresses.
func (h *ReferenceHandler) ListAddresses(c *gin.Context) {
	q, ok := pagination(c)
	if !ok {
		return
	}

	addresses, err := h.service.ListAddresses(c.Request.Context(), q.Page, q.Limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"addresses": addresses, "results": len(addresses)})
}

// GetAddress handles GET /api/v1/addresses/:id.
func (h *ReferenceHandler) GetAddress(c *gin.Context) {
	id, ok := pathID(c, "address")
	if !ok {
		return
	}

	address, err := h.service.GetAddress(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, address)
}

// CreateAddress handles POST /api/v1/addresses.
func (h *ReferenceHandler) CreateAddress(c *gin.Context) {
	var req application.RegisterAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	address, err := h.service.CreateAddress(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, address)
}

// UpdateAddress handles PUT /api/v1/addresses/:id.
func (h *ReferenceHandler) UpdateAddress(c *gin.Context) {
	id, ok := pathID(c, "address")
	if !ok {
		return
	}

	var req application.RegisterAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	address, err := h.service.UpdateAddress(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, address)
}

// DeleteAddress handles DELETE /api/v1/addresses/:id.
func (h *ReferenceHandler) DeleteAddress(c *gin.Context) {
	id, ok := pathID(c, "address")
	if !ok {
		return
	}

	address, err := h.service.DeleteAddress(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, address)
}
