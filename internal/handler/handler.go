// Package handler wires the HTTP surface: one handler type per service,
// each registering its routes on the shared router group.
package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/frotaops/route-manager/internal/response"
)

// listQuery carries the shared pagination parameters. Out-of-range values
// are rejected rather than silently clamped.
type listQuery struct {
	Page  int `form:"page,default=1" binding:"min=1"`
	Limit int `form:"limit,default=50" binding:"min=1,max=100"`
}

// pagination binds the page/limit query parameters, writing a 400 envelope
// on invalid input. The second return value reports whether binding
// succeeded.
func pagination(c *gin.Context) (listQuery, bool) {
	var q listQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "page must be >= 1 and limit must be between 1 and 100")
		return q, false
	}
	return q, true
}

// pathID parses the :id path parameter, writing a 400 envelope when it is
// not a UUID.
func pathID(c *gin.Context, entity string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid "+entity+" ID")
		return uuid.Nil, false
	}
	return id, true
}
