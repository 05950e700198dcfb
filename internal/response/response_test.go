package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frotaops/route-manager/internal/domain"
)

type envelope struct {
	Error struct {
		Status  int    `json:"status"`
		Code    string `json:"code"`
		Message string `json:"message"`
		Hint    string `json:"hint"`
	} `json:"error"`
}

func writeAndDecode(t *testing.T, err error) (int, envelope) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	Error(c, err)

	var body envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestError_ValidationIsBadRequest(t *testing.T) {
	status, body := writeAndDecode(t, domain.NewValidationError("vehicleId must be a valid UUID"))

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, http.StatusBadRequest, body.Error.Status)
	assert.Equal(t, "400", body.Error.Code)
	assert.Equal(t, "vehicleId must be a valid UUID", body.Error.Message)
}

func TestError_ForeignKeyIsBadRequestWithHint(t *testing.T) {
	status, body := writeAndDecode(t, &domain.ForeignKeyError{
		Message: "Vehicle not found",
		Hint:    "use GET /api/v1/vehicles to retrieve valid vehicle ids",
	})

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Vehicle not found", body.Error.Message)
	assert.NotEmpty(t, body.Error.Hint)
}

func TestError_NotFoundIs404(t *testing.T) {
	status, body := writeAndDecode(t, domain.NewNotFoundError("Route", "abc"))

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "404", body.Error.Code)
	assert.Contains(t, body.Error.Message, "Route")
}

func TestError_ConflictIs409(t *testing.T) {
	status, body := writeAndDecode(t, domain.NewConflictError("There is already a country with the provided data"))

	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "409", body.Error.Code)
}

func TestError_UnknownErrorIsOpaque500(t *testing.T) {
	status, body := writeAndDecode(t, errors.New("pq: connection reset by peer"))

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, serverErrorMessage, body.Error.Message)
	assert.NotContains(t, body.Error.Message, "connection reset")
}
