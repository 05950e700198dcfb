// Package response maps service results and domain errors onto the HTTP
// wire format.
package response

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/frotaops/route-manager/internal/domain"
)

type errorBody struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Hint    string `json:"hint,omitempty"`
}

const serverErrorMessage = "Server Error. Please try again later"

// OK writes a 200 response with the given payload.
func OK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// Created writes a 201 response with the given payload.
func Created(c *gin.Context, payload any) {
	c.JSON(http.StatusCreated, payload)
}

// BadRequest writes a 400 error envelope with the given message.
func BadRequest(c *gin.Context, message string) {
	writeError(c, http.StatusBadRequest, message, "")
}

// Error classifies err against the domain error taxonomy and writes the
// matching envelope. Unclassified errors degrade to an opaque 500 with no
// internal detail leaked.
func Error(c *gin.Context, err error) {
	var (
		validation *domain.ValidationError
		notFound   *domain.NotFoundError
		conflict   *domain.ConflictError
		foreignKey *domain.ForeignKeyError
	)

	switch {
	case errors.As(err, &validation):
		writeError(c, http.StatusBadRequest, validation.Message, "")
	case errors.As(err, &foreignKey):
		writeError(c, http.StatusBadRequest, foreignKey.Message, foreignKey.Hint)
	case errors.As(err, &notFound):
		writeError(c, http.StatusNotFound, notFound.Error(), "")
	case errors.As(err, &conflict):
		writeError(c, http.StatusConflict, conflict.Message, conflict.Hint)
	default:
		writeError(c, http.StatusInternalServerError, serverErrorMessage, "")
	}
}

func writeError(c *gin.Context, status int, message, hint string) {
	c.JSON(status, gin.H{"error": errorBody{
		Status:  status,
		Code:    strconv.Itoa(status),
		Message: message,
		Hint:    hint,
	}})
}
