// Package controller holds what the HTTP handlers share: the route prefix,
// path parameter parsing and the mapping from service errors to responses.
package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lshigami/Surveyor/internal/apperr"
	"github.com/lshigami/Surveyor/internal/dto"
	"github.com/rs/zerolog/log"
)

// APIBase is the prefix every API route is mounted under.
const APIBase = "/api"

// StatusOf maps a service error to an HTTP status. A missing record is not a
// fault: it is answered with an empty 204.
func StatusOf(err error) int {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		return http.StatusNoContent
	case errors.Is(err, apperr.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, apperr.ErrAccessDenied):
		return http.StatusForbidden
	case errors.Is(err, apperr.ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// RespondError writes err using StatusOf. Internal failures are logged and
// their cause is kept out of the body.
func RespondError(c *gin.Context, err error) {
	status := StatusOf(err)
	switch status {
	case http.StatusNoContent:
		c.Status(status)
		return
	case http.StatusInternalServerError:
		log.Error().Err(err).Str("method", c.Request.Method).Str("path", c.FullPath()).Msg("Request failed")
		c.JSON(status, dto.ErrorResponse{Error: apperr.MessageOf(err), Code: "internal"})
		return
	}
	c.JSON(status, dto.ErrorResponse{Error: apperr.MessageOf(err), Code: apperr.CodeOf(err)})
}

// RespondBindError answers a request whose body could not be decoded.
func RespondBindError(c *gin.Context, err error) {
	log.Warn().Err(err).Str("path", c.FullPath()).Msg("Failed to bind request body")
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error:   "Invalid request body",
		Code:    "invalid_body",
		Details: []string{err.Error()},
	})
}

// IDParam parses a numeric path parameter, answering 400 when it is malformed.
func IDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: fmt.Sprintf("Invalid %s format", name),
			Code:  "invalid_id",
		})
		return 0, false
	}
	return uint(id), true
}

// UUIDParam parses a UUID path parameter, answering 400 when it is malformed.
func UUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: fmt.Sprintf("Invalid %s format", name),
			Code:  "invalid_uuid",
		})
		return uuid.Nil, false
	}
	return id, true
}

// Created answers 201 with a Location header pointing at the new resource.
func Created(c *gin.Context, resource string, id uint, body any) {
	c.Header("Location", fmt.Sprintf("%s/%s/%d", APIBase, resource, id))
	c.JSON(http.StatusCreated, body)
}
