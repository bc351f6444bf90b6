package handler

import (
	"errors"
	"log"
	"net/http"

	"hotel-rooms-backend/internal/service"
	"hotel-rooms-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto status codes. fallback is the
// client-facing message for store failures.
func respondError(c *gin.Context, err error, fallback string) {
	var vErr *service.ValidationError
	var storeErr *service.StoreUnavailableError

	switch {
	case errors.As(err, &vErr):
		utils.ValidationErrorResponse(c, vErr.Error(), vErr.FieldErrors)
	case errors.Is(err, service.ErrNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrRoomAlreadyExists), errors.Is(err, service.ErrCPFAlreadyRegistered):
		utils.ErrorResponse(c, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		utils.ErrorResponse(c, http.StatusUnauthorized, err.Error())
	case errors.As(err, &storeErr):
		log.Printf("Error on %s %s: %v", c.Request.Method, c.FullPath(), err)
		utils.ErrorResponse(c, http.StatusInternalServerError, fallback)
	default:
		log.Printf("Unexpected error on %s %s: %v", c.Request.Method, c.FullPath(), err)
		utils.ErrorResponse(c, http.StatusInternalServerError, fallback)
	}
}

// warnings collects the failed mirror writes of a result for the avisos field
func warnings(mirrors ...*service.MirrorWrite) []string {
	var out []string
	for _, m := range mirrors {
		if m.Failed() {
			out = append(out, m.Warning())
		}
	}
	return out
}
