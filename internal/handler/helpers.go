package handler

import (
	"errors"
	"net/http"

	"github.com/dandyZicky/wfh-attendance/internal/apierror"
	"github.com/dandyZicky/wfh-attendance/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid request body: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		// Missing or invalid required fields are a 400, same as a malformed body.
		c.JSON(http.StatusBadRequest, apierror.NewValidation(fields))
		return false
	}
	return true
}

// writeServiceError maps service-layer errors to the HTTP taxonomy. Forwarded
// sibling-service failures keep their upstream status and message; anything
// unrecognized collapses to a generic 500.
func writeServiceError(c *gin.Context, err error) {
	var upstream *service.UpstreamError
	switch {
	case errors.As(err, &upstream):
		c.JSON(upstream.Status, apierror.New(upstream.Msg))
	case errors.Is(err, service.ErrInvalid):
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, apierror.New(err.Error()))
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, apierror.New(err.Error()))
	default:
		c.JSON(http.StatusInternalServerError, apierror.New("internal server error"))
	}
}
