package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

// ValidationPayload carries the per-field error map from the form validator.
// Absence of a field key means that field is currently valid.
type ValidationPayload struct {
	Errors map[string]string `json:"errors"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Validation(c *gin.Context, errs map[string]string) {
	c.JSON(http.StatusUnprocessableEntity, ValidationPayload{Errors: errs})
}
