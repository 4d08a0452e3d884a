package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"
)

// --- Response Types ---

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`    // machine-readable error code
	Details any    `json:"details,omitempty"` // additional context (validation errors, etc.)
}

// SuccessResponse is a standard success response with a message.
type SuccessResponse struct {
	Message string `json:"message"`
}

// FieldError names one payload field that failed a validation rule.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

const codeValidationFailed = "validation_failed"

// --- Error Response Helpers ---

// respondNotFound sends a 404 Not Found response.
func respondNotFound(c *gin.Context, resource string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Error: resource + " not found"})
}

// respondInternalError logs the error and sends a 500 Internal Server Error response.
// The actual error is logged but not exposed to the client.
func respondInternalError(c *gin.Context, err error, context string) {
	_ = c.Error(err)
	log.WithError(err).WithField("operation", context).Error("Internal error")
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

// respondValidationError sends a 400 response listing the failed fields, or
// only a message when the body could not be decoded at all.
func respondValidationError(c *gin.Context, err error) {
	resp := ErrorResponse{Error: "invalid request body", Code: codeValidationFailed}
	if details := validationDetails(err); len(details) > 0 {
		resp.Error = "validation failed"
		resp.Details = details
	}
	c.JSON(http.StatusBadRequest, resp)
}

// --- Success Response Helpers ---

// respondSuccess sends a 200 OK response with a message.
func respondSuccess(c *gin.Context, message string) {
	c.JSON(http.StatusOK, SuccessResponse{Message: message})
}

// --- Request Binding ---

// bindJSON decodes and validates the request body into dst. On failure it
// writes the 400 response and returns false.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondValidationError(c, err)
		return false
	}
	return true
}

// bindJSONList decodes a top-level JSON array into dst and validates every
// item, reporting failed fields with their item index.
func bindJSONList[T any](c *gin.Context, dst *[]T) bool {
	if err := json.NewDecoder(c.Request.Body).Decode(dst); err != nil {
		respondValidationError(c, err)
		return false
	}

	var details []FieldError
	for i, item := range *dst {
		for _, d := range validationDetails(binding.Validator.ValidateStruct(item)) {
			d.Field = fmt.Sprintf("[%d].%s", i, d.Field)
			details = append(details, d)
		}
	}
	if len(details) > 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation failed",
			Code:    codeValidationFailed,
			Details: details,
		})
		return false
	}
	return true
}

func validationDetails(err error) []FieldError {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return nil
	}
	details := make([]FieldError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		details = append(details, FieldError{Field: fe.Field(), Rule: fe.Tag()})
	}
	return details
}
