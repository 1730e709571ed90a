// SPDX-License-Identifier: MIT

package api

import "github.com/gin-gonic/gin"

// Error code constants for API error responses.
const (
	ErrCodeInvalidRequest = "invalid_request"
	ErrCodeNotFound       = "not_found"
	ErrCodeInternalError  = "internal_error"
)

type errorBody struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// respondError writes {"error":{...}} and aborts the request.
func (h *Handler) respondError(c *gin.Context, status int, code, message string) {
	if h.metrics != nil {
		h.metrics.CountError(code)
	}
	c.AbortWithStatusJSON(status, gin.H{"error": errorBody{
		Code:      code,
		Message:   message,
		RequestID: c.GetString(RequestIDKey),
	}})
}
