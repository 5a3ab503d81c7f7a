package response

import (
	"go-jobseeker-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

// MessageBody is returned by write operations
type MessageBody struct {
	Message string `json:"message"`
	ID      *int64 `json:"id,omitempty"`
}

// ErrorBody is returned for every failed request
type ErrorBody struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// JSON sends data as the bare response body (records and record lists)
func JSON(c *gin.Context, code int, data interface{}) {
	c.JSON(code, data)
}

// Message sends a confirmation message
func Message(c *gin.Context, code int, message string) {
	c.JSON(code, MessageBody{Message: message})
}

// Created sends a confirmation carrying the generated identifier
func Created(c *gin.Context, code int, message string, id int64) {
	c.JSON(code, MessageBody{Message: message, ID: &id})
}

// Error sends an error response
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorBody{
		Error:     message,
		RequestID: RequestID(c),
	})
}

// RequestID returns the id assigned by middleware.RequestID, if any
func RequestID(c *gin.Context) string {
	reqID, _ := c.Get(string(domain.KeyRequestID))
	idStr, _ := reqID.(string) // Safe type assertion
	return idStr
}
