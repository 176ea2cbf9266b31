// Package response defines the JSON envelope shared by every API handler.
// Code 0 marks success; error envelopes carry the HTTP status as the code so
// clients can branch on either the transport status or the body alone.
// Asynchronous starts (ingestion jobs, training runs) answer 202 with the
// created resource in data; its id is polled afterwards.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the envelope
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Success sends 200 with data
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// Accepted sends 202 for a started asynchronous job or run
func Accepted(c *gin.Context, data interface{}) {
	c.JSON(http.StatusAccepted, Response{
		Code:    0,
		Message: "accepted",
		Data:    data,
	})
}

// Error sends an error envelope with the given HTTP status
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Code:    code,
		Message: message,
	})
}

// BadRequest sends a 400 response
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// NotFound sends a 404 response
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// InternalError sends a 500 response
func InternalError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}
