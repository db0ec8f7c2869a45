package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// envelope builds the standard {success, message, ...} response body,
// merging any payload fields at the top level.
func envelope(success bool, message string, payload gin.H) gin.H {
	body := gin.H{"success": success}
	if message != "" {
		body["message"] = message
	}
	for k, v := range payload {
		body[k] = v
	}
	return body
}

// OK writes a 200 response
func OK(c *gin.Context, message string, payload gin.H) {
	c.JSON(http.StatusOK, envelope(true, message, payload))
}

// Created writes a 201 response
func Created(c *gin.Context, message string, payload gin.H) {
	c.JSON(http.StatusCreated, envelope(true, message, payload))
}

// BadRequest writes a 400 response
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, envelope(false, message, nil))
}

// Forbidden writes a 403 response
func Forbidden(c *gin.Context, message string) {
	c.JSON(http.StatusForbidden, envelope(false, message, nil))
}

// NotFound writes a 404 response
func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, envelope(false, message, nil))
}

// InternalError writes a 500 response. The underlying error's message is
// included but internals are not otherwise leaked.
func InternalError(c *gin.Context, message string, err error) {
	payload := gin.H{}
	if err != nil {
		payload["error"] = err.Error()
	}
	c.JSON(http.StatusInternalServerError, envelope(false, message, payload))
}
