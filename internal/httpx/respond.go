package httpx

import "github.com/gin-gonic/gin"

// HTTPError represents a standard error in JSON.
// swagger:model
type HTTPError struct {
	// Error message
	// example: not found
	Error string `json:"error"`
}

// Fail writes the standard error body without aborting the chain.
func Fail(c *gin.Context, status int, msg string) {
	c.JSON(status, HTTPError{Error: msg})
}

// Abort writes the standard error body and stops handler processing.
// Used by middleware so route handlers never run on a failed request.
func Abort(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, HTTPError{Error: msg})
}
