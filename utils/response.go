package utils

import (
	"github.com/gin-gonic/gin"
)

// JSONResponse sends a structured JSON response
func JSONResponse(c *gin.Context, status int, data any, message string) {
	c.JSON(status, gin.H{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

// JSONError sends a structured error response
func JSONError(c *gin.Context, status int, err error, message string) {
	c.JSON(status, gin.H{
		"status":  status,
		"message": message,
		"error":   err.Error(),
	})
}

// JSONErrorWithMinimum sends a bid rejection carrying the live minimum next
// bid so the client can immediately resubmit with a corrected amount.
func JSONErrorWithMinimum(c *gin.Context, status int, err error, message string, minimum int64) {
	c.JSON(status, gin.H{
		"status":           status,
		"message":          message,
		"error":            err.Error(),
		"minimum_next_bid": minimum,
	})
}
