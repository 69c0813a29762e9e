// Package response renders the JSON envelope shared by every handler:
// {"success": true, "data": ...} on the happy path, and
// {"success": false, "error": {code, message[, details]}} otherwise.
package response

import "github.com/gin-gonic/gin"

// Success writes data under the success envelope. A nil data renders
// as JSON null, which some lookups use to mean "no such record".
func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

// Error writes a machine-readable code plus a human message.
func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error":   errorBody(code, message, nil),
	})
}

// ErrorWithDetails adds a details payload, typically the field->tag map
// produced by pkg/validator.
func ErrorWithDetails(c *gin.Context, statusCode int, code string, message string, details any) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error":   errorBody(code, message, details),
	})
}

func errorBody(code, message string, details any) gin.H {
	body := gin.H{
		"code":    code,
		"message": message,
	}
	if details != nil {
		body["details"] = details
	}
	return body
}
