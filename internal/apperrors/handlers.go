package apperrors

import (
	"github.com/gin-gonic/gin"
)

// HandleError writes err as a JSON response. Unknown error types are
// collapsed into a generic 500 so internals never leak to the client.
func HandleError(c *gin.Context, err error) {
	var appErr *AppError
	if !As(err, &appErr) {
		appErr = InternalError(err)
	}

	body := gin.H{
		"message": appErr.Message,
		"code":    appErr.Code,
	}
	if appErr.Details != nil {
		body["details"] = appErr.Details
	}
	c.AbortWithStatusJSON(appErr.HTTPCode, body)
}
