package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/straatbeeld/werkorder-api/pkg/errors"
)

// JSON sends a success body. Payloads are rendered bare (array or object)
// because the presentation layer binds work-order field names directly.
func JSON(c *gin.Context, status int, data interface{}) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(status, data)
}

// OK responds with HTTP 200.
func OK(c *gin.Context, data interface{}) {
	JSON(c, http.StatusOK, data)
}

// Error renders the uniform error envelope {"code","message"} with the
// status carried by the error, defaulting to 500 for untyped failures.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(appErr.Status, appErr)
}

// NoContent sends a 204 response.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
