package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/wildtrack/wildlife-tracker/internal/pkg/validation"
)

// BindJSON decodes and validates the JSON body into obj. On failure it writes the
// validation error response and returns false.
func BindJSON(c *gin.Context, obj interface{}) bool {
	return bindWith(c, obj, binding.JSON)
}

// BindBody picks the binding from the request content type, so form posts and JSON both work
func BindBody(c *gin.Context, obj interface{}) bool {
	return bindWith(c, obj, binding.Default(c.Request.Method, c.ContentType()))
}

func bindWith(c *gin.Context, obj interface{}, b binding.Binding) bool {
	if err := c.ShouldBindWith(obj, b); err != nil {
		HandleAPIError(c, validation.FromBindError(err))
		return false
	}
	return true
}
