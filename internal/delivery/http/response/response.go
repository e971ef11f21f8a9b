package response

import (
	"github.com/gin-gonic/gin"
)

// Body is the uniform wire shape for every endpoint: `ok` plus whichever
// payload field the endpoint produces. Error is set only when ok is false.
type Body struct {
	OK         bool   `json:"ok"`
	Error      string `json:"error,omitempty"`
	Content    string `json:"content,omitempty"`
	PreviewURL string `json:"previewUrl,omitempty"`
}

// OK sends a success response
func OK(c *gin.Context, code int, body Body) {
	body.OK = true
	body.Error = ""
	c.JSON(code, body)
}

// Fail sends an error response
func Fail(c *gin.Context, code int, message string) {
	c.JSON(code, Body{OK: false, Error: message})
}
