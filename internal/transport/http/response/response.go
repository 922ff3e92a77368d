package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const MessageInternal = "internal server error"

type ErrorBody struct {
	Error string `json:"error"`
}

func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Error reports an application error. The transport status stays 200 and
// clients read the message from the body.
func Error(c *gin.Context, message string) {
	c.JSON(http.StatusOK, ErrorBody{Error: message})
}

func Internal(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, ErrorBody{Error: MessageInternal})
}
