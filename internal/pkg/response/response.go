package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIError is the error half of the response envelope. Code is a stable
// machine-readable token; Message is for humans.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type successEnvelope struct {
	Data interface{} `json:"data"`
}

type errorEnvelope struct {
	Error APIError `json:"error"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, successEnvelope{Data: data})
}

func Error(c *gin.Context, status int, code, message string) {
	c.JSON(status, errorEnvelope{Error: APIError{Code: code, Message: message}})
}
