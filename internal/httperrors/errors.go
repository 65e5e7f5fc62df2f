// Package httperrors renders error responses.
package httperrors

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// HTTPError is the body of all error responses.
type HTTPError struct {
	Message string `json:"message" example:"Budget not found"`                // Human readable description
	Error   string `json:"error,omitempty" example:"sql: database is closed"` // Underlying error, only set for server errors
}

// New writes an error response with the message formatted from msgAndArgs.
func New(c *gin.Context, status int, msgAndArgs ...any) {
	// Format msgAndArgs in a final string.
	// This is taken almost exactly from https://github.com/stretchr/testify/blob/181cea6eab8b2de7071383eca4be32a424db38dd/assert/assertions.go#L181
	msg := ""
	if len(msgAndArgs) == 1 {
		if msgAsStr, ok := msgAndArgs[0].(string); ok {
			msg = msgAsStr
		}
		msg = fmt.Sprintf("%+v", msg)
	}

	if len(msgAndArgs) > 1 {
		msg = fmt.Sprintf(msgAndArgs[0].(string), msgAndArgs[1:]...)
	}

	c.JSON(status, HTTPError{
		Message: msg,
	})
}

// Handler handles all errors that are not explicitly mapped by a controller.
//
// The response is always a 500 carrying the error string.
func Handler(c *gin.Context, err error) {
	log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())

	c.JSON(http.StatusInternalServerError, HTTPError{
		Message: "Server error",
		Error:   err.Error(),
	})
}
