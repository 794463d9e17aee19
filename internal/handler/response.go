package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func NewSuccessResponse(data interface{}) *Response {
	return &Response{
		Status: "success",
		Data:   data,
	}
}

func NewErrorResponse(message string) *Response {
	return &Response{
		Status:  "error",
		Message: message,
	}
}

// RespondError writes a classified error with its own status code when the
// error carries one, and falls back to 500 otherwise.
func RespondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	if coded, ok := statusCoded(err); ok {
		status = coded
	}
	c.JSON(status, NewErrorResponse(err.Error()))
}

func statusCoded(err error) (int, bool) {
	for err != nil {
		if coded, ok := err.(interface{ StatusCode() int }); ok {
			return coded.StatusCode(), true
		}
		unwrapper, ok := err.(interface{ Unwrap() error })
		if !ok {
			return 0, false
		}
		err = unwrapper.Unwrap()
	}
	return 0, false
}
