package middleware

import (
	"errors"
	"net/http"

	"github.com/emicklei/go-restful/v3"
)

var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidParam   = errors.New("invalid parameter")
	ErrUpstream       = errors.New("upstream request failed")
	ErrInternalServer = errors.New("internal server error")
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    int    `json:"code"`
	Details string `json:"details,omitempty"`
}

func HandleError(resp *restful.Response, err error, status int) {
	message := http.StatusText(status)
	if message == "" {
		message = ErrInternalServer.Error()
	}

	errorResponse := ErrorResponse{
		Error: message,
		Code:  status,
	}
	if err != nil {
		errorResponse.Details = err.Error()
	}

	_ = resp.WriteHeaderAndEntity(status, errorResponse)
}
