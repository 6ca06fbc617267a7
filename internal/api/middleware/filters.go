package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/emicklei/go-restful/v3"
	"github.com/rs/zerolog/log"
)

// Logger is a container filter writing one access log line per request.
func Logger(req *restful.Request, resp *restful.Response, chain *restful.FilterChain) {
	start := time.Now()

	chain.ProcessFilter(req, resp)

	log.Info().
		Str("method", req.Request.Method).
		Str("path", req.Request.URL.Path).
		Str("query", req.Request.URL.RawQuery).
		Int("status", resp.StatusCode()).
		Int("bytes", resp.ContentLength()).
		Dur("duration", time.Since(start)).
		Msg("request handled")
}

// RecoverPanic turns a panicking handler into a 500 response.
func RecoverPanic(req *restful.Request, resp *restful.Response, chain *restful.FilterChain) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().
				Str("method", req.Request.Method).
				Str("path", req.Request.URL.Path).
				Interface("panic", r).
				Bytes("stack", debug.Stack()).
				Msg("recovered from panic")
			HandleError(resp, fmt.Errorf("%w: %v", ErrInternalServer, r), http.StatusInternalServerError)
		}
	}()

	chain.ProcessFilter(req, resp)
}
