// Package graphqltest serves canned GraphQL responses keyed by operation name.
package graphqltest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

type Request struct {
	OperationName string         `json:"operationName"`
	Query         string         `json:"query"`
	Variables     map[string]any `json:"variables"`
}

type Server struct {
	*httptest.Server

	mu        sync.Mutex
	responses map[string]json.RawMessage
	requests  []Request
}

func NewServer(t *testing.T) *Server {
	t.Helper()
	s := &Server{responses: make(map[string]json.RawMessage)}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.Close)
	return s
}

// RespondData answers operation with {"data": data}.
func (s *Server) RespondData(operation, data string) {
	s.respond(operation, `{"data":`+data+`}`)
}

// RespondErrors answers operation with a GraphQL error and no data.
func (s *Server) RespondErrors(operation, message string) {
	body, _ := json.Marshal(map[string]any{
		"errors": []map[string]any{{"message": message}},
		"data":   nil,
	})
	s.respond(operation, string(body))
}

func (s *Server) respond(operation, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responses[operation] = json.RawMessage(body)
}

// Requests returns the received requests for operation.
func (s *Server) Requests(operation string) []Request {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matched []Request
	for _, req := range s.requests {
		if req.OperationName == operation {
			matched = append(matched, req)
		}
	}
	return matched
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	s.requests = append(s.requests, req)
	body, ok := s.responses[req.OperationName]
	s.mu.Unlock()

	if !ok {
		body = json.RawMessage(`{"errors":[{"message":"unexpected operation ` + req.OperationName + `"}]}`)
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(body)
}
