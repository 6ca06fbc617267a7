package graphql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	genql "github.com/Khan/genqlient/graphql"
	"github.com/vektah/gqlparser/v2/gqlerror"
)

var (
	// ErrNoData is returned when the endpoint answers without errors but also without data.
	ErrNoData = errors.New("graphql response carried no data")
	// ErrNotFound is returned when a looked-up entity resolves to null.
	ErrNotFound = errors.New("entity not found")
)

// QueryError wraps the GraphQL-level errors of a response.
type QueryError struct {
	Operation string
	Errors    gqlerror.List
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("graphql operation %s failed: %s", e.Operation, e.Errors.Error())
}

func (e *QueryError) Unwrap() error {
	return e.Errors
}

type ClientConfig struct {
	Endpoint            string
	Timeout             time.Duration
	MaxIdleConns        int
	MaxIdleConnsPerHost int
}

func NewClient(config ClientConfig) genql.Client {
	httpClient := &http.Client{
		Timeout: config.Timeout,
		Transport: &http.Transport{
			MaxIdleConns:        config.MaxIdleConns,
			MaxIdleConnsPerHost: config.MaxIdleConnsPerHost,
			IdleConnTimeout:     90 * time.Second,
		},
	}

	return genql.NewClient(config.Endpoint, httpClient)
}

// Operation is a named GraphQL document.
type Operation struct {
	Name     string
	Document string
}

// Execute runs the operation once and decodes its data into T.
func Execute[T any](ctx context.Context, client genql.Client, op Operation, variables map[string]any) Result[T] {
	var raw json.RawMessage
	response := genql.Response{Data: &raw}

	err := client.MakeRequest(ctx, &genql.Request{
		OpName:    op.Name,
		Query:     op.Document,
		Variables: variables,
	}, &response)
	if err != nil {
		var gqlErrors gqlerror.List
		if errors.As(err, &gqlErrors) {
			return Failure[T](&QueryError{Operation: op.Name, Errors: gqlErrors})
		}
		return Failure[T](fmt.Errorf("graphql operation %s: %w", op.Name, err))
	}

	if len(response.Errors) > 0 {
		return Failure[T](&QueryError{Operation: op.Name, Errors: response.Errors})
	}

	if len(raw) == 0 || string(raw) == "null" {
		return Failure[T](fmt.Errorf("graphql operation %s: %w", op.Name, ErrNoData))
	}

	var data T
	if err := json.Unmarshal(raw, &data); err != nil {
		return Failure[T](fmt.Errorf("graphql operation %s: failed to decode data: %w", op.Name, err))
	}

	return Success(data)
}
