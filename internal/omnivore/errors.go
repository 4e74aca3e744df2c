package omnivore

import (
	"encoding/json"
	"fmt"
	"strings"
)

// TransportError reports a network-level fault or a non-2xx response.
// Body holds a truncated excerpt of the server response when one was
// received.
type TransportError struct {
	StatusCode int // 0 when the request never completed
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	switch {
	case e.Err != nil && e.Body != "":
		return fmt.Sprintf("request failed: %v (server response: %s)", e.Err, e.Body)
	case e.Err != nil:
		return fmt.Sprintf("request failed: %v", e.Err)
	default:
		return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
	}
}

func (e *TransportError) Unwrap() error { return e.Err }

// GraphQLError carries the server-provided errors array verbatim.
type GraphQLError struct {
	Errors json.RawMessage
}

func (e *GraphQLError) Error() string {
	return "graphql errors: " + string(e.Errors)
}

// DomainError carries the errorCodes returned inside the subscriptions
// result.
type DomainError struct {
	Codes []string
}

func (e *DomainError) Error() string {
	return "subscription error: " + strings.Join(e.Codes, ", ")
}
