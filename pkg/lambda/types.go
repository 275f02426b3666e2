package lambda

import (
	"encoding/json"
)

// Response is the value returned to the invoking platform
type Response struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

// Event is an opaque invocation payload; handlers never decode it
type Event = json.RawMessage
