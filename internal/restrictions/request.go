package restrictions

import (
	"encoding/json"
	"fmt"
	"io"
)

// Request is a command submitted by an actor for checking.
type Request struct {
	Actor   string `json:"actor"`
	Command string `json:"command"`
}

// ParseRequest reads and parses a request JSON document from a reader.
func ParseRequest(reader io.Reader) (*Request, error) {
	var request Request
	if err := json.NewDecoder(reader).Decode(&request); err != nil {
		return nil, fmt.Errorf("failed to decode JSON: %w", err)
	}

	if err := request.Validate(); err != nil {
		return nil, err
	}

	return &request, nil
}

// Validate checks that the request carries a command.
func (r *Request) Validate() error {
	if r.Command == "" {
		return fmt.Errorf("command is required")
	}
	return nil
}
