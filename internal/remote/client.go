// Package remote talks to the upstream warranty registry API. The registry
// wraps every reply in a {status, message, data} envelope with the actual
// payload under a named root field; status=false is the sole error signal
// and its message is passed through verbatim.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/dealerdesk/dealerdesk/internal/domain"
)

const defaultTimeout = 15 * time.Second

// Envelope is the registry's response wrapper.
type Envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// callRequest is the registry's request wrapper: an operation name plus
// its variables object.
type callRequest struct {
	Operation string `json:"operation"`
	Variables any    `json:"variables,omitempty"`
}

// Client issues calls against one registry endpoint.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a Client for the given base URL. A non-positive
// timeout uses the default.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("remote: base URL is required")
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}, nil
}

// Call executes one registry operation and returns the envelope's data
// payload. Transport failures and status=false envelopes map to
// CodeUnavailable; replies that cannot be decoded map to CodeMalformed.
// No retry is attempted here: retrying is a caller decision.
func (c *Client) Call(ctx context.Context, operation string, variables any) (json.RawMessage, error) {
	body, err := json.Marshal(callRequest{Operation: operation, Variables: variables})
	if err != nil {
		return nil, domain.NewAppError(domain.CodeInternal, "encode registry request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/query", bytes.NewReader(body))
	if err != nil {
		return nil, domain.NewAppError(domain.CodeInternal, "build registry request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, domain.NewAppError(domain.CodeUnavailable, "registry unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, domain.NewAppError(domain.CodeUnavailable,
			fmt.Sprintf("registry returned HTTP %d", resp.StatusCode), nil)
	}

	var env Envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, domain.NewAppError(domain.CodeMalformed, "decode registry envelope", err)
	}

	if !env.Status {
		msg := env.Message
		if msg == "" {
			msg = "registry reported failure"
		}
		return nil, domain.NewAppError(domain.CodeUnavailable, msg, nil)
	}

	return env.Data, nil
}

// UnwrapRoot extracts the named root field from an envelope's data
// payload. A missing root field means the registry's schema drifted from
// what this build expects; that is an error, not a crash.
func UnwrapRoot(data json.RawMessage, rootField string) (json.RawMessage, error) {
	if len(data) == 0 {
		return nil, domain.NewAppError(domain.CodeMalformed, "registry envelope has no data", nil)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, domain.NewAppError(domain.CodeMalformed, "registry data is not an object", err)
	}

	root, ok := fields[rootField]
	if !ok || len(root) == 0 || string(root) == "null" {
		return nil, domain.NewAppError(domain.CodeMalformed,
			fmt.Sprintf("registry response missing root field %q", rootField), nil)
	}
	return root, nil
}
