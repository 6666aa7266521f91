package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
)

var (
	// ErrTimeout carries the fixed message shown when the backend is slow.
	ErrTimeout      = errors.New("request timed out, please try again")
	ErrNoSession    = errors.New("not logged in, run `internhub login` first")
	ErrInvalidInput = errors.New("invalid input")
)

// APIError is a non-2xx backend reply. Message is the server's own message
// when the body carried one.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
}

type errorPayload struct {
	Status  string `json:"status"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

func parseError(status int, payload []byte) error {
	var parsed errorPayload
	if err := json.Unmarshal(payload, &parsed); err == nil {
		message := strings.TrimSpace(parsed.Message)
		if message == "" {
			message = strings.TrimSpace(parsed.Error)
		}
		if message != "" {
			return &APIError{StatusCode: status, Code: parsed.Error, Message: message}
		}
	}
	return &APIError{StatusCode: status, Message: genericMessage(status)}
}

func genericMessage(status int) string {
	return fmt.Sprintf("request failed with status %d", status)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// UserMessage is the text to show for err in an alert or dialog.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	if errors.Is(err, ErrTimeout) {
		return ErrTimeout.Error()
	}
	return err.Error()
}

func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}
