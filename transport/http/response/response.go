package response

import (
	"encoding/json"
	"net/http"

	"madison/shared/constant"
	"madison/shared/failure"
	"madison/shared/logger"
)

type Data[T any] struct {
	Data *T `json:"data,omitempty"`
}

type Error struct {
	Error *string `json:"error,omitempty"`
}

type Message struct {
	Message *string `json:"message,omitempty"`
}

// WithMessage sends a plain text message response.
func WithMessage(writer http.ResponseWriter, code int, message string) {
	write(writer, code, Message{Message: &message})
}

// WithJSON sends the payload under a data envelope.
func WithJSON(writer http.ResponseWriter, code int, jsonPayload interface{}) {
	write(writer, code, Data[any]{Data: &jsonPayload})
}

// WithError maps the error to its HTTP status and sends the message.
func WithError(writer http.ResponseWriter, err error) {
	errMsg := err.Error()

	write(writer, failure.GetCode(err), Error{Error: &errMsg})
}

// WithRequestLimitExceeded responds 429 for rate-limited clients.
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

// WithPreparingShutdown responds 503 while the server drains connections.
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

// WithUnhealthy responds 503 when a health check fails.
func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func write(writer http.ResponseWriter, code int, payload interface{}) {
	body, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)

	if _, err = writer.Write(body); err != nil {
		logger.ErrorWithStack(err)
	}
}
