package apperrors

import (
	"net/http"
	"time"
)

// Status is the HTTP status rendered into the error envelope, serialized as
// the upper-snake enum name clients of the wider platform already parse.
type Status string

const (
	StatusBadRequest          Status = "BAD_REQUEST"
	StatusConflict            Status = "CONFLICT"
	StatusBadGateway          Status = "BAD_GATEWAY"
	StatusServiceUnavailable  Status = "SERVICE_UNAVAILABLE"
	StatusInternalServerError Status = "INTERNAL_SERVER_ERROR"
)

// Code returns the numeric HTTP status.
func (s Status) Code() int {
	switch s {
	case StatusBadRequest:
		return http.StatusBadRequest
	case StatusConflict:
		return http.StatusConflict
	case StatusBadGateway:
		return http.StatusBadGateway
	case StatusServiceUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// ExceptionMsg is the uniform error envelope returned for every failed
// request. Constructed fresh per failure; never persisted.
type ExceptionMsg struct {
	Msg        string    `json:"msg"`
	HTTPStatus Status    `json:"httpStatus"`
	Timestamp  time.Time `json:"timestamp"`
}
