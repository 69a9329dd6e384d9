package apperrors

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// Fixed envelope messages for failure categories whose internal detail must
// not leak to callers.
const (
	msgDuplicateOrderItem = "OrderItem already exists with the same orderId and productId"
	msgRemoteUnavailable  = "#### Service temporarily unavailable. Please try again later. ####"
	msgRemoteServerError  = "#### External service error. Please try again later. ####"
	msgRemoteClientError  = "#### External service returned an error. Please try again later. ####"
	msgUnexpected         = "#### An unexpected error occurred. Please try again later. ####"
)

// Mapper renders the envelope message and status for a recognized failure.
// The boolean reports whether the mapper claims the failure.
type Mapper func(err error) (string, Status, bool)

// Responder is the single boundary point translating internal failures into
// the external error contract. Mappers are evaluated in registration order,
// most specific first; the catch-all never declines.
type Responder struct {
	logger  *slog.Logger
	mappers []Mapper
	now     func() time.Time
}

// NewResponder builds a responder with the default mapper chain.
func NewResponder(logger *slog.Logger) *Responder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Responder{
		logger: logger,
		mappers: []Mapper{
			mapValidation,
			mapBadRequest,
			mapIntegrity,
			mapRemoteUnavailable,
			mapRemoteServer,
			mapRemoteClient,
		},
		now: time.Now,
	}
}

// Render evaluates the mapper chain and builds the envelope for a failure.
func (r *Responder) Render(err error) ExceptionMsg {
	for _, mapper := range r.mappers {
		if msg, status, ok := mapper(err); ok {
			return ExceptionMsg{Msg: msg, HTTPStatus: status, Timestamp: r.now()}
		}
	}
	return ExceptionMsg{Msg: msgUnexpected, HTTPStatus: StatusInternalServerError, Timestamp: r.now()}
}

// Respond renders the failure, logs it with category-dependent severity, and
// writes the envelope. Client-caused failures (4xx class) log at info;
// infrastructure and upstream failures log at error with full detail.
func (r *Responder) Respond(c *gin.Context, err error) {
	envelope := r.Render(err)
	r.log(c.Request.Context(), envelope, err, c.FullPath())
	c.JSON(envelope.HTTPStatus.Code(), envelope)
}

func (r *Responder) log(ctx context.Context, envelope ExceptionMsg, err error, path string) {
	level := slog.LevelInfo
	if envelope.HTTPStatus.Code() >= 500 {
		level = slog.LevelError
	}
	r.logger.LogAttrs(ctx, level, "request failed",
		slog.String("path", path),
		slog.String("status", string(envelope.HTTPStatus)),
		slog.String("error", err.Error()),
	)
}

func mapValidation(err error) (string, Status, bool) {
	var ve *ValidationError
	if !errors.As(err, &ve) {
		return "", "", false
	}
	return "*" + ve.Msg + "!**", StatusBadRequest, true
}

func mapBadRequest(err error) (string, Status, bool) {
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return "#### " + nf.Msg + "! ####", StatusBadRequest, true
	}
	var is *IllegalStateError
	if errors.As(err, &is) {
		return "#### " + is.Msg + "! ####", StatusBadRequest, true
	}
	return "", "", false
}

func mapIntegrity(err error) (string, Status, bool) {
	var ie *IntegrityError
	if !errors.As(err, &ie) {
		return "", "", false
	}
	msg := ie.Error()
	if strings.Contains(msg, "Duplicate") ||
		strings.Contains(msg, "PRIMARY KEY") ||
		strings.Contains(msg, "unique constraint") {
		msg = msgDuplicateOrderItem
	} else {
		msg = "Data integrity violation: " + msg
	}
	return "#### " + msg + "! ####", StatusConflict, true
}

func mapRemoteUnavailable(err error) (string, Status, bool) {
	var re *RemoteUnavailableError
	if !errors.As(err, &re) {
		return "", "", false
	}
	return msgRemoteUnavailable, StatusServiceUnavailable, true
}

func mapRemoteServer(err error) (string, Status, bool) {
	var re *RemoteServerError
	if !errors.As(err, &re) {
		return "", "", false
	}
	return msgRemoteServerError, StatusBadGateway, true
}

func mapRemoteClient(err error) (string, Status, bool) {
	var re *RemoteClientError
	if !errors.As(err, &re) {
		return "", "", false
	}
	return msgRemoteClientError, StatusBadGateway, true
}
