package observability

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	"github.com/microcommerce/shipping-service/internal/shipping/application/types"
	"github.com/microcommerce/shipping-service/internal/shipping/domain"
	"github.com/microcommerce/shipping-service/internal/shipping/ports"
)

const tracerName = "github.com/microcommerce/shipping-service/internal/shipping/adapters/observability/service"

// Service decorates the shipping service with tracing, logging, and metrics.
type Service struct {
	inner   ports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wraps the core shipping service.
func New(inner ports.Service, opts ...Option) ports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		logger:  slog.New(slog.DiscardHandler),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return s
}

func (s *Service) List(ctx context.Context) ([]*types.OrderItemView, error) {
	ctx, span := s.tracer.Start(ctx, "ShippingService.List")
	defer span.End()

	s.logInfo(ctx, "listing order items")
	result, err := s.inner.List(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list order items")
	}
	span.SetAttributes(attribute.Int("order_item.count", len(result)))
	s.logInfo(ctx, "order items listed", slog.Int("count", len(result)))
	return result, nil
}

func (s *Service) GetByID(ctx context.Context, id domain.OrderItemID) (*types.OrderItemView, error) {
	ctx, span := s.tracer.Start(ctx, "ShippingService.GetByID", trace.WithAttributes(idAttrs(id)...))
	defer span.End()

	s.logInfo(ctx, "loading order item", idLogAttrs(id)...)
	result, err := s.inner.GetByID(ctx, id)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load order item", idLogAttrs(id)...)
	}
	s.logInfo(ctx, "order item loaded", idLogAttrs(id)...)
	return result, nil
}

func (s *Service) Save(ctx context.Context, view *types.OrderItemView) (*types.OrderItemView, error) {
	id := domain.NewOrderItemID(view.OrderID, view.ProductID)
	ctx, span := s.tracer.Start(ctx, "ShippingService.Save", trace.WithAttributes(idAttrs(id)...))
	defer span.End()

	s.logInfo(ctx, "saving order item", idLogAttrs(id)...)
	result, err := s.inner.Save(ctx, view)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to save order item", idLogAttrs(id)...)
	}
	s.metrics.recordSaved(ctx)
	s.logInfo(ctx, "order item saved", append(idLogAttrs(id), slog.Int("ordered_quantity", result.OrderedQuantity))...)
	return result, nil
}

func (s *Service) Update(ctx context.Context, view *types.OrderItemView) (*types.OrderItemView, error) {
	id := domain.NewOrderItemID(view.OrderID, view.ProductID)
	ctx, span := s.tracer.Start(ctx, "ShippingService.Update", trace.WithAttributes(idAttrs(id)...))
	defer span.End()

	s.logInfo(ctx, "updating order item", idLogAttrs(id)...)
	result, err := s.inner.Update(ctx, view)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to update order item", idLogAttrs(id)...)
	}
	s.metrics.recordSaved(ctx)
	s.logInfo(ctx, "order item updated", append(idLogAttrs(id), slog.Int("ordered_quantity", result.OrderedQuantity))...)
	return result, nil
}

func (s *Service) Delete(ctx context.Context, id domain.OrderItemID) error {
	ctx, span := s.tracer.Start(ctx, "ShippingService.Delete", trace.WithAttributes(idAttrs(id)...))
	defer span.End()

	s.logInfo(ctx, "deleting order item", idLogAttrs(id)...)
	if err := s.inner.Delete(ctx, id); err != nil {
		return s.handleError(ctx, span, err, "failed to delete order item", idLogAttrs(id)...)
	}
	s.metrics.recordDeleted(ctx)
	s.logInfo(ctx, "order item deleted", idLogAttrs(id)...)
	return nil
}

func idAttrs(id domain.OrderItemID) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.Int("order_item.order_id", id.OrderID),
		attribute.Int("order_item.product_id", id.ProductID),
	}
}

func idLogAttrs(id domain.OrderItemID) []slog.Attr {
	return []slog.Attr{
		slog.Int("order_id", id.OrderID),
		slog.Int("product_id", id.ProductID),
	}
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) logError(ctx context.Context, msg string, err error, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	s.logError(ctx, msg, err, attrs...)
	return err
}

type serviceMetrics struct {
	itemsSaved   metric.Int64Counter
	itemsDeleted metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	itemsSaved, _ := m.Int64Counter("shipping.service.order_items_saved", metric.WithDescription("Number of order items saved"))
	itemsDeleted, _ := m.Int64Counter("shipping.service.order_items_deleted", metric.WithDescription("Number of order items deleted"))
	return serviceMetrics{itemsSaved: itemsSaved, itemsDeleted: itemsDeleted}
}

func (m serviceMetrics) recordSaved(ctx context.Context) {
	if m.itemsSaved != nil {
		m.itemsSaved.Add(ctx, 1)
	}
}

func (m serviceMetrics) recordDeleted(ctx context.Context) {
	if m.itemsDeleted != nil {
		m.itemsDeleted.Add(ctx, 1)
	}
}

var _ ports.Service = (*Service)(nil)
