package logging

import (
	"context"
	"log/slog"
)

type contextKey string

const (
	RequestIDKey contextKey = "request_id"
	HandlerKey   contextKey = "handler"
	CountryKey   contextKey = "country"
	MonthKey     contextKey = "month"
	FormatKey    contextKey = "format"
)

// ContextHandler wraps another slog.Handler and adds attributes from context.
type ContextHandler struct {
	slog.Handler
}

// NewContextHandler creates a handler that extracts values from context.
func NewContextHandler(h slog.Handler) *ContextHandler {
	return &ContextHandler{Handler: h}
}

// Handle adds context attributes before calling the wrapped handler.
func (h *ContextHandler) Handle(ctx context.Context, r slog.Record) error {
	if ctx == nil {
		return h.Handler.Handle(ctx, r)
	}
	if reqID, ok := ctx.Value(RequestIDKey).(string); ok {
		r.AddAttrs(slog.String("request_id", reqID))
	}
	if name, ok := ctx.Value(HandlerKey).(string); ok {
		r.AddAttrs(slog.String("handler", name))
	}
	if country, ok := ctx.Value(CountryKey).(string); ok {
		r.AddAttrs(slog.String("country", country))
	}
	if month, ok := ctx.Value(MonthKey).(string); ok {
		r.AddAttrs(slog.String("month", month))
	}
	if format, ok := ctx.Value(FormatKey).(string); ok {
		r.AddAttrs(slog.String("format", format))
	}

	return h.Handler.Handle(ctx, r)
}

// WithAttrs keeps the context handler in front of the derived handler.
func (h *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ContextHandler{Handler: h.Handler.WithAttrs(attrs)}
}

// WithGroup keeps the context handler in front of the derived handler.
func (h *ContextHandler) WithGroup(name string) slog.Handler {
	return &ContextHandler{Handler: h.Handler.WithGroup(name)}
}

// Helper functions to add values to context
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

func ContextWithHandler(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, HandlerKey, name)
}

func ContextWithCountry(ctx context.Context, country string) context.Context {
	return context.WithValue(ctx, CountryKey, country)
}

func ContextWithMonth(ctx context.Context, month string) context.Context {
	return context.WithValue(ctx, MonthKey, month)
}

func ContextWithFormat(ctx context.Context, format string) context.Context {
	return context.WithValue(ctx, FormatKey, format)
}

// RequestIDFromContext returns the request ID stored in ctx, if any.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}
