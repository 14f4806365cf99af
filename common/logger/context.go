package logger

import "context"

type contextKey string

const logFieldsKey contextKey = "log_fields"

// LogFields contains structured fields automatically added to all logs within
// a context. Business context (tenant_id, identity_id, ...) set once at the
// edge flows into every log statement below it.
type LogFields struct {
	TenantID   *string // resolved tenant id
	IdentityID *string // identity provider user id
	SessionID  *int64  // app session id
	Operation  *string // reconciliation operation ("resolve", "bootstrap", ...)
	Component  string  // component name, e.g. "console.service.resolution"
}

// WithLogFields enriches context with structured log fields.
// Multiple calls merge fields, with newer non-nil/non-empty values taking precedence.
func WithLogFields(ctx context.Context, fields LogFields) context.Context {
	existing := GetLogFields(ctx)
	merged := mergeFields(existing, fields)
	return context.WithValue(ctx, logFieldsKey, merged)
}

// GetLogFields retrieves log fields from context.
// Returns empty LogFields if none are set.
func GetLogFields(ctx context.Context) LogFields {
	if fields, ok := ctx.Value(logFieldsKey).(LogFields); ok {
		return fields
	}
	return LogFields{}
}

func mergeFields(existing, next LogFields) LogFields {
	result := existing

	if next.TenantID != nil {
		result.TenantID = next.TenantID
	}
	if next.IdentityID != nil {
		result.IdentityID = next.IdentityID
	}
	if next.SessionID != nil {
		result.SessionID = next.SessionID
	}
	if next.Operation != nil {
		result.Operation = next.Operation
	}
	if next.Component != "" {
		result.Component = next.Component
	}

	return result
}

// Ptr is a helper to create a pointer from a value.
// Useful for setting LogFields inline: logger.WithLogFields(ctx, logger.LogFields{TenantID: logger.Ptr(id)})
func Ptr[T any](v T) *T {
	return &v
}
