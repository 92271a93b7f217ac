package obs

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

type ctxKey string

const RequestIDKey ctxKey = "req_id"

// WithRequestID stores id on ctx for later log correlation.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

// RequestID returns the request id stored on ctx, or "".
func RequestID(ctx context.Context) string {
	reqID, _ := ctx.Value(RequestIDKey).(string)
	return reqID
}

// Time logs the duration of the named operation when the returned func runs.
// Pass the address of the named error result to log failures at warn level.
func Time(ctx context.Context, logger zerolog.Logger, name string) func(errp *error) {
	start := time.Now()
	reqID := RequestID(ctx)

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			logger.Warn().Str("req_id", reqID).Str("op", name).Int64("dur_ms", dur.Milliseconds()).Err(*errp).Msg("operation failed")
			return
		}
		logger.Debug().Str("req_id", reqID).Str("op", name).Int64("dur_ms", dur.Milliseconds()).Msg("operation complete")
	}
}
