package async

import (
	"context"
	"runtime/debug"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/bugtrail/pkg/utils/apperr"
)

// Dispatch runs handler in a new goroutine on a context detached from the request,
// so the HTTP response does not wait for it and a cancelled request does not abort it.
// Errors and panics are logged, never returned.
func Dispatch(ctx context.Context, handler func(ctx context.Context) error) {
	newCtx := newBackgroundContext(ctx)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				stack := debug.Stack()
				apperr.Handle(newCtx, goerr.New("panic in async handler",
					goerr.V("recover", r),
					goerr.V("stack", string(stack)),
				))
			}
		}()

		if err := handler(newCtx); err != nil {
			apperr.Handle(newCtx, goerr.Wrap(err, "async handler failed"))
		}
	}()
}

// newBackgroundContext keeps the logger and request ID of ctx
func newBackgroundContext(ctx context.Context) context.Context {
	newCtx := context.Background()

	logger := ctxlog.From(ctx)
	if logger != nil {
		newCtx = ctxlog.With(newCtx, logger)
	}

	if reqID := middleware.GetReqID(ctx); reqID != "" {
		newCtx = context.WithValue(newCtx, middleware.RequestIDKey, reqID)
	}

	return newCtx
}
