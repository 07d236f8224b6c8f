// log хранит request-scoped *slog.Logger в context.Context.
package log

import (
	"context"
	"io"
	"log/slog"
)

// UserIDKey — имя атрибута с id пользователя во всех записях сервиса.
const UserIDKey = "user_id"

type ctxKey struct{}

// Into кладёт логгер в контекст.
func Into(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// From достаёт логгер из контекста (или возвращает slog.Default()).
func From(ctx context.Context) *slog.Logger {
	if v := ctx.Value(ctxKey{}); v != nil {
		if l, ok := v.(*slog.Logger); ok && l != nil {
			return l
		}
	}

	return slog.Default()
}

// With дополняет логгер из контекста атрибутами и кладёт результат обратно.
func With(ctx context.Context, args ...any) context.Context {
	return Into(ctx, From(ctx).With(args...))
}

// UserID — атрибут с id пользователя.
func UserID(id string) slog.Attr {
	return slog.String(UserIDKey, id)
}

// WithUser помечает логгер из контекста id аутентифицированного пользователя.
func WithUser(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return With(ctx, UserID(id))
}

// Discard — логгер, который ничего не пишет (тесты, отключённые подсистемы).
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
