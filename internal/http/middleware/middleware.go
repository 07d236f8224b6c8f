package middleware

import (
	"context"
	"net/http"

	"github.com/pribylovaa/hotel-listing-api/internal/token"
)

// Middleware — стандартный net/http мидлвар.
type Middleware func(http.Handler) http.Handler

// Chain применяет мидлвары к обработчику в порядке их перечисления.
func Chain(h http.Handler, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

type ctxKey int

const (
	ctxRequestID ctxKey = iota
	ctxPrincipal
	ctxRequestInfo
)

// requestInfo заполняется внутренними мидлварами и читается Logging/Recover
// после обработки запроса, когда внутренний контекст уже недоступен.
type requestInfo struct {
	userID string
}

func withRequestInfo(ctx context.Context) (context.Context, *requestInfo) {
	if info := requestInfoFrom(ctx); info != nil {
		return ctx, info
	}

	info := &requestInfo{}
	return context.WithValue(ctx, ctxRequestInfo, info), info
}

func requestInfoFrom(ctx context.Context) *requestInfo {
	info, _ := ctx.Value(ctxRequestInfo).(*requestInfo)
	return info
}

// RequestIDFrom возвращает X-Request-Id текущего запроса.
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(ctxRequestID).(string)
	return id
}

// PrincipalFrom возвращает аутентифицированного пользователя или nil для анонимного запроса.
func PrincipalFrom(ctx context.Context) *token.Principal {
	p, _ := ctx.Value(ctxPrincipal).(*token.Principal)
	return p
}

// WithPrincipal кладёт пользователя в контекст и отмечает его id для итоговой записи лога.
func WithPrincipal(ctx context.Context, p *token.Principal) context.Context {
	if info := requestInfoFrom(ctx); info != nil && p != nil {
		info.userID = p.UserID
	}

	return context.WithValue(ctx, ctxPrincipal, p)
}

// statusWriter оборачивает ResponseWriter, чтобы перехватить статус и размер.
type statusWriter struct {
	http.ResponseWriter
	status int
	count  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(p []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}

	count, err := w.ResponseWriter.Write(p)
	w.count += count
	return count, err
}

// code — фактический статус: обработчик, ничего не записавший, отвечает 200.
func (w *statusWriter) code() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}

func newStatusWriter(w http.ResponseWriter) *statusWriter {
	return &statusWriter{ResponseWriter: w}
}
