package httpapi

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"chat-screener/errors"
	"chat-screener/observability"
	"chat-screener/ratelimit"

	"github.com/google/uuid"
)

const (
	HeaderAPIKey    = "X-API-Key"
	HeaderRequestID = "X-Request-ID"
	maxRequestID    = 128
)

type loggerKey struct{}

// loggerFrom returns the request scoped logger, carrying the request id.
func loggerFrom(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if log, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return log
	}
	return fallback
}

// withRequestID echoes the caller's X-Request-ID or generates one.
func withRequestID(log *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(HeaderRequestID)
		if id == "" || len(id) > maxRequestID {
			id = uuid.NewString()
		}
		w.Header().Set(HeaderRequestID, id)
		ctx := context.WithValue(r.Context(), loggerKey{}, log.With("request_id", id))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// withCORS allows any origin. Preflight requests end here.
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Content-Type, "+HeaderAPIKey+", "+HeaderRequestID)
		h.Set("Access-Control-Expose-Headers", HeaderRequestID+", Retry-After")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Header.Get(HeaderAPIKey)
		if key == "" {
			writeError(w, loggerFrom(r.Context(), h.log), errors.Unauthorized("API key required"))
			return
		}
		if subtle.ConstantTimeCompare([]byte(key), h.apiKey) != 1 {
			loggerFrom(r.Context(), h.log).Info("Invalid API key", "remote", r.RemoteAddr)
			writeError(w, loggerFrom(r.Context(), h.log), errors.Unauthorized("invalid API key"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) rateLimit(route string, rule ratelimit.Rule, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		decision, err := h.limiter.Allow(r.Context(), clientIP(r), rule)
		if err != nil {
			loggerFrom(r.Context(), h.log).Debug("Rate limiter unavailable", "route", route, "error", err)
		}
		if !decision.Allowed {
			observability.RateLimitedTotal.WithLabelValues(route).Inc()
			w.Header().Set("Retry-After", retryAfterSeconds(decision.RetryAfter))
			writeError(w, loggerFrom(r.Context(), h.log),
				errors.RateLimited(fmt.Sprintf("%d requests per %s", rule.Limit, rule.Window)))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientIP is the peer address. Forwarding headers are not trusted.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func instrument(route string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		observability.RequestDuration.
			WithLabelValues(route, strconv.Itoa(rec.status)).
			Observe(time.Since(start).Seconds())
	})
}

// withJSONFallback renders the mux's own 404 and 405 answers in the error envelope.
// Requests matching a registered pattern go straight through.
func withJSONFallback(log *slog.Logger, mux *http.ServeMux) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, pattern := mux.Handler(r); pattern != "" {
			mux.ServeHTTP(w, r)
			return
		}
		mux.ServeHTTP(&fallbackWriter{ResponseWriter: w, log: loggerFrom(r.Context(), log)}, r)
	})
}

// fallbackWriter swaps the plain text body of a 404 or 405 for the JSON envelope.
// The Allow header set by the mux is kept.
type fallbackWriter struct {
	http.ResponseWriter
	log      *slog.Logger
	replaced bool
}

func (f *fallbackWriter) WriteHeader(code int) {
	var body ErrorBody
	switch code {
	case http.StatusNotFound:
		body = ErrorBody{Code: codeRouteNotFound, Message: "route not found", Details: []string{}}
	case http.StatusMethodNotAllowed:
		body = ErrorBody{Code: codeMethodNotAllowed, Message: "method not allowed", Details: []string{}}
	default:
		f.ResponseWriter.WriteHeader(code)
		return
	}
	f.replaced = true
	f.Header().Del("X-Content-Type-Options")
	writeJSON(f.ResponseWriter, f.log, code, ErrorResponse{Status: statusError, Error: body})
}

func (f *fallbackWriter) Write(b []byte) (int, error) {
	if f.replaced {
		return len(b), nil
	}
	return f.ResponseWriter.Write(b)
}
