// Package httpapi is the HTTP boundary: routing, authentication, rate limiting
// and the mapping of domain errors to status codes.
package httpapi

import (
	"encoding/json"
	stderrors "errors"
	"log/slog"
	"net/http"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"chat-screener/domain"
	"chat-screener/errors"
	"chat-screener/internal"
	"chat-screener/ratelimit"
	"chat-screener/services"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	"github.com/shirou/gopsutil/process"
)

const (
	apiTitle     = "Message screening API"
	apiMessage   = "API running"
	maxBodyBytes = 1 << 20
	timeoutBody  = `{"status":"error","error":{"code":"TIMEOUT","message":"request timed out","details":[]}}`
)

type Options struct {
	APIKey         string
	Version        string
	RequestTimeout time.Duration
	Rules          internal.RateRules
}

type Handler struct {
	log        *slog.Logger
	processing services.IMessageProcessingService
	storage    services.IMessageStorageService
	retrieval  services.IMessageRetrievalService
	limiter    ratelimit.ILimiter
	validate   *validator.Validate
	apiKey     []byte
	opts       Options
	self       *process.Process
}

func NewHandler(
	log *slog.Logger,
	opts Options,
	processing services.IMessageProcessingService,
	storage services.IMessageStorageService,
	retrieval services.IMessageRetrievalService,
	limiter ratelimit.ILimiter,
) *Handler {
	if limiter == nil {
		limiter = ratelimit.NoopLimiter{}
	}
	validate := validator.New()
	// Report JSON field names in validation details.
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		return name
	})
	self, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		log.Warn("Process stats unavailable", "error", err)
		self = nil
	}
	return &Handler{
		log:        log,
		processing: processing,
		storage:    storage,
		retrieval:  retrieval,
		limiter:    limiter,
		validate:   validate,
		apiKey:     []byte(opts.APIKey),
		opts:       opts,
		self:       self,
	}
}

// Routes builds the full handler chain.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	rules := h.opts.Rules

	mux.Handle("GET /{$}", h.route("health", rules.Health, false, h.health))
	submit := h.route("submit", rules.Submit, true, h.submit)
	mux.Handle("POST /api/messages/{$}", submit)
	mux.Handle("POST /api/messages", submit)
	mux.Handle("GET /api/messages/{session_id}", h.route("retrieve", rules.Retrieve, true, h.retrieve))

	var handler http.Handler = withJSONFallback(h.log, mux)
	if h.opts.RequestTimeout > 0 {
		handler = http.TimeoutHandler(handler, h.opts.RequestTimeout, timeoutBody)
	}
	return withRequestID(h.log, withCORS(handler))
}

func (h *Handler) route(name string, rule ratelimit.Rule, protected bool, fn http.HandlerFunc) http.Handler {
	var next http.Handler = fn
	if protected {
		next = h.authenticate(next)
	}
	return instrument(name, h.rateLimit(name, rule, next))
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{Title: apiTitle, Message: apiMessage, Version: h.opts.Version}
	if h.self != nil {
		if mem, err := h.self.MemoryInfo(); err == nil {
			resp.MemoryRSSBytes = mem.RSS
		}
	}
	writeJSON(w, h.log, http.StatusOK, resp)
}

func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := loggerFrom(ctx, h.log)

	var body SubmitMessageRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&body); err != nil {
		writeError(w, log, errors.Validation("request body is not a valid message document"))
		return
	}
	if err := h.validate.Struct(body); err != nil {
		writeError(w, log, validationError(err))
		return
	}

	processed, err := h.processing.Process(ctx, body.toMessage())
	if err != nil {
		writeError(w, log, err)
		return
	}
	record, err := h.storage.Save(ctx, processed)
	if err != nil {
		writeError(w, log, err)
		return
	}

	log.Info("Message accepted", "message_id", record.ID, "session_id", record.SessionID)
	writeJSON(w, log, http.StatusOK, toMessageResponse(record.ProcessedMessage))
}

func (h *Handler) retrieve(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := loggerFrom(ctx, h.log)
	params := r.URL.Query()

	query := domain.SessionQuery{SessionID: r.PathValue("session_id")}
	var err error
	if query.Limit, err = intParam(params.Get("limit"), services.DefaultLimit); err != nil {
		writeError(w, log, errors.Validation("limit must be an integer between 1 and 1000"))
		return
	}
	if query.Offset, err = intParam(params.Get("offset"), 0); err != nil {
		writeError(w, log, errors.Validation("offset must be a non-negative integer"))
		return
	}
	var senderName *string
	if s := params.Get("sender"); s != "" {
		sender := domain.Sender(s)
		if !sender.IsValid() {
			writeError(w, log, errors.InvalidSender(s))
			return
		}
		query.Sender = &sender
		senderName = lo.ToPtr(s)
	}

	messages, err := h.retrieval.FindBySession(ctx, query)
	if err != nil {
		writeError(w, log, err)
		return
	}
	if len(messages) == 0 {
		writeError(w, log, errors.NotFound(query.SessionID, senderName))
		return
	}

	writeJSON(w, log, http.StatusOK, MessageListResponse{
		Messages: lo.Map(messages, func(m domain.ProcessedMessage, _ int) MessageResponse {
			return toMessageResponse(m)
		}),
		Total: len(messages),
		Count: len(messages),
	})
}

func intParam(raw string, fallback int) (int, error) {
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}

func validationError(err error) *errors.Error {
	var fields validator.ValidationErrors
	if !stderrors.As(err, &fields) {
		return errors.Validation(err.Error())
	}
	names := lo.Map(fields, func(fe validator.FieldError, _ int) string { return fe.Field() })
	return errors.Validation("missing or invalid fields: " + strings.Join(names, ", "))
}
