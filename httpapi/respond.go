package httpapi

import (
	"encoding/json"
	stderrors "errors"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"chat-screener/errors"
)

const (
	statusError          = "error"
	codeInternal         = "INTERNAL_ERROR"
	codeRouteNotFound    = "ROUTE_NOT_FOUND"
	codeMethodNotAllowed = "METHOD_NOT_ALLOWED"
)

// statusOf maps a domain error code to its HTTP status.
func statusOf(code errors.Code) int {
	switch code {
	case errors.CodeValidation, errors.CodeInvalidSender:
		return http.StatusUnprocessableEntity
	case errors.CodeBannedContent:
		return http.StatusBadRequest
	case errors.CodeDuplicateMessage:
		return http.StatusConflict
	case errors.CodeNotFound:
		return http.StatusNotFound
	case errors.CodeUnauthorized:
		return http.StatusUnauthorized
	case errors.CodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, log *slog.Logger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Warn("Response encoding failed", "error", err)
	}
}

// writeError renders the error envelope. Causes never leave the process,
// only the code, message and detail of the domain error do.
func writeError(w http.ResponseWriter, log *slog.Logger, err error) {
	var domainErr *errors.Error
	if !stderrors.As(err, &domainErr) {
		log.Error("Unexpected error", "error", err)
		writeJSON(w, log, http.StatusInternalServerError, ErrorResponse{
			Status: statusError,
			Error:  ErrorBody{Code: codeInternal, Message: "internal server error", Details: []string{}},
		})
		return
	}

	status := statusOf(domainErr.Code)
	if status >= http.StatusInternalServerError {
		log.Error("Request failed", "code", domainErr.Code, "error", err)
	}
	if domainErr.Code == errors.CodeUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}

	var details any = []string{}
	if domainErr.Detail != "" {
		details = domainErr.Detail
	}
	writeJSON(w, log, status, ErrorResponse{
		Status: statusError,
		Error: ErrorBody{
			Code:    string(domainErr.Code),
			Message: domainErr.Message,
			Details: details,
		},
	})
}

func retryAfterSeconds(d time.Duration) string {
	return strconv.Itoa(int(math.Max(1, math.Ceil(d.Seconds()))))
}
