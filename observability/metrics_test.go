package observability

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMessagesTotal_Counts_By_Outcome(t *testing.T) {
	req := require.New(t)
	before := testutil.ToFloat64(MessagesTotal.WithLabelValues(OutcomeBanned))

	MessagesTotal.WithLabelValues(OutcomeBanned).Inc()

	req.Equal(before+1, testutil.ToFloat64(MessagesTotal.WithLabelValues(OutcomeBanned)))
}

func TestHandler_Exposes_Registered_Metrics(t *testing.T) {
	req := require.New(t)
	MessagesTotal.WithLabelValues(OutcomeStored).Inc()
	RateLimitedTotal.WithLabelValues("submit").Inc()

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	req.Equal(http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	req.NoError(err)
	req.Contains(string(body), "chat_screener_messages_total")
	req.Contains(string(body), "chat_screener_rate_limited_total")
}
