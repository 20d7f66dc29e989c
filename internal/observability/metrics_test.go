package observability

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

// TestRecordAction_CountsByResult verifies ok and error results are split.
func TestRecordAction_CountsByResult(t *testing.T) {
	okBefore := testutil.ToFloat64(inputActions.WithLabelValues("click", "ok"))
	errBefore := testutil.ToFloat64(inputActions.WithLabelValues("click", "error"))

	RecordAction("click", nil, time.Millisecond)
	RecordAction("click", errors.New("boom"), time.Millisecond)
	RecordAction("click", nil, time.Millisecond)

	if got := testutil.ToFloat64(inputActions.WithLabelValues("click", "ok")) - okBefore; got != 2 {
		t.Fatalf("expected 2 ok actions, got %v", got)
	}
	if got := testutil.ToFloat64(inputActions.WithLabelValues("click", "error")) - errBefore; got != 1 {
		t.Fatalf("expected 1 failed action, got %v", got)
	}
}

// TestConnectionGauge_TracksOpenClose verifies the gauge follows connection lifecycle.
func TestConnectionGauge_TracksOpenClose(t *testing.T) {
	before := testutil.ToFloat64(controlConnections)
	ConnectionOpened()
	ConnectionOpened()
	ConnectionClosed()
	if got := testutil.ToFloat64(controlConnections) - before; got != 1 {
		t.Fatalf("expected gauge delta 1, got %v", got)
	}
	ConnectionClosed()
}

// TestHandler_ExposesRegisteredMetrics verifies /metrics output includes the action counter.
func TestHandler_ExposesRegisteredMetrics(t *testing.T) {
	RegisterMetrics()
	RegisterMetrics()
	RecordAction("move", nil, time.Microsecond)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "deskmouse_input_actions_total") {
		t.Fatalf("expected action counter in output")
	}
}
