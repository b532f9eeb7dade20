package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func findFamily(t *testing.T, reg *prometheus.Registry, name string) *dto.MetricFamily {
	t.Helper()

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("failed to gather metrics: %v", err)
	}
	for _, mf := range families {
		if mf.GetName() == name {
			return mf
		}
	}
	return nil
}

func TestNewCollector_ReturnsNonNil(t *testing.T) {
	c := NewCollector(prometheus.NewRegistry())

	if c == nil {
		t.Fatal("expected non-nil Collector")
	}
}

func TestNewCollector_DoubleRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewCollector(reg)

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	NewCollector(reg)
}

func TestRecordRequest_CountsByLabels(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordRequest(http.MethodGet, "/employees", http.StatusOK, 10*time.Millisecond)
	c.RecordRequest(http.MethodGet, "/employees", http.StatusOK, 20*time.Millisecond)
	c.RecordRequest(http.MethodPost, "/employees", http.StatusCreated, 5*time.Millisecond)

	mf := findFamily(t, reg, "employees_http_requests_total")
	if mf == nil {
		t.Fatal("employees_http_requests_total metric not found")
	}
	if len(mf.GetMetric()) != 2 {
		t.Fatalf("expected 2 label sets, got %d", len(mf.GetMetric()))
	}

	var total float64
	for _, m := range mf.GetMetric() {
		total += m.GetCounter().GetValue()
	}
	if total != 3 {
		t.Errorf("requests total = %v, want 3", total)
	}

	latency := findFamily(t, reg, "employees_http_request_duration_seconds")
	if latency == nil {
		t.Fatal("employees_http_request_duration_seconds metric not found")
	}
	var samples uint64
	for _, m := range latency.GetMetric() {
		samples += m.GetHistogram().GetSampleCount()
	}
	if samples != 3 {
		t.Errorf("latency samples = %d, want 3", samples)
	}
}

func TestRecordEmployeeCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordEmployeeCreated()
	c.RecordEmployeeCreated()
	c.RecordEmployeeDeleted()

	created := findFamily(t, reg, "employees_created_total")
	if created == nil {
		t.Fatal("employees_created_total metric not found")
	}
	if v := created.GetMetric()[0].GetCounter().GetValue(); v != 2 {
		t.Errorf("employees_created_total = %v, want 2", v)
	}

	deleted := findFamily(t, reg, "employees_deleted_total")
	if deleted == nil {
		t.Fatal("employees_deleted_total metric not found")
	}
	if v := deleted.GetMetric()[0].GetCounter().GetValue(); v != 1 {
		t.Errorf("employees_deleted_total = %v, want 1", v)
	}
}

func TestHandler_ExposesMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)
	c.RecordEmployeeCreated()

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body, _ := io.ReadAll(rec.Body)
	if !strings.Contains(string(body), "employees_created_total 1") {
		t.Errorf("body does not contain employees_created_total: %s", body)
	}
}

func TestNop_DoesNotPanic(t *testing.T) {
	c := Nop()

	c.RecordRequest(http.MethodGet, "/", http.StatusOK, time.Second)
	c.RecordEmployeeCreated()
	c.RecordEmployeeDeleted()
}
