package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api/write"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/scenariolp/core/factory"
	coremetrics "github.com/kilianp07/scenariolp/core/metrics"
	"github.com/kilianp07/scenariolp/core/model"
)

type influxStub struct {
	mu     sync.Mutex
	bodies []string
	health int
}

func (s *influxStub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == "/health" {
		if s.health != http.StatusOK {
			w.WriteHeader(s.health)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"name":"influxdb","message":"ready","status":"pass","checks":[]}`)
		return
	}
	data, _ := io.ReadAll(r.Body)
	s.mu.Lock()
	s.bodies = append(s.bodies, strings.TrimSpace(string(data)))
	s.mu.Unlock()
	w.WriteHeader(http.StatusNoContent)
}

func (s *influxStub) last() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.bodies) == 0 {
		return ""
	}
	return s.bodies[len(s.bodies)-1]
}

func TestInfluxSinkRecordBuild(t *testing.T) {
	stub := &influxStub{health: http.StatusOK}
	srv := httptest.NewServer(stub)
	defer srv.Close()

	sink := NewInfluxSink(InfluxConfig{URL: srv.URL, Token: "tok", Org: "org", Bucket: "bucket"})
	defer sink.Close()
	now := time.Now()
	ev := coremetrics.BuildEvent{ModelID: "m1", Phase: model.PhaseVariables, Count: 192, Duration: 1500 * time.Microsecond, Time: now}
	require.NoError(t, sink.RecordBuild(ev))

	p := write.NewPointWithMeasurement("model_build_phase").
		AddTag("model_id", "m1").
		AddTag("phase", "variables").
		AddField("count", 192).
		AddField("duration_ms", 1.5).
		SetTime(now)
	assert.Equal(t, strings.TrimSpace(write.PointToLineProtocol(p, time.Nanosecond)), stub.last())
}

func TestInfluxSinkRecordHandoff(t *testing.T) {
	stub := &influxStub{health: http.StatusOK}
	srv := httptest.NewServer(stub)
	defer srv.Close()

	sink := NewInfluxSink(InfluxConfig{URL: srv.URL + "/api/v2/write", Token: "tok", Org: "org", Bucket: "bucket"})
	defer sink.Close()
	now := time.Now()
	require.NoError(t, sink.RecordHandoff(coremetrics.HandoffEvent{ModelID: "m1", Problems: 96, Rows: 4, Columns: 8, Time: now}))

	p := write.NewPointWithMeasurement("model_handoff").
		AddTag("model_id", "m1").
		AddField("problems", 96).
		AddField("rows", 4).
		AddField("columns", 8).
		SetTime(now)
	assert.Equal(t, strings.TrimSpace(write.PointToLineProtocol(p, time.Nanosecond)), stub.last())
}

func TestNewInfluxSinkWithFallback(t *testing.T) {
	stub := &influxStub{health: http.StatusInternalServerError}
	srv := httptest.NewServer(stub)
	defer srv.Close()

	sink := NewInfluxSinkWithFallback(InfluxConfig{URL: srv.URL, Token: "tok", Org: "org", Bucket: "bucket"})
	if _, ok := sink.(coremetrics.NopSink); !ok {
		t.Fatalf("expected NopSink on failing health check, got %T", sink)
	}
}

func TestInfluxFactory(t *testing.T) {
	stub := &influxStub{health: http.StatusOK}
	srv := httptest.NewServer(stub)
	defer srv.Close()

	rec, err := coremetrics.NewRecorder([]factory.ModuleConfig{{
		Type: "influx",
		Conf: map[string]any{"url": srv.URL, "token": "tok", "org": "org", "bucket": "bucket"},
	}})
	require.NoError(t, err)
	sink, ok := rec.(*InfluxSink)
	require.True(t, ok, "got %T", rec)
	defer sink.Close()

	require.NoError(t, sink.RecordBuild(coremetrics.BuildEvent{ModelID: "m2", Phase: model.PhaseBuilt, Count: 96, Time: time.Now()}))
	assert.Contains(t, stub.last(), "model_build_phase,model_id=m2,phase=built count=96i")
}
