// Endless - Continuous Playback Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/endless

package metrics

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordRecommendation(t *testing.T) {
	tests := []struct {
		name     string
		outcome  string
		pool     int
		eligible int
		returned int
	}{
		{name: "ok", outcome: OutcomeOK, pool: 20, eligible: 18, returned: 5},
		{name: "seed not found", outcome: OutcomeSeedNotFound},
		{name: "error", outcome: OutcomeError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := testutil.ToFloat64(RecommendRequests.WithLabelValues(tt.outcome))

			RecordRecommendation(tt.outcome, time.Millisecond, tt.pool, tt.eligible, tt.returned)

			after := testutil.ToFloat64(RecommendRequests.WithLabelValues(tt.outcome))
			if after-before != 1 {
				t.Errorf("requests{outcome=%q} delta = %v, want 1", tt.outcome, after-before)
			}
		})
	}
}

func TestRecordBackendCall(t *testing.T) {
	counter := BackendCallErrors.WithLabelValues("test", "find_nearest")
	before := testutil.ToFloat64(counter)

	RecordBackendCall("test", "find_nearest", time.Millisecond, nil)
	if got := testutil.ToFloat64(counter); got != before {
		t.Errorf("successful call should not count as error, delta = %v", got-before)
	}

	RecordBackendCall("test", "find_nearest", time.Millisecond, errors.New("boom"))
	if got := testutil.ToFloat64(counter); got-before != 1 {
		t.Errorf("error delta = %v, want 1", got-before)
	}
}

func TestRecordLookupCache(t *testing.T) {
	hits := testutil.ToFloat64(LookupCacheHits)
	misses := testutil.ToFloat64(LookupCacheMisses)

	RecordLookupCache(true)
	RecordLookupCache(false)
	RecordLookupCache(false)

	if got := testutil.ToFloat64(LookupCacheHits) - hits; got != 1 {
		t.Errorf("hits delta = %v, want 1", got)
	}
	if got := testutil.ToFloat64(LookupCacheMisses) - misses; got != 2 {
		t.Errorf("misses delta = %v, want 2", got)
	}
}

func TestWriteTextfile(t *testing.T) {
	RecordRecommendation(OutcomeOK, time.Millisecond, 4, 3, 1)

	path := filepath.Join(t.TempDir(), "endless.prom")
	if err := WriteTextfile(path); err != nil {
		t.Fatalf("WriteTextfile: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(data), "endless_recommend_requests_total") {
		t.Error("textfile should contain endless_recommend_requests_total")
	}
}

func TestWriteTextfile_BadPath(t *testing.T) {
	if err := WriteTextfile(filepath.Join(t.TempDir(), "missing", "dir", "x.prom")); err == nil {
		t.Error("expected error for unwritable path")
	}
}
