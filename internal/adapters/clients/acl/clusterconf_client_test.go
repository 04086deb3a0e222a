package acl

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jsamuelsen11/clusterconf/internal/domain"
	"github.com/jsamuelsen11/clusterconf/internal/platform/config"
	"github.com/jsamuelsen11/clusterconf/internal/platform/httpclient"
)

// newTestClient creates an httpclient.Client pointing at the given test server
// with circuit breaker and retry configured for fast test execution.
func newTestClient(t *testing.T, baseURL string) *httpclient.Client {
	t.Helper()

	cfg := &config.ClientConfig{
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     1,
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     10 * time.Millisecond,
			Multiplier:      1,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   5,
			Timeout:       30 * time.Second,
			HalfOpenLimit: 1,
		},
	}

	return httpclient.New(cfg, "cluster-conf-api-test", nil, slog.New(slog.DiscardHandler))
}

// writeJSON encodes v as JSON to the response writer, failing the test on error.
func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()

	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Errorf("failed to encode response: %v", err)
	}
}

func newClient(t *testing.T, h http.HandlerFunc) *ClusterConfClient {
	t.Helper()

	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return NewClusterConfClient(newTestClient(t, ts.URL), slog.New(slog.DiscardHandler))
}

func poolDeleteRecord(overridden bool) map[string]any {
	rec := map[string]any{
		"name": "mon_allow_pool_delete", "type": "bool", "level": "advanced",
		"desc": "allow pool deletions", "long_desc": "",
		"default": false, "daemon_default": "",
		"tags": []string{}, "services": []string{"mon"}, "see_also": []string{},
		"min": "", "max": "",
	}
	if overridden {
		rec["value"] = []map[string]any{{"section": "mon", "value": "true"}}
		rec["source"] = "mon"
	}
	return rec
}

// --- Query tests ---

func TestClusterConfClient_ListOptions(t *testing.T) {
	t.Parallel()

	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/cluster_conf" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		writeJSON(t, w, []map[string]any{poolDeleteRecord(true)})
	})

	opts, err := client.ListOptions(context.Background())
	if err != nil {
		t.Fatalf("ListOptions() error = %v", err)
	}
	if len(opts) != 1 {
		t.Fatalf("len(opts) = %d, want 1", len(opts))
	}
	if opts[0].Name != "mon_allow_pool_delete" || opts[0].Source != "mon" {
		t.Errorf("opts[0] = %+v", opts[0])
	}
	if opts[0].DaemonDefault != nil {
		t.Errorf("DaemonDefault = %v, want nil", opts[0].DaemonDefault)
	}
}

func TestClusterConfClient_GetOption(t *testing.T) {
	t.Parallel()

	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/cluster_conf/mon_allow_pool_delete" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		writeJSON(t, w, poolDeleteRecord(false))
	})

	opt, err := client.GetOption(context.Background(), "mon_allow_pool_delete")
	if err != nil {
		t.Fatalf("GetOption() error = %v", err)
	}
	if opt.HasOverrides() {
		t.Errorf("Values = %v, want none", opt.Values)
	}
	if opt.Default != false {
		t.Errorf("Default = %#v, want false", opt.Default)
	}
}

func TestClusterConfClient_GetOption_NotFound(t *testing.T) {
	t.Parallel()

	client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/problem+json")
		w.WriteHeader(http.StatusNotFound)
		writeJSON(t, w, map[string]any{"detail": `option "fantasy_name": not found`})
	})

	_, err := client.GetOption(context.Background(), "fantasy_name")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("GetOption() error = %v, want ErrNotFound", err)
	}
}

func TestClusterConfClient_FilterOptions(t *testing.T) {
	t.Parallel()

	var gotNames string
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/cluster_conf/filter" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		gotNames = r.URL.Query().Get("names")
		w.Header().Set("Content-Type", "application/json")
		writeJSON(t, w, []map[string]any{poolDeleteRecord(false)})
	})

	opts, err := client.FilterOptions(context.Background(), []string{"mon_allow_pool_delete", "fantasy_name"})
	if err != nil {
		t.Fatalf("FilterOptions() error = %v", err)
	}
	if gotNames != "mon_allow_pool_delete,fantasy_name" {
		t.Errorf("names = %q", gotNames)
	}
	if len(opts) != 1 {
		t.Errorf("len(opts) = %d, want 1", len(opts))
	}
}

// --- Admin tests ---

func TestClusterConfClient_SetOption(t *testing.T) {
	t.Parallel()

	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/api/admin/config/mon/mon_allow_pool_delete" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		if body["value"] != "yes" {
			t.Errorf("value = %q, want yes", body["value"])
		}
		w.Header().Set("Content-Type", "application/json")
		writeJSON(t, w, map[string]any{
			"section": "mon", "name": "mon_allow_pool_delete", "value": "true",
			"updated_at": "2026-02-03T04:05:06Z",
		})
	})

	got, err := client.SetOption(context.Background(), "mon", "mon_allow_pool_delete", "yes")
	if err != nil {
		t.Fatalf("SetOption() error = %v", err)
	}
	if got.Value != "true" {
		t.Errorf("Value = %q, want canonical true", got.Value)
	}
	if got.UpdatedAt.IsZero() {
		t.Error("UpdatedAt is zero")
	}
}

func TestClusterConfClient_SetOption_ValidationError(t *testing.T) {
	t.Parallel()

	client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/problem+json")
		w.WriteHeader(http.StatusBadRequest)
		writeJSON(t, w, map[string]any{
			"detail": "validation failed",
			"errors": []map[string]any{
				{"location": "body.value", "message": "must be a boolean"},
			},
		})
	})

	_, err := client.SetOption(context.Background(), "mon", "mon_allow_pool_delete", "maybe")
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("SetOption() error = %v, want ErrValidation", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error is not *ValidationError: %v", err)
	}
	if verr.Fields["value"] != "must be a boolean" {
		t.Errorf("Fields[value] = %q", verr.Fields["value"])
	}
}

func TestClusterConfClient_RemoveOption(t *testing.T) {
	t.Parallel()

	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/api/admin/config/osd.3/osd_max_backfills" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	})

	if err := client.RemoveOption(context.Background(), "osd.3", "osd_max_backfills"); err != nil {
		t.Errorf("RemoveOption() error = %v", err)
	}
}

func TestClusterConfClient_RemoveOption_NotFound(t *testing.T) {
	t.Parallel()

	client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	err := client.RemoveOption(context.Background(), "mon", "mon_allow_pool_delete")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("RemoveOption() error = %v, want ErrNotFound", err)
	}
}

func TestClusterConfClient_Dump(t *testing.T) {
	t.Parallel()

	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/admin/config" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		writeJSON(t, w, map[string]any{
			"overrides": []map[string]any{
				{"section": "mon", "name": "mon_allow_pool_delete", "value": "true"},
				{"section": "osd", "name": "osd_max_backfills", "value": "2"},
			},
			"count": 2,
		})
	})

	got, err := client.Dump(context.Background())
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}
	if len(got) != 2 || got[1].Section != "osd" {
		t.Errorf("Dump() = %+v", got)
	}
}

func TestClusterConfClient_ServerError(t *testing.T) {
	t.Parallel()

	client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.ListOptions(context.Background())
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Errorf("ListOptions() error = %v, want ErrUnavailable", err)
	}
}

func TestClusterConfClient_HealthCheck(t *testing.T) {
	t.Parallel()

	client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	if client.Name() != "cluster-conf-api" {
		t.Errorf("Name() = %q", client.Name())
	}
	if err := client.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() with closed breaker = %v, want nil", err)
	}
}
