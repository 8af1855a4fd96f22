package cli

import (
	"bytes"
	"context"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/meta-ads-cli/internal/graphtest"
)

func init() {
	color.NoColor = true
}

type result struct {
	code   int
	stdout string
	stderr string
	body   map[string]any
}

// newEnv aponta a CLI para o servidor falso e para um arquivo de configuração temporário
func newEnv(t *testing.T) (*graphtest.Server, string) {
	t.Helper()

	server := graphtest.New(t)
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	t.Setenv("META_ADS_CONFIG", configPath)
	t.Setenv("META_ADS_BASE_URL", server.URL)
	t.Setenv("META_ADS_API_VERSION", graphtest.Version)
	t.Setenv("META_ADS_ACCESS_TOKEN", graphtest.AccessToken)
	t.Setenv("META_ADS_ACCOUNT_ID", graphtest.AccountID)
	t.Setenv("META_ADS_OUTPUT_FORMAT", "")
	t.Setenv("META_ADS_VERBOSE", "")

	return server, configPath
}

func run(t *testing.T, args ...string) result {
	t.Helper()

	var stdout, stderr bytes.Buffer
	code := Execute(context.Background(), args, &stdout, &stderr)

	res := result{code: code, stdout: stdout.String(), stderr: stderr.String()}
	if len(bytes.TrimSpace(stdout.Bytes())) > 0 && stdout.Bytes()[0] == '{' {
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &res.body), stdout.String())
	}
	return res
}

func data(t *testing.T, res result) map[string]any {
	t.Helper()
	object, ok := res.body["data"].(map[string]any)
	require.True(t, ok, "data is not an object: %s", res.stdout)
	return object
}

func errorBody(t *testing.T, res result) map[string]any {
	t.Helper()
	object, ok := res.body["error"].(map[string]any)
	require.True(t, ok, "error is not an object: %s", res.stdout)
	return object
}

func TestCampaignsList(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		setup    func(s *graphtest.Server)
		validate func(t *testing.T, s *graphtest.Server, res result)
	}{
		{
			name: "first page exposes the next cursor",
			args: []string{"campaigns", "list", "--limit", "1"},
			setup: func(s *graphtest.Server) {
				s.Pages("act_1/campaigns",
					[]any{map[string]any{"id": "1", "name": "Sales", "status": "ACTIVE"}},
					[]any{map[string]any{"id": "2", "name": "Leads", "status": "PAUSED"}},
				)
			},
			validate: func(t *testing.T, s *graphtest.Server, res result) {
				assert.Equal(t, 0, res.code)
				assert.Equal(t, true, res.body["success"])

				items := res.body["data"].([]any)
				require.Len(t, items, 1)
				assert.Equal(t, "Sales", items[0].(map[string]any)["name"])

				meta := res.body["meta"].(map[string]any)
				assert.Equal(t, graphtest.AccountID, meta["account_id"])
				assert.NotEmpty(t, meta["request_id"])
				assert.NotEmpty(t, meta["timestamp"])

				pagination := meta["pagination"].(map[string]any)
				assert.Equal(t, true, pagination["has_next"])
				assert.Equal(t, "cursor-1", pagination["cursor"])

				requests := s.RequestsTo(http.MethodGet, "act_1/campaigns")
				require.Len(t, requests, 1)
				assert.Equal(t, "1", requests[0].Query.Get("limit"))
			},
		},
		{
			name: "all walks every page",
			args: []string{"campaigns", "list", "--all"},
			setup: func(s *graphtest.Server) {
				s.Pages("act_1/campaigns",
					[]any{map[string]any{"id": "1", "name": "Sales"}},
					[]any{map[string]any{"id": "2", "name": "Leads"}},
				)
			},
			validate: func(t *testing.T, s *graphtest.Server, res result) {
				assert.Equal(t, 0, res.code)
				assert.Len(t, res.body["data"].([]any), 2)
				assert.Nil(t, res.body["meta"].(map[string]any)["pagination"])
				assert.Len(t, s.RequestsTo(http.MethodGet, "act_1/campaigns"), 2)
			},
		},
		{
			name: "status filter becomes filtering",
			args: []string{"campaigns", "list", "--status", "active"},
			setup: func(s *graphtest.Server) {
				s.Pages("act_1/campaigns", []any{})
			},
			validate: func(t *testing.T, s *graphtest.Server, res result) {
				assert.Equal(t, 0, res.code)
				assert.Empty(t, res.body["data"])

				requests := s.RequestsTo(http.MethodGet, "act_1/campaigns")
				require.Len(t, requests, 1)
				assert.Contains(t, requests[0].Query.Get("filtering"), `"ACTIVE"`)
			},
		},
		{
			name:  "after and all are exclusive",
			args:  []string{"campaigns", "list", "--all", "--after", "cursor-1"},
			setup: func(s *graphtest.Server) {},
			validate: func(t *testing.T, s *graphtest.Server, res result) {
				assert.Equal(t, 1, res.code)
				assert.Equal(t, "INVALID_PARAMETER", errorBody(t, res)["code"])
				assert.Empty(t, s.Requests())
			},
		},
		{
			name:  "unknown field is rejected before any call",
			args:  []string{"campaigns", "list", "--fields", "id,bogus"},
			setup: func(s *graphtest.Server) {},
			validate: func(t *testing.T, s *graphtest.Server, res result) {
				assert.Equal(t, 1, res.code)
				assert.Equal(t, "INVALID_PARAMETER", errorBody(t, res)["code"])
				assert.Empty(t, s.Requests())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, _ := newEnv(t)
			tt.setup(server)

			tt.validate(t, server, run(t, tt.args...))
		})
	}
}

func TestErrorEnvelope(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		setup    func(t *testing.T, s *graphtest.Server)
		validate func(t *testing.T, res result)
	}{
		{
			name: "missing token",
			args: []string{"campaigns", "list"},
			setup: func(t *testing.T, s *graphtest.Server) {
				t.Setenv("META_ADS_ACCESS_TOKEN", "")
			},
			validate: func(t *testing.T, res result) {
				assert.Equal(t, 1, res.code)
				assert.Equal(t, false, res.body["success"])

				body := errorBody(t, res)
				assert.Equal(t, "AUTH_NOT_CONFIGURED", body["code"])
				assert.Equal(t, false, body["retryable"])
				assert.Contains(t, body["details"].(map[string]any)["suggestion"], "auth login")
			},
		},
		{
			name:  "missing positional argument",
			args:  []string{"campaigns", "get"},
			setup: func(t *testing.T, s *graphtest.Server) {},
			validate: func(t *testing.T, res result) {
				assert.Equal(t, 1, res.code)
				body := errorBody(t, res)
				assert.Equal(t, "MISSING_REQUIRED_FIELD", body["code"])
				assert.Equal(t, "campaign-id", body["details"].(map[string]any)["field"])
			},
		},
		{
			name:  "unknown subcommand",
			args:  []string{"campaigns", "explode"},
			setup: func(t *testing.T, s *graphtest.Server) {},
			validate: func(t *testing.T, res result) {
				assert.Equal(t, 1, res.code)
				assert.Equal(t, "INVALID_PARAMETER", errorBody(t, res)["code"])
			},
		},
		{
			name:  "unknown flag",
			args:  []string{"campaigns", "list", "--bogus"},
			setup: func(t *testing.T, s *graphtest.Server) {},
			validate: func(t *testing.T, res result) {
				assert.Equal(t, 1, res.code)
				assert.Equal(t, "INVALID_PARAMETER", errorBody(t, res)["code"])
			},
		},
		{
			name: "rate limit is retryable with retry_after",
			args: []string{"campaigns", "list"},
			setup: func(t *testing.T, s *graphtest.Server) {
				s.Handle(http.MethodGet, "act_1/campaigns", func(w http.ResponseWriter, r *http.Request) {
					graphtest.WriteError(w, http.StatusBadRequest, 17, 0, "User request limit reached")
				})
			},
			validate: func(t *testing.T, res result) {
				assert.Equal(t, 1, res.code)
				body := errorBody(t, res)
				assert.Equal(t, "RATE_LIMIT_EXCEEDED", body["code"])
				assert.Equal(t, true, body["retryable"])
				assert.EqualValues(t, 60, body["retry_after"])
			},
		},
		{
			name: "table mode writes the error to stderr",
			args: []string{"campaigns", "list", "-o", "table"},
			setup: func(t *testing.T, s *graphtest.Server) {
				t.Setenv("META_ADS_ACCESS_TOKEN", "")
			},
			validate: func(t *testing.T, res result) {
				assert.Equal(t, 1, res.code)
				assert.Empty(t, res.stdout)
				assert.Contains(t, res.stderr, "AUTH_NOT_CONFIGURED")
				assert.Contains(t, res.stderr, "No access token configured.")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, _ := newEnv(t)
			tt.setup(t, server)

			tt.validate(t, run(t, tt.args...))
		})
	}
}

func TestStatusCommands(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		current  string
		validate func(t *testing.T, s *graphtest.Server, res result)
	}{
		{
			name:    "activate is a no-op when already active",
			args:    []string{"campaigns", "activate", "123"},
			current: "ACTIVE",
			validate: func(t *testing.T, s *graphtest.Server, res result) {
				assert.Equal(t, 0, res.code)
				d := data(t, res)
				assert.Equal(t, false, d["changed"])
				assert.Equal(t, "already_active", d["reason"])
				assert.Empty(t, s.RequestsTo(http.MethodPost, "123"))
			},
		},
		{
			name:    "pause posts the new status",
			args:    []string{"campaigns", "pause", "123"},
			current: "ACTIVE",
			validate: func(t *testing.T, s *graphtest.Server, res result) {
				assert.Equal(t, 0, res.code)
				d := data(t, res)
				assert.Equal(t, true, d["changed"])
				assert.Equal(t, "status_changed", d["reason"])

				posts := s.RequestsTo(http.MethodPost, "123")
				require.Len(t, posts, 1)
				assert.Equal(t, "PAUSED", posts[0].Form.Get("status"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, _ := newEnv(t)
			server.JSON(http.MethodGet, "123", http.StatusOK, map[string]any{"id": "123", "name": "Sales", "status": tt.current})
			server.JSON(http.MethodPost, "123", http.StatusOK, map[string]any{"success": true})

			tt.validate(t, server, run(t, tt.args...))
		})
	}
}

func TestBulkPause(t *testing.T) {
	server, _ := newEnv(t)
	server.JSON(http.MethodGet, "1", http.StatusOK, map[string]any{"id": "1", "status": "ACTIVE"})
	server.JSON(http.MethodPost, "1", http.StatusOK, map[string]any{"success": true})
	server.JSON(http.MethodGet, "2", http.StatusOK, map[string]any{"id": "2", "status": "PAUSED"})

	res := run(t, "bulk", "pause", "--type", "campaign", "--ids", "1, 2,3")

	assert.Equal(t, 0, res.code)
	d := data(t, res)
	assert.EqualValues(t, 3, d["total"])
	assert.EqualValues(t, 2, d["succeeded"])
	assert.EqualValues(t, 1, d["failed"])
	assert.EqualValues(t, 1, d["changed"])

	items := d["results"].([]any)
	require.Len(t, items, 3)
	assert.Equal(t, "3", items[2].(map[string]any)["id"])
	assert.Equal(t, false, items[2].(map[string]any)["success"])
	assert.NotEmpty(t, items[2].(map[string]any)["error"])
}

func TestBulkExport(t *testing.T) {
	server, _ := newEnv(t)
	server.Pages("act_1/campaigns",
		[]any{map[string]any{"id": "1", "name": "Sales", "status": "ACTIVE"}},
		[]any{map[string]any{"id": "2", "name": "Leads", "status": "ACTIVE"}},
	)
	file := filepath.Join(t.TempDir(), "campaigns.json")

	res := run(t, "bulk", "export", "--type", "campaigns", "--file", file)

	assert.Equal(t, 0, res.code)
	d := data(t, res)
	assert.EqualValues(t, 2, d["count"])
	assert.Equal(t, "json", d["format"])

	raw, err := os.ReadFile(file)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.EqualValues(t, 2, doc["count"])
	assert.Len(t, doc["data"], 2)
	assert.NotEmpty(t, doc["exported_at"])
}

func TestConfigCommands(t *testing.T) {
	_, configPath := newEnv(t)
	require.NoError(t, os.WriteFile(configPath, []byte("access_token: EAABsecret1234567890\n"), 0o600))

	res := run(t, "config", "set", "output_format", "table")
	require.Equal(t, 0, res.code, res.stderr)

	// output_format=table passa a valer; -o json força o envelope
	res = run(t, "config", "list", "-o", "json")
	require.Equal(t, 0, res.code, res.stderr)

	saved := data(t, res)["config"].(map[string]any)
	assert.Equal(t, "table", saved["output_format"])
	assert.Equal(t, "EAABse...7890", saved["access_token"])
	assert.Equal(t, configPath, data(t, res)["path"])

	res = run(t, "config", "set", "access_token", "x", "-o", "json")
	assert.Equal(t, 1, res.code)
	assert.Equal(t, "INVALID_PARAMETER", errorBody(t, res)["code"])

	res = run(t, "config", "set", "account_id", "42", "-o", "json")
	require.Equal(t, 0, res.code)
	assert.Equal(t, "act_42", data(t, res)["value"])
}

func TestInsightsGet(t *testing.T) {
	records := []any{
		map[string]any{
			"campaign_id": "c1", "campaign_name": "Sales", "spend": "10.00", "impressions": "1000", "clicks": "10",
			"actions": []any{map[string]any{"action_type": "lead", "value": "2"}},
		},
		map[string]any{
			"campaign_id": "c2", "campaign_name": "Leads", "spend": "20.00", "impressions": "1000", "clicks": "30",
			"actions": []any{map[string]any{"action_type": "lead", "value": "1"}},
		},
	}

	tests := []struct {
		name     string
		args     []string
		validate func(t *testing.T, s *graphtest.Server, res result)
	}{
		{
			name: "summary",
			args: []string{"insights", "get", "--level", "campaign", "--date-preset", "last_7d", "--summary"},
			validate: func(t *testing.T, s *graphtest.Server, res result) {
				require.Equal(t, 0, res.code, res.stdout)
				d := data(t, res)
				assert.EqualValues(t, 30, d["total_spend"])
				assert.EqualValues(t, 3, d["total_results"])
				assert.EqualValues(t, 10, d["avg_cost_per_result"])
				assert.Equal(t, "c1", d["lowest_cpr"].(map[string]any)["id"])
				assert.Equal(t, "c2", d["highest_cpr"].(map[string]any)["id"])

				requests := s.RequestsTo(http.MethodGet, "act_1/insights")
				require.Len(t, requests, 1)
				assert.Equal(t, "campaign", requests[0].Query.Get("level"))
				assert.Equal(t, "last_7d", requests[0].Query.Get("date_preset"))
			},
		},
		{
			name: "sort and top",
			args: []string{"insights", "get", "--level", "campaign", "--sort-by", "spend", "--top", "1"},
			validate: func(t *testing.T, s *graphtest.Server, res result) {
				require.Equal(t, 0, res.code, res.stdout)
				items := res.body["data"].([]any)
				require.Len(t, items, 1)
				assert.Equal(t, "c2", items[0].(map[string]any)["campaign_id"])
			},
		},
		{
			name: "min spend filter",
			args: []string{"insights", "get", "--level", "campaign", "--min-spend", "15", "--compact"},
			validate: func(t *testing.T, s *graphtest.Server, res result) {
				require.Equal(t, 0, res.code, res.stdout)
				assert.Len(t, res.body["data"].([]any), 1)
			},
		},
		{
			name: "level is required",
			args: []string{"insights", "get"},
			validate: func(t *testing.T, s *graphtest.Server, res result) {
				assert.Equal(t, 1, res.code)
				assert.Equal(t, "MISSING_REQUIRED_FIELD", errorBody(t, res)["code"])
				assert.Empty(t, s.Requests())
			},
		},
		{
			name: "invalid date preset",
			args: []string{"insights", "get", "--level", "ad", "--date-preset", "last_2d"},
			validate: func(t *testing.T, s *graphtest.Server, res result) {
				assert.Equal(t, 1, res.code)
				assert.Equal(t, "INVALID_PARAMETER", errorBody(t, res)["code"])
				assert.Empty(t, s.Requests())
			},
		},
		{
			name: "since without until",
			args: []string{"insights", "get", "--level", "ad", "--since", "2024-01-01"},
			validate: func(t *testing.T, s *graphtest.Server, res result) {
				assert.Equal(t, 1, res.code)
				assert.Equal(t, "MISSING_REQUIRED_FIELD", errorBody(t, res)["code"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, _ := newEnv(t)
			server.Pages("act_1/insights", records)

			tt.validate(t, server, run(t, tt.args...))
		})
	}
}

func TestOutputFieldsProjection(t *testing.T) {
	server, _ := newEnv(t)
	server.Pages("act_1/campaigns", []any{
		map[string]any{"id": "1", "name": "Sales", "status": "ACTIVE", "objective": "OUTCOME_SALES"},
	})

	res := run(t, "campaigns", "list", "--output-fields", "id,name")

	require.Equal(t, 0, res.code)
	items := res.body["data"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, map[string]any{"id": "1", "name": "Sales"}, items[0])
}

func TestTableOutput(t *testing.T) {
	server, _ := newEnv(t)
	server.Pages("act_1/campaigns", []any{
		map[string]any{"id": "1", "name": "Sales", "status": "ACTIVE"},
	})

	res := run(t, "campaigns", "list", "-o", "table")

	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "Sales")
	assert.Contains(t, res.stdout, "Name")
	assert.NotContains(t, res.stdout, `"success"`)
}

func TestSchema(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		validate func(t *testing.T, res result)
	}{
		{
			name: "compact breakdowns",
			args: []string{"schema", "breakdowns", "--format", "compact"},
			validate: func(t *testing.T, res result) {
				require.Equal(t, 0, res.code)
				d := data(t, res)
				assert.Contains(t, d["breakdowns"], "age")
				assert.NotContains(t, d, "fields")
			},
		},
		{
			name: "dashes are accepted",
			args: []string{"schema", "date-presets"},
			validate: func(t *testing.T, res result) {
				require.Equal(t, 0, res.code)
				assert.Contains(t, data(t, res), "date_presets")
			},
		},
		{
			name: "all topics without a token",
			args: []string{"schema"},
			validate: func(t *testing.T, res result) {
				require.Equal(t, 0, res.code)
				d := data(t, res)
				for _, topic := range []string{"fields", "video_fields", "breakdowns", "date_presets", "actions", "objectives"} {
					assert.Contains(t, d, topic)
				}
			},
		},
		{
			name: "unknown topic",
			args: []string{"schema", "bogus"},
			validate: func(t *testing.T, res result) {
				assert.Equal(t, 1, res.code)
				assert.Equal(t, "INVALID_PARAMETER", errorBody(t, res)["code"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			newEnv(t)
			t.Setenv("META_ADS_ACCESS_TOKEN", "")

			tt.validate(t, run(t, tt.args...))
		})
	}
}

func TestAccountsSwitch(t *testing.T) {
	server, _ := newEnv(t)
	server.JSON(http.MethodGet, "act_99", http.StatusOK, map[string]any{"id": "act_99", "name": "Store", "currency": "BRL"})

	res := run(t, "accounts", "switch", "99")
	require.Equal(t, 0, res.code, res.stdout)
	assert.Equal(t, "act_99", data(t, res)["account_id"])

	t.Setenv("META_ADS_ACCOUNT_ID", "")
	res = run(t, "config", "get", "account_id")
	require.Equal(t, 0, res.code)
	assert.Equal(t, "act_99", data(t, res)["value"])
}
