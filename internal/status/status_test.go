package status_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Roma7-7-7/node-notifier/internal/status"
)

func loadFixture(t *testing.T) []byte {
	t.Helper()
	data, err := os.ReadFile("testdata/status.json")
	require.NoError(t, err)
	return data
}

func wantReport() status.Report {
	return status.Report{
		Moniker:           "validator-one",
		Network:           "shielded-expedition.88f17d1d14",
		LatestBlockHeight: 184523,
		LatestBlockTime:   time.Date(2024, time.March, 1, 12, 34, 56, 789012345, time.UTC),
		CatchingUp:        false,
		Address:           "7B3A4C2F6E1D0A9B8C7D6E5F4A3B2C1D0E9F8A7B",
		VotingPower:       1500,
	}
}

func TestClient_Status(t *testing.T) {
	fixture := loadFixture(t)

	t.Run("ok", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/status", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write(fixture)
		}))
		defer srv.Close()

		got, err := status.NewClient(time.Second).Status(context.Background(), srv.URL+"/status")
		require.NoError(t, err)
		assert.Equal(t, wantReport().Moniker, got.Moniker)
		assert.True(t, wantReport().LatestBlockTime.Equal(got.LatestBlockTime))
		got.LatestBlockTime = wantReport().LatestBlockTime
		assert.Equal(t, wantReport(), got)
	})

	t.Run("non_2xx", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		_, err := status.NewClient(time.Second).Status(context.Background(), srv.URL)
		require.ErrorIs(t, err, status.ErrUnexpectedStatus)
		assert.ErrorContains(t, err, "503")
	})

	t.Run("unreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		_, err := status.NewClient(time.Second).Status(context.Background(), url)
		assert.ErrorContains(t, err, "get status: ")
	})

	t.Run("timeout", func(t *testing.T) {
		release := make(chan struct{})
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-release:
			case <-r.Context().Done():
			}
		}))
		defer srv.Close()
		defer close(release)

		_, err := status.NewClient(50*time.Millisecond).Status(context.Background(), srv.URL)
		assert.ErrorContains(t, err, "get status: ")
	})

	t.Run("invalid_endpoint", func(t *testing.T) {
		_, err := status.NewClient(time.Second).Status(context.Background(), "://bad")
		assert.ErrorContains(t, err, "create request: ")
	})
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		contains string
	}{
		{
			name:     "not_json",
			body:     `<html>`,
			contains: "malformed status response",
		},
		{
			name:     "missing_node_info",
			body:     `{"result": {"sync_info": {}, "validator_info": {}}}`,
			contains: "node_info is incomplete",
		},
		{
			name:     "missing_catching_up",
			body:     `{"node_info": {"moniker": "m", "network": "n"}, "sync_info": {"latest_block_height": "1", "latest_block_time": "2024-03-01T12:00:00Z"}, "validator_info": {"address": "a", "voting_power": "0"}}`,
			contains: "sync_info is incomplete",
		},
		{
			name:     "missing_voting_power",
			body:     `{"node_info": {"moniker": "m", "network": "n"}, "sync_info": {"latest_block_height": "1", "latest_block_time": "2024-03-01T12:00:00Z", "catching_up": true}, "validator_info": {"address": "a"}}`,
			contains: "validator_info is incomplete",
		},
		{
			name:     "bad_height",
			body:     `{"node_info": {"moniker": "m", "network": "n"}, "sync_info": {"latest_block_height": "x", "latest_block_time": "2024-03-01T12:00:00Z", "catching_up": true}, "validator_info": {"address": "a", "voting_power": "0"}}`,
			contains: "latest_block_height",
		},
		{
			name:     "bad_time",
			body:     `{"node_info": {"moniker": "m", "network": "n"}, "sync_info": {"latest_block_height": "1", "latest_block_time": "yesterday", "catching_up": true}, "validator_info": {"address": "a", "voting_power": "0"}}`,
			contains: "latest_block_time",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := status.Parse([]byte(tt.body))
			require.ErrorIs(t, err, status.ErrMalformedResponse)
			assert.ErrorContains(t, err, tt.contains)
		})
	}

	t.Run("bare_document", func(t *testing.T) {
		got, err := status.Parse([]byte(`{"node_info": {"moniker": "m", "network": "n"}, "sync_info": {"latest_block_height": "42", "latest_block_time": "2024-03-01T12:00:00Z", "catching_up": true}, "validator_info": {"address": "a", "voting_power": "7"}}`))
		require.NoError(t, err)
		assert.Equal(t, status.Report{
			Moniker:           "m",
			Network:           "n",
			LatestBlockHeight: 42,
			LatestBlockTime:   time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC),
			CatchingUp:        true,
			Address:           "a",
			VotingPower:       7,
		}, got)
	})
}
