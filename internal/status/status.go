// Package status fetches the CometBFT /status document exposed by a local node.
package status

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"
)

const maxBodySize = 1 << 20

var (
	ErrUnexpectedStatus  = errors.New("unexpected response status")
	ErrMalformedResponse = errors.New("malformed status response")
)

type Report struct {
	Moniker           string
	Network           string
	LatestBlockHeight int64
	LatestBlockTime   time.Time
	CatchingUp        bool
	Address           string
	VotingPower       int64
}

// HTTPClient allows replacing the transport in tests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Client struct {
	http HTTPClient
}

func NewClient(timeout time.Duration) *Client {
	return NewClientWithHTTP(&http.Client{Timeout: timeout})
}

func NewClientWithHTTP(httpClient HTTPClient) *Client {
	return &Client{http: httpClient}
}

func (c *Client) Status(ctx context.Context, endpoint string) (Report, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Report{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return Report{}, fmt.Errorf("get status: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return Report{}, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return Report{}, fmt.Errorf("read body: %w", err)
	}

	return Parse(body)
}

type (
	envelope struct {
		Result json.RawMessage `json:"result"`
	}

	document struct {
		NodeInfo *struct {
			Moniker *string `json:"moniker"`
			Network *string `json:"network"`
		} `json:"node_info"`
		SyncInfo *struct {
			LatestBlockHeight *string `json:"latest_block_height"`
			LatestBlockTime   *string `json:"latest_block_time"`
			CatchingUp        *bool   `json:"catching_up"`
		} `json:"sync_info"`
		ValidatorInfo *struct {
			Address     *string `json:"address"`
			VotingPower *string `json:"voting_power"`
		} `json:"validator_info"`
	}
)

// Parse accepts both the JSON-RPC envelope ({"result": {...}}) and the bare status object.
func Parse(body []byte) (Report, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return Report{}, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	if len(env.Result) > 0 && string(env.Result) != "null" {
		body = env.Result
	}

	var doc document
	if err := json.Unmarshal(body, &doc); err != nil {
		return Report{}, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	switch {
	case doc.NodeInfo == nil || doc.NodeInfo.Moniker == nil || doc.NodeInfo.Network == nil:
		return Report{}, fmt.Errorf("%w: node_info is incomplete", ErrMalformedResponse)
	case doc.SyncInfo == nil || doc.SyncInfo.LatestBlockHeight == nil ||
		doc.SyncInfo.LatestBlockTime == nil || doc.SyncInfo.CatchingUp == nil:
		return Report{}, fmt.Errorf("%w: sync_info is incomplete", ErrMalformedResponse)
	case doc.ValidatorInfo == nil || doc.ValidatorInfo.Address == nil || doc.ValidatorInfo.VotingPower == nil:
		return Report{}, fmt.Errorf("%w: validator_info is incomplete", ErrMalformedResponse)
	}

	height, err := strconv.ParseInt(*doc.SyncInfo.LatestBlockHeight, 10, 64)
	if err != nil {
		return Report{}, fmt.Errorf("%w: latest_block_height: %w", ErrMalformedResponse, err)
	}
	blockTime, err := time.Parse(time.RFC3339Nano, *doc.SyncInfo.LatestBlockTime)
	if err != nil {
		return Report{}, fmt.Errorf("%w: latest_block_time: %w", ErrMalformedResponse, err)
	}
	power, err := strconv.ParseInt(*doc.ValidatorInfo.VotingPower, 10, 64)
	if err != nil {
		return Report{}, fmt.Errorf("%w: voting_power: %w", ErrMalformedResponse, err)
	}

	return Report{
		Moniker:           *doc.NodeInfo.Moniker,
		Network:           *doc.NodeInfo.Network,
		LatestBlockHeight: height,
		LatestBlockTime:   blockTime,
		CatchingUp:        *doc.SyncInfo.CatchingUp,
		Address:           *doc.ValidatorInfo.Address,
		VotingPower:       power,
	}, nil
}
