package predict

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

type httpClient struct {
	endpoint string
	key      string
	hc       *http.Client
}

// NewHTTP returns a client for the remote model service. The key is optional;
// when set it is sent as a bearer token.
func NewHTTP(endpoint, key string) Client {
	return &httpClient{
		endpoint: strings.TrimRight(endpoint, "/"),
		key:      key,
		hc:       &http.Client{Timeout: 25 * time.Second},
	}
}

func (c *httpClient) PredictRealtime(ctx context.Context, in Request) (*Response, error) {
	b, _ := json.Marshal(in)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/predict/realtime", bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.key != "" {
		req.Header.Set("Authorization", "Bearer "+c.key)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("predict: status %d", resp.StatusCode)
	}

	var out Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("predict: decode: %w", err)
	}
	return &out, nil
}
