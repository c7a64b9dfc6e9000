package infra

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog/log"
)

// SheetClient posts order payloads to the spreadsheet webhook (either the
// authenticated proxy or the legacy direct endpoint). It deliberately
// enforces no timeout of its own — delivery relies on the transport default.
type SheetClient struct {
	httpClient *http.Client
}

func NewSheetClient() *SheetClient {
	return &SheetClient{httpClient: &http.Client{}}
}

// Post sends the payload and returns the HTTP status code. apiKey, when
// non-empty, is attached as the x-api-key header (proxy mode only — the
// caller decides). The response body may embed a nested status under
// "gasBody"; it is logged for diagnostics, never parsed further.
func (c *SheetClient) Post(ctx context.Context, url string, payload []byte, apiKey string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return 0, fmt.Errorf("sheet: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if apiKey != "" {
		req.Header.Set("x-api-key", apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("sheet: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 16<<10))
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		var echo struct {
			GasBody json.RawMessage `json:"gasBody"`
		}
		if json.Unmarshal(body, &echo) == nil && len(echo.GasBody) > 0 {
			log.Debug().RawJSON("gas_body", echo.GasBody).Msg("sheet webhook response")
		}
	}
	return resp.StatusCode, nil
}

// FireAndForget sends the payload without observing the outcome: the
// response is drained and discarded, transport errors are logged only.
// Success cannot be verified through this path, so callers must never report
// a fire-and-forget send as delivered.
func (c *SheetClient) FireAndForget(ctx context.Context, url string, payload []byte) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		log.Error().Err(err).Msg("sheet: fallback request build failed")
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error().Err(err).Msg("sheet: fallback send failed")
		return
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	log.Warn().Str("url", url).Msg("sheet: fallback sent, delivery unverified")
}
