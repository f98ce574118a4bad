package net

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// client is shared by fetch and publish. Drawings are small, so one
// conservative timeout covers both directions.
var client = &http.Client{Timeout: 10 * time.Second}

// FetchSVG downloads a drawing with a plain GET. Any non-2xx answer is
// an error; the body comes back as one materialized blob so the caller
// can hand it to the UI thread without holding a connection open.
func FetchSVG(url string) ([]byte, error) {
	resp, err := client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetch %s: unexpected status %s", url, resp.Status)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: read body: %w", url, err)
	}
	log.Printf("[NET] fetched %d bytes from %s", len(data), url)
	return data, nil
}

type publishRequest struct {
	SVG       string `json:"svg"`
	Timestamp int64  `json:"timestamp"`
}

// Publish posts the rendered drawing to the share endpoint and returns
// whatever JSON the service answers with, decoded but otherwise
// uninterpreted. An empty reply body is fine and yields nil.
func Publish(endpoint, svgText string) (any, error) {
	body, err := json.Marshal(publishRequest{
		SVG:       svgText,
		Timestamp: time.Now().UnixMilli(),
	})
	if err != nil {
		return nil, fmt.Errorf("publish: encode request: %w", err)
	}
	resp, err := client.Post(endpoint, "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("publish to %s: %w", endpoint, err)
	}
	defer resp.Body.Close()
	reply, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("publish to %s: read reply: %w", endpoint, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("publish to %s: unexpected status %s", endpoint, resp.Status)
	}
	log.Printf("[NET] published %d bytes to %s", len(svgText), endpoint)
	if len(bytes.TrimSpace(reply)) == 0 {
		return nil, nil
	}
	var decoded any
	if err := json.Unmarshal(reply, &decoded); err != nil {
		return nil, fmt.Errorf("publish to %s: decode reply: %w", endpoint, err)
	}
	return decoded, nil
}
