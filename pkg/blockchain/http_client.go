// pkg/blockchain/http_client.go

package blockchain

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

type httpUploader struct {
	endpoint string
	httpc    *http.Client
}

// NewHTTP returns an Uploader that POSTs the agreement to the upload
// endpoint. The sign-agreement handler uses this to call the local
// /api/blockchain/upload-automatic route over loopback, preserving the
// upload service as a separately addressable component.
func NewHTTP(endpoint string) Uploader {
	return &httpUploader{
		endpoint: endpoint,
		httpc:    &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *httpUploader) Upload(ctx context.Context, data AgreementData) (UploadResult, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return UploadResult{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(b))
	if err != nil {
		return UploadResult{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return UploadResult{}, err
	}
	defer resp.Body.Close()

	var out UploadResult
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return UploadResult{}, fmt.Errorf("decode upload response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		if out.Error != "" {
			return out, fmt.Errorf("upload failed: %s", out.Error)
		}
		return out, fmt.Errorf("upload failed: status %d", resp.StatusCode)
	}
	return out, nil
}

func (c *httpUploader) Status() map[string]any {
	return map[string]any{"mode": "http", "endpoint": c.endpoint}
}
