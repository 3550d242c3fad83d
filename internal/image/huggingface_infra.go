package image

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	json "github.com/goccy/go-json"
)

var ErrGenerationFailed = errors.New("image generation failed")

type HuggingFaceClient struct {
	token  string
	url    string
	client *http.Client
}

func NewHuggingFaceClient(token, url string, timeout time.Duration) *HuggingFaceClient {
	return &HuggingFaceClient{
		token:  token,
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

type inferenceRequest struct {
	Inputs string `json:"inputs"`
}

func (c *HuggingFaceClient) Generate(ctx context.Context, prompt string) ([]byte, string, error) {
	b, err := json.Marshal(inferenceRequest{Inputs: prompt})
	if err != nil {
		return nil, "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(b))
	if err != nil {
		return nil, "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "image/png")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("hf request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("hf read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("%w: status %d: %s", ErrGenerationFailed, resp.StatusCode, truncate(body, 200))
	}

	contentType := resp.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "application/json") {
		return nil, "", fmt.Errorf("%w: json instead of image: %s", ErrGenerationFailed, truncate(body, 200))
	}
	if len(body) == 0 {
		return nil, "", fmt.Errorf("%w: empty body", ErrGenerationFailed)
	}
	if contentType == "" {
		contentType = http.DetectContentType(body)
	}

	return body, contentType, nil
}

func truncate(b []byte, n int) string {
	if len(b) > n {
		return string(b[:n]) + "…"
	}
	return string(b)
}
