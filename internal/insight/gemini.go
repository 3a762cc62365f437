package insight

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/ratelimit"
)

const defaultGeminiEndpoint = "https://generativelanguage.googleapis.com/v1beta"

type (
	// ModelMetrics records metrics for generative model calls.
	ModelMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// GeminiClient invokes the Gemini generateContent endpoint with a text
// prompt and at most one inline image part. Outbound calls are paced by a
// process-wide rate limiter; there are no retries.
type GeminiClient struct {
	endpoint     string
	apiKey       string
	model        string
	httpClient   *http.Client
	limiter      ratelimit.Limiter
	modelMetrics ModelMetrics
}

// NewGeminiClient constructs a client for the given model name.
func NewGeminiClient(apiKey, modelName string, timeout time.Duration, rps int, modelMetrics ModelMetrics) *GeminiClient {
	return &GeminiClient{
		endpoint:     defaultGeminiEndpoint,
		apiKey:       apiKey,
		model:        modelName,
		httpClient:   &http.Client{Timeout: timeout},
		limiter:      ratelimit.New(rps),
		modelMetrics: modelMetrics,
	}
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inline_data,omitempty"`
}

type geminiInlineData struct {
	MIMEType string `json:"mime_type"`
	Data     string `json:"data"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// Invoke sends the prompt (and image, when present) to the model and
// returns its raw textual response.
func (c *GeminiClient) Invoke(ctx context.Context, prompt string, image *Image) (text string, err error) {
	started := time.Now()
	defer func() {
		c.modelMetrics.Observe("generate_content", err, started)
	}()

	parts := []geminiPart{{Text: prompt}}
	if image != nil {
		parts = append(parts, geminiPart{
			InlineData: &geminiInlineData{
				MIMEType: image.MIMEType,
				Data:     base64.StdEncoding.EncodeToString(image.Bytes),
			},
		})
	}

	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: parts}},
	})
	if err != nil {
		return "", fmt.Errorf("gemini: marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.endpoint, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("gemini: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	c.limiter.Take()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini: unexpected status %d", resp.StatusCode)
	}

	var geminiResp geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&geminiResp); err != nil {
		return "", fmt.Errorf("gemini: decode response: %w", err)
	}
	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini: empty candidates in response")
	}
	return geminiResp.Candidates[0].Content.Parts[0].Text, nil
}
