// Package analyzer sends meal photos to the external recognition webhook.
package analyzer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	errorvalues "github.com/limbo/calai/internal/error_values"
)

const (
	DefaultTimeout = 30 * time.Second
	// Upper bound for the webhook response body.
	maxResponseSize = 1 << 20
)

// Analysis is the webhook answer. Optional nutrients default to zero when absent.
type Analysis struct {
	MealName        string   `json:"mealName"`
	Calories        float64  `json:"calories"`
	Protein         float64  `json:"protein"`
	Carbs           float64  `json:"carbs"`
	Fat             float64  `json:"fat"`
	Fiber           float64  `json:"fiber"`
	Sugar           float64  `json:"sugar"`
	Sodium          float64  `json:"sodium"`
	ConfidenceScore *float64 `json:"confidenceScore,omitempty"`
	HealthScore     *float64 `json:"healthScore,omitempty"`
}

type Client struct {
	url        string
	httpClient *http.Client
}

func New(webhookURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		url: webhookURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *Client) Analyze(ctx context.Context, filename string, image io.Reader) (*Analysis, error) {
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	part, err := mw.CreateFormFile("image", filename)
	if err != nil {
		return nil, errors.New("creating multipart form error: " + err.Error())
	}
	if _, err = io.Copy(part, image); err != nil {
		return nil, errors.New("reading image error: " + err.Error())
	}
	if err = mw.Close(); err != nil {
		return nil, errors.New("closing multipart form error: " + err.Error())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, body)
	if err != nil {
		return nil, errors.New("creating analyzer request error: " + err.Error())
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, errorvalues.ErrAnalyzerTimeout
		}
		return nil, fmt.Errorf("%w: %s", errorvalues.ErrAnalyzerStatus, err.Error())
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		if isTimeout(err) {
			return nil, errorvalues.ErrAnalyzerTimeout
		}
		return nil, fmt.Errorf("%w: reading response: %s", errorvalues.ErrAnalyzerStatus, err.Error())
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d", errorvalues.ErrAnalyzerStatus, resp.StatusCode)
	}

	var a Analysis
	if err = sonic.Unmarshal(raw, &a); err != nil {
		return nil, fmt.Errorf("%w: %s", errorvalues.ErrAnalyzerPayload, err.Error())
	}
	if a.MealName == "" {
		return nil, fmt.Errorf("%w: missing mealName", errorvalues.ErrAnalyzerPayload)
	}
	return &a, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}
