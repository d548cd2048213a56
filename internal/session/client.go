package session

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"os"
	"path/filepath"
	"strings"

	"github.com/samosastudio/samosa/internal/scene"
)

// Reply is the gateway's answer to a generate call
type Reply struct {
	Success  bool   `json:"success"`
	ImageURL string `json:"imageUrl"`
	Prompt   string `json:"prompt"`
	Error    string `json:"error"`
}

// Client submits settings to a generation gateway
type Client interface {
	Generate(ctx context.Context, settings scene.Settings) (*Reply, error)
}

// ErrGenerationFailed is reported for any non-2xx gateway reply
var ErrGenerationFailed = errors.New("Generation failed")

// HTTPClient talks to a gateway started with `samosa serve`
type HTTPClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewHTTPClient returns a client for the gateway at baseURL. The gateway's
// history cookie is kept for the lifetime of the client.
func NewHTTPClient(baseURL string, client *http.Client) *HTTPClient {
	c := &http.Client{}
	if client != nil {
		c = &http.Client{
			Transport:     client.Transport,
			CheckRedirect: client.CheckRedirect,
			Jar:           client.Jar,
			Timeout:       client.Timeout,
		}
	}
	if c.Jar == nil {
		// cookiejar.New only fails on a bad PublicSuffixList
		jar, err := cookiejar.New(nil)
		if err == nil {
			c.Jar = jar
		}
	}
	return &HTTPClient{
		BaseURL:    strings.TrimSuffix(baseURL, "/"),
		HTTPClient: c,
	}
}

func (c *HTTPClient) Generate(ctx context.Context, settings scene.Settings) (*Reply, error) {
	body, err := json.Marshal(map[string]any{"settings": settings})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/generate", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var reply Reply
		if err := json.NewDecoder(resp.Body).Decode(&reply); err == nil && reply.Error != "" {
			slog.Debug("Gateway rejected generation", "status", resp.StatusCode, "error", reply.Error)
		}
		return nil, ErrGenerationFailed
	}

	var reply Reply
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return nil, fmt.Errorf("failed to decode response body: %w", err)
	}
	return &reply, nil
}

// Download saves the image at imageURL into dir and returns the file path
func (c *HTTPClient) Download(ctx context.Context, imageURL, dir, name string) (string, error) {
	if strings.HasPrefix(imageURL, "data:") {
		return saveDataURL(imageURL, dir, name)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create new request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to download image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to download image: HTTP %d", resp.StatusCode)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(dir, name)
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create image file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, resp.Body); err != nil {
		return "", fmt.Errorf("failed to write image: %w", err)
	}
	return path, nil
}

func saveDataURL(dataURL, dir, name string) (string, error) {
	_, encoded, ok := strings.Cut(dataURL, ";base64,")
	if !ok {
		return "", fmt.Errorf("unsupported data URL")
	}
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("failed to decode data URL: %w", err)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write image: %w", err)
	}
	return path, nil
}
