package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Thep1rince/oclaria-chatbot/internal/llm"
)

// Client talks to a running chatbot server over its public HTTP API. Used by
// the CLI chat command.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	if timeout < time.Second {
		timeout = 120 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type chatRequest struct {
	Messages []llm.Message `json:"messages"`
}

type chatResponse struct {
	Reply llm.Message `json:"reply"`
}

func (c *Client) Chat(ctx context.Context, history []llm.Message) (llm.Message, error) {
	requestBody, err := json.Marshal(chatRequest{Messages: history})
	if err != nil {
		return llm.Message{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat", bytes.NewReader(requestBody))
	if err != nil {
		return llm.Message{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	var response chatResponse
	if err := c.doJSON(req, &response); err != nil {
		return llm.Message{}, err
	}
	return response.Reply, nil
}

// Health checks the confirmation string on the base URL.
func (c *Client) Health(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return "", err
	}
	res, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("health check failed: %s", res.Status)
	}
	var body bytes.Buffer
	if _, err := body.ReadFrom(res.Body); err != nil {
		return "", err
	}
	return strings.TrimSpace(body.String()), nil
}

func (c *Client) doJSON(req *http.Request, out any) error {
	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode >= http.StatusBadRequest {
		var apiError struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(res.Body).Decode(&apiError)
		if strings.TrimSpace(apiError.Error) == "" {
			apiError.Error = res.Status
		}
		return fmt.Errorf("%s", apiError.Error)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(res.Body).Decode(out)
}
