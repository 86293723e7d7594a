package calls

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

type blandCallRequest struct {
	PhoneNumber string `json:"phone_number"`
	Task        string `json:"task"`
	Voice       string `json:"voice"`
}

type blandCallResponse struct {
	Status  string `json:"status"`
	CallID  string `json:"call_id"`
	Message string `json:"message"`
}

// BlandProvider sends the script to Bland AI as the call task.
type BlandProvider struct {
	apiKey     string
	url        string
	httpClient *http.Client
}

func NewBlandProvider(apiKey, url string, httpClient *http.Client) *BlandProvider {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &BlandProvider{apiKey: apiKey, url: url, httpClient: httpClient}
}

func (p *BlandProvider) Name() string { return "bland" }

func (p *BlandProvider) PlaceCall(ctx context.Context, call CallRequest) (string, error) {
	jsonData, err := json.Marshal(blandCallRequest{
		PhoneNumber: call.PhoneNumber,
		Task:        call.Prompt,
		Voice:       VoiceFor(call.Gender),
	})
	if err != nil {
		return "", fmt.Errorf("error marshaling bland payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("error creating bland request: %w", err)
	}
	req.Header.Set("authorization", "Bearer "+p.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("error sending bland request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("error reading bland response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("bland call failed with status %d: %s", resp.StatusCode, string(body))
	}

	var result blandCallResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("error decoding bland response: %w", err)
	}
	if result.Status == "error" {
		return "", fmt.Errorf("bland rejected call: %s", result.Message)
	}

	return result.CallID, nil
}
