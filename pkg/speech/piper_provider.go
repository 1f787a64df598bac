package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// PiperProvider implements Synthesizer against a local piper-http style TTS
// sidecar: POST a JSON body with the text, receive WAV bytes back.
type PiperProvider struct {
	BaseURL string
	client  *http.Client
}

func NewPiperProvider(baseURL string) *PiperProvider {
	if baseURL == "" {
		baseURL = "http://localhost:5002"
	}
	return &PiperProvider{
		BaseURL: baseURL,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

type piperRequest struct {
	Text string `json:"text"`
}

func (p *PiperProvider) Synthesize(ctx context.Context, text string) ([]byte, error) {
	jsonBody, err := json.Marshal(piperRequest{Text: text})
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/api/tts", p.BaseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	wavBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tts error: %s", string(wavBytes))
	}
	return wavBytes, nil
}
