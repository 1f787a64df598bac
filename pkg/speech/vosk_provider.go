package speech

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	vosk "github.com/alphacep/vosk-api/go"
)

// VoskProvider implements Transcriber on top of an in-process Vosk model.
// The model is loaded once at startup; a fresh recognizer is created per call
// because Vosk recognizers are stateful and not safe for concurrent use.
type VoskProvider struct {
	model *vosk.VoskModel
	mu    sync.Mutex
}

// chunkFrames is how many frames are fed to the recognizer per
// AcceptWaveform call.
const chunkFrames = 4000

// NewVoskProvider loads the Vosk model at modelDir. A missing or unreadable
// model directory is an error; cmd/server treats it as fatal.
func NewVoskProvider(modelDir string) (*VoskProvider, error) {
	info, err := os.Stat(modelDir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("modelo Vosk no encontrado en %s", modelDir)
	}
	vosk.SetLogLevel(-1)
	model, err := vosk.NewModel(modelDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load Vosk model: %w", err)
	}
	return &VoskProvider{model: model}, nil
}

type voskResult struct {
	Text string `json:"text"`
}

// Transcribe decodes wavBytes (mono PCM16 at 16 kHz) and runs it through the
// recognizer. Format mismatches surface as decode errors; the session
// reports them as an error reply and continues.
func (p *VoskProvider) Transcribe(ctx context.Context, wavBytes []byte) (string, error) {
	pcm, err := DecodePCM16(wavBytes)
	if err != nil {
		return "", err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	rec, err := vosk.NewRecognizer(p.model, SampleRate)
	if err != nil {
		return "", fmt.Errorf("failed to create recognizer: %w", err)
	}
	defer rec.Free()
	rec.SetWords(0)

	chunk := 2 * chunkFrames // bytes per chunk, 16-bit samples
	for off := 0; off < len(pcm); off += chunk {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		end := off + chunk
		if end > len(pcm) {
			end = len(pcm)
		}
		rec.AcceptWaveform(pcm[off:end])
	}

	var result voskResult
	if err := json.Unmarshal([]byte(rec.FinalResult()), &result); err != nil {
		return "", fmt.Errorf("failed to parse recognizer result: %w", err)
	}
	return strings.TrimSpace(result.Text), nil
}

// Close releases the underlying model.
func (p *VoskProvider) Close() {
	p.model.Free()
}
