// Package speech defines the transcription and synthesis collaborators of
// the dialogue server. Both are potentially blocking calls; every session
// runs them on its own connection goroutine so one slow call never stalls the
// transport loop of other connections.
package speech

import (
	"context"
	"errors"
)

// Transcriber converts a WAV-encoded mono PCM16 buffer into a text
// transcript.
type Transcriber interface {
	Transcribe(ctx context.Context, wavBytes []byte) (string, error)
}

// Synthesizer converts reply text into a WAV-encoded audio buffer.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

// Decode errors. These are non-fatal for the session: the caller reports
// them as an error reply and keeps the connection open.
var (
	ErrNotWav        = errors.New("el audio no es un WAV válido")
	ErrNotMono       = errors.New("se espera audio mono")
	ErrBadSampleRate = errors.New("se espera audio a 16000 Hz")
	ErrBadBitDepth   = errors.New("se espera PCM de 16 bits")
)

// IsDecodeError reports whether err is an audio format problem rather than an
// engine failure.
func IsDecodeError(err error) bool {
	return errors.Is(err, ErrNotWav) ||
		errors.Is(err, ErrNotMono) ||
		errors.Is(err, ErrBadSampleRate) ||
		errors.Is(err, ErrBadBitDepth)
}
