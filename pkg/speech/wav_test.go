package speech

import (
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// encodeWav writes a PCM WAV file with the given format and returns its bytes.
func encodeWav(t *testing.T, channels, sampleRate, bitDepth int, samples []int) []byte {
	t.Helper()
	path := filepath.Join(t.TempDir(), "clip.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	enc := wav.NewEncoder(f, sampleRate, bitDepth, channels, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:           samples,
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		t.Fatal(err)
	}
	if err := enc.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return data
}

func TestDecodePCM16RoundTrip(t *testing.T) {
	samples := []int{0, 1000, -1000, 32767, -32768, 42}
	data := encodeWav(t, 1, SampleRate, 16, samples)

	pcm, err := DecodePCM16(data)
	if err != nil {
		t.Fatalf("DecodePCM16: %v", err)
	}
	if len(pcm) != 2*len(samples) {
		t.Fatalf("pcm length = %d, want %d", len(pcm), 2*len(samples))
	}
	for i, want := range samples {
		got := int16(binary.LittleEndian.Uint16(pcm[2*i:]))
		if int(got) != want {
			t.Errorf("sample %d = %d, want %d", i, got, want)
		}
	}
}

func TestDecodePCM16RejectsBadFormats(t *testing.T) {
	samples := []int{0, 100, -100, 200}
	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"stereo", encodeWav(t, 2, SampleRate, 16, samples), ErrNotMono},
		{"wrong rate", encodeWav(t, 1, 44100, 16, samples), ErrBadSampleRate},
		{"wrong depth", encodeWav(t, 1, SampleRate, 24, samples), ErrBadBitDepth},
		{"not a wav", []byte("esto no es audio"), ErrNotWav},
		{"empty", nil, ErrNotWav},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodePCM16(tt.data)
			if !errors.Is(err, tt.want) {
				t.Errorf("DecodePCM16 error = %v, want %v", err, tt.want)
			}
			if !IsDecodeError(err) {
				t.Errorf("IsDecodeError(%v) = false, want true", err)
			}
		})
	}
}
