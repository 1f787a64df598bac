package speech

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/go-audio/wav"
)

// SampleRate is the single sample rate the dialogue protocol accepts.
const SampleRate = 16000

// DecodePCM16 validates that wavBytes is a mono 16 kHz PCM16 WAV buffer and
// returns the raw little-endian sample bytes ready for the recognizer.
func DecodePCM16(wavBytes []byte) ([]byte, error) {
	d := wav.NewDecoder(bytes.NewReader(wavBytes))
	d.ReadInfo()
	if !d.IsValidFile() {
		return nil, ErrNotWav
	}
	if d.NumChans != 1 {
		return nil, ErrNotMono
	}
	if d.SampleRate != SampleRate {
		return nil, ErrBadSampleRate
	}
	if d.BitDepth != 16 {
		return nil, ErrBadBitDepth
	}

	buf, err := d.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotWav, err)
	}

	pcm := make([]byte, 2*len(buf.Data))
	for i, s := range buf.Data {
		binary.LittleEndian.PutUint16(pcm[2*i:], uint16(int16(s)))
	}
	return pcm, nil
}
