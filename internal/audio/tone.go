// Package audio synthesizes the game's sound effects as raw PCM.
package audio

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"math/rand"
)

const (
	// Channels 输出为立体声
	Channels = 2
	// BytesPerSample 16-bit signed little-endian
	BytesPerSample = 2

	attackTime = 0.005 // 秒
)

// ToneStream holds synthesized 16-bit little-endian stereo PCM.
// It implements io.ReadSeeker so Ebitengine's audio.Player can stream it.
type ToneStream struct {
	data       []byte
	sampleRate int
	offset     int64
}

// Synthesize renders a cue to PCM at the given sample rate.
//
// 参数:
//   - cue: 音效参数
//   - sampleRate: 采样率 (Hz)
//   - rng: 噪声随机源，为 nil 时使用固定种子
//
// 返回:
//   - *ToneStream: 可直接交给播放器的 PCM 流
func Synthesize(cue Cue, sampleRate int, rng *rand.Rand) (*ToneStream, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("invalid sample rate: %d", sampleRate)
	}
	if cue.Duration <= 0 {
		return nil, fmt.Errorf("invalid cue duration: %v", cue.Duration)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	frames := int(cue.Duration.Seconds() * float64(sampleRate))
	data := make([]byte, frames*Channels*BytesPerSample)

	phase := 0.0
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(frames)
		freq := cue.StartFreq + (cue.EndFreq-cue.StartFreq)*t
		phase += 2 * math.Pi * freq / float64(sampleRate)

		v := math.Sin(phase) * (1 - cue.Noise)
		if cue.Noise > 0 {
			v += (rng.Float64()*2 - 1) * cue.Noise
		}
		v *= envelope(float64(i)/float64(sampleRate), cue.Duration.Seconds()) * cue.Volume

		sample := int16(clampSample(v) * math.MaxInt16)
		for ch := 0; ch < Channels; ch++ {
			off := (i*Channels + ch) * BytesPerSample
			binary.LittleEndian.PutUint16(data[off:], uint16(sample))
		}
	}

	return &ToneStream{data: data, sampleRate: sampleRate}, nil
}

// envelope 短起音后线性衰减到 0
func envelope(at, total float64) float64 {
	if at < attackTime {
		return at / attackTime
	}
	return math.Max(0, 1-(at-attackTime)/(total-attackTime))
}

func clampSample(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}

// Read reads PCM data into p.
// Implements io.Reader interface.
func (s *ToneStream) Read(p []byte) (int, error) {
	if s.offset >= int64(len(s.data)) {
		return 0, io.EOF
	}
	n := copy(p, s.data[s.offset:])
	s.offset += int64(n)
	return n, nil
}

// Seek sets the offset for the next Read.
// Implements io.Seeker interface.
func (s *ToneStream) Seek(offset int64, whence int) (int64, error) {
	var newOffset int64

	switch whence {
	case io.SeekStart:
		newOffset = offset
	case io.SeekCurrent:
		newOffset = s.offset + offset
	case io.SeekEnd:
		newOffset = int64(len(s.data)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}

	if newOffset < 0 {
		return 0, fmt.Errorf("negative position: %d", newOffset)
	}

	s.offset = newOffset
	return newOffset, nil
}

// Bytes returns the raw PCM buffer.
func (s *ToneStream) Bytes() []byte {
	return s.data
}

// Length returns the total length of the PCM data in bytes.
func (s *ToneStream) Length() int64 {
	return int64(len(s.data))
}

// SampleRate returns the sample rate in Hz.
func (s *ToneStream) SampleRate() int {
	return s.sampleRate
}

// Sample returns the left-channel sample at frame i, normalized to [-1, 1].
func (s *ToneStream) Sample(i int) float64 {
	off := i * Channels * BytesPerSample
	if off < 0 || off+BytesPerSample > len(s.data) {
		return 0
	}
	return float64(int16(binary.LittleEndian.Uint16(s.data[off:]))) / math.MaxInt16
}

// Frames returns the number of stereo frames.
func (s *ToneStream) Frames() int {
	return len(s.data) / (Channels * BytesPerSample)
}
