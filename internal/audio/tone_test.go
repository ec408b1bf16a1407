package audio

import (
	"bytes"
	"io"
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/gonewx/skyrocket/pkg/game"
)

func TestCuesCoverAllSounds(t *testing.T) {
	for _, id := range game.AllSounds {
		cue, ok := CueFor(id)
		if !ok {
			t.Errorf("Missing cue for %s", id)
			continue
		}
		if cue.Duration <= 0 || cue.Volume <= 0 || cue.Volume > 1 {
			t.Errorf("Cue %s has invalid parameters: %+v", id, cue)
		}
	}

	if _, ok := CueFor("SOUND_UNKNOWN"); ok {
		t.Error("Unknown sound should have no cue")
	}
}

func TestSynthesizeLength(t *testing.T) {
	cue := Cue{StartFreq: 440, EndFreq: 440, Duration: 100 * time.Millisecond, Volume: 0.5}

	stream, err := Synthesize(cue, 48000, nil)
	if err != nil {
		t.Fatalf("Synthesize failed: %v", err)
	}

	if stream.Frames() != 4800 {
		t.Errorf("Expected 4800 frames, got %d", stream.Frames())
	}
	if stream.Length() != 4800*Channels*BytesPerSample {
		t.Errorf("Unexpected byte length %d", stream.Length())
	}
	if stream.SampleRate() != 48000 {
		t.Errorf("Expected sample rate 48000, got %d", stream.SampleRate())
	}
}

func TestSynthesizeEnvelopeAndVolume(t *testing.T) {
	cue := Cue{StartFreq: 300, EndFreq: 600, Duration: 200 * time.Millisecond, Volume: 0.4}

	stream, err := Synthesize(cue, 44100, nil)
	if err != nil {
		t.Fatalf("Synthesize failed: %v", err)
	}

	if got := stream.Sample(0); got != 0 {
		t.Errorf("First sample should be silent, got %v", got)
	}

	peak := 0.0
	for i := 0; i < stream.Frames(); i++ {
		peak = math.Max(peak, math.Abs(stream.Sample(i)))
	}
	if peak > cue.Volume+0.001 {
		t.Errorf("Peak %.3f exceeds volume %.2f", peak, cue.Volume)
	}
	if peak < cue.Volume/2 {
		t.Errorf("Peak %.3f is too quiet", peak)
	}

	// 尾部接近静音
	if tail := math.Abs(stream.Sample(stream.Frames() - 1)); tail > 0.01 {
		t.Errorf("Tail should fade out, got %.3f", tail)
	}
}

func TestSynthesizeDeterministicNoise(t *testing.T) {
	cue := Cues[game.SoundExplosion]

	a, err := Synthesize(cue, 22050, rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatal(err)
	}
	b, err := Synthesize(cue, 22050, rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Error("Same seed should produce identical PCM")
	}
}

func TestSynthesizeInvalidInput(t *testing.T) {
	tests := []struct {
		name       string
		cue        Cue
		sampleRate int
	}{
		{name: "zero sample rate", cue: Cue{Duration: time.Second}, sampleRate: 0},
		{name: "zero duration", cue: Cue{}, sampleRate: 48000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Synthesize(tt.cue, tt.sampleRate, nil); err == nil {
				t.Error("Expected error")
			}
		})
	}
}

func TestToneStreamReadSeek(t *testing.T) {
	stream, err := Synthesize(Cue{StartFreq: 440, EndFreq: 440, Duration: 10 * time.Millisecond, Volume: 1}, 8000, nil)
	if err != nil {
		t.Fatal(err)
	}

	all, err := io.ReadAll(stream)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if !bytes.Equal(all, stream.Bytes()) {
		t.Error("ReadAll should return the full buffer")
	}

	if n, err := stream.Read(make([]byte, 4)); n != 0 || err != io.EOF {
		t.Errorf("Expected EOF after full read, got n=%d err=%v", n, err)
	}

	pos, err := stream.Seek(0, io.SeekStart)
	if err != nil || pos != 0 {
		t.Fatalf("Seek to start failed: pos=%d err=%v", pos, err)
	}
	if pos, _ := stream.Seek(-4, io.SeekEnd); pos != stream.Length()-4 {
		t.Errorf("SeekEnd returned %d", pos)
	}
	if _, err := stream.Seek(-1, io.SeekStart); err == nil {
		t.Error("Negative seek should fail")
	}
	if _, err := stream.Seek(0, 42); err == nil {
		t.Error("Invalid whence should fail")
	}
}
