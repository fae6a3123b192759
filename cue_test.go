package gridmenu

import (
	"encoding/binary"
	"testing"
	"time"
)

func TestRenderTone(t *testing.T) {
	cfg := CueConfig{Frequency: 440, Duration: 100 * time.Millisecond, Volume: 1, SampleRate: 48000}
	pcm := renderTone(cfg)

	if want := 4800 * 4; len(pcm) != want {
		t.Fatalf("len = %d, want %d", len(pcm), want)
	}
	first := int16(binary.LittleEndian.Uint16(pcm[0:]))
	last := int16(binary.LittleEndian.Uint16(pcm[len(pcm)-4:]))
	if first != 0 {
		t.Errorf("first sample = %d, want silence", first)
	}
	if last > 200 || last < -200 {
		t.Errorf("last sample = %d, want the release to have faded out", last)
	}

	peak := int16(0)
	for i := 0; i < len(pcm); i += 4 {
		l := int16(binary.LittleEndian.Uint16(pcm[i:]))
		r := int16(binary.LittleEndian.Uint16(pcm[i+2:]))
		if l != r {
			t.Fatalf("sample %d: channels differ", i/4)
		}
		peak = max(peak, l)
	}
	if peak < 30000 {
		t.Errorf("peak = %d, want close to full scale", peak)
	}
}

func TestRenderToneZeroDuration(t *testing.T) {
	if pcm := renderTone(CueConfig{Frequency: 440, SampleRate: 44100}); pcm != nil {
		t.Errorf("len = %d, want nil", len(pcm))
	}
}
