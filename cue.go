package gridmenu

import (
	"encoding/binary"
	"math"

	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// CuePlayer plays the touch cue. Play is called once per fired touch and
// must be ready again immediately afterwards.
type CuePlayer interface {
	Play()
}

// CueFunc adapts a plain function to the CuePlayer interface.
type CueFunc func()

// Play calls f.
func (f CueFunc) Play() { f() }

// ToneCue is a short generated sine beep played through ebiten audio.
type ToneCue struct {
	player *audio.Player
}

// NewToneCue renders the beep described by cfg into memory and wraps it in a
// player on ctx. ctx's sample rate must match cfg.SampleRate.
func NewToneCue(ctx *audio.Context, cfg CueConfig) *ToneCue {
	pcm := renderTone(cfg)
	p := ctx.NewPlayerFromBytes(pcm)
	p.SetVolume(cfg.Volume)
	return &ToneCue{player: p}
}

// Play rewinds the beep and starts it. A beep still sounding from the
// previous touch restarts from the beginning.
func (c *ToneCue) Play() {
	if err := c.player.SetPosition(0); err != nil {
		logs.Warn(err)
		return
	}
	c.player.Play()
}

// renderTone returns 16-bit little-endian stereo PCM of a sine tone with a
// short attack and release so it does not click.
func renderTone(cfg CueConfig) []byte {
	samples := int(cfg.Duration.Seconds() * float64(cfg.SampleRate))
	if samples <= 0 {
		return nil
	}
	attack := samples / 20
	release := samples / 4

	buf := make([]byte, samples*4)
	phaseInc := cfg.Frequency / float64(cfg.SampleRate)
	phase := 0.0
	for i := 0; i < samples; i++ {
		vol := 1.0
		if i < attack && attack > 0 {
			vol = float64(i) / float64(attack)
		} else if i >= samples-release && release > 0 {
			vol = float64(samples-i) / float64(release)
		}
		v := int16(math.Sin(2*math.Pi*phase) * vol * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(v))

		phase += phaseInc
		if phase >= 1 {
			phase--
		}
	}
	return buf
}
