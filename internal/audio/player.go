package audio

import (
	"bytes"
	"sync"

	"github.com/ebitengine/oto/v3"
)

var (
	globalOtoCtx *oto.Context
	otoOnce      sync.Once
	otoInitErr   error
)

// initOto lazily creates the process-wide audio context. oto contexts
// cannot be torn down and recreated, so one is shared for the process
// lifetime.
func initOto() (*oto.Context, error) {
	otoOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   SampleRate,
			ChannelCount: channelCount,
			Format:       oto.FormatSignedInt16LE,
		}
		var ready chan struct{}
		globalOtoCtx, ready, otoInitErr = oto.NewContext(op)
		if otoInitErr == nil {
			<-ready
		}
	})
	return globalOtoCtx, otoInitErr
}

// Player plays rendered PCM clips through the system audio device. One
// clip plays at a time; starting a new one stops the previous.
type Player struct {
	ctx *oto.Context

	mu  sync.Mutex
	cur *oto.Player
}

// NewPlayer opens the audio device.
func NewPlayer() (*Player, error) {
	ctx, err := initOto()
	if err != nil {
		return nil, err
	}
	return &Player{ctx: ctx}, nil
}

// Play starts playback of the given interleaved stereo samples,
// replacing anything already playing.
func (p *Player) Play(pcm []int16) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cur != nil {
		p.cur.Close()
	}
	p.cur = p.ctx.NewPlayer(bytes.NewReader(pcmBytes(pcm)))
	p.cur.Play()
}

// Stop halts playback.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cur != nil {
		p.cur.Close()
		p.cur = nil
	}
}

// Playing reports whether a clip is still sounding.
func (p *Player) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cur != nil && p.cur.IsPlaying()
}

// Close releases the current clip. The underlying context stays open
// for the process lifetime.
func (p *Player) Close() error {
	p.Stop()
	return nil
}
