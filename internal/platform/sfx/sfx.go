// Package sfx plays short synthesized cues for engine events.
package sfx

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Cue describes the blip played for an event kind.
type Cue struct {
	Freq     float64       // Start frequency in Hz
	Duration time.Duration // Length of the blip
	Noise    bool          // Decaying noise burst instead of a tone
}

var cues = map[string]Cue{
	core.EventHit:         {Freq: 220, Duration: 60 * time.Millisecond},
	core.EventKill:        {Freq: 330, Duration: 50 * time.Millisecond},
	core.EventDeath:       {Duration: 400 * time.Millisecond, Noise: true},
	core.EventLevelClear:  {Freq: 660, Duration: 150 * time.Millisecond},
	core.EventWarp:        {Freq: 880, Duration: 250 * time.Millisecond},
	core.EventSuperzapper: {Duration: 300 * time.Millisecond, Noise: true},
	core.EventFood:        {Freq: 520, Duration: 40 * time.Millisecond},
	core.EventVirus:       {Freq: 140, Duration: 200 * time.Millisecond},
	core.EventLineClear:   {Freq: 440, Duration: 100 * time.Millisecond},
	core.EventSpeedUp:     {Freq: 740, Duration: 80 * time.Millisecond},
	core.EventExtraLife:   {Freq: 990, Duration: 120 * time.Millisecond},
}

// CueFor returns the cue for an event kind.
func CueFor(kind string) (Cue, bool) {
	c, ok := cues[kind]
	return c, ok
}

// Player mixes event cues onto the system speaker.
// The zero value is silent until Init succeeds.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// New creates a player.
func New() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Init opens the speaker.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("sfx: failed to open speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close stops playback and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}

// Play queues the cue for ev. Unknown kinds are ignored.
func (p *Player) Play(ev core.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	s := Streamer(ev)
	if s == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Streamer builds the finite sound for ev, scaled by its intensity.
func Streamer(ev core.Event) beep.Streamer {
	cue, ok := cues[ev.Kind]
	if !ok {
		return nil
	}

	var src beep.Streamer
	if cue.Noise {
		src = &noiseBurst{decay: 8}
	} else {
		freq := cue.Freq
		if ev.Kind == core.EventLineClear {
			// bigger clears ring higher
			freq *= 1 + ev.Intensity
		}
		tone, err := generators.SineTone(sampleRate, freq)
		if err != nil {
			return nil
		}
		src = tone
	}

	return &effects.Volume{
		Streamer: beep.Take(sampleRate.N(cue.Duration), src),
		Base:     2,
		Volume:   volume(ev.Intensity),
	}
}

// volume maps intensity to a gain exponent; full intensity is -1 (half gain).
func volume(intensity float64) float64 {
	return math.Log2(core.ClampF(intensity, 0.05, 1)) - 1
}

// noiseBurst is white noise with an exponential decay.
type noiseBurst struct {
	pos   int
	seed  uint32
	decay float64
}

func (n *noiseBurst) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		t := float64(n.pos) / float64(sampleRate)
		n.seed = n.seed*1664525 + 1013904223
		noise := float64(n.seed)/float64(math.MaxUint32)*2 - 1
		rumble := 0.3 * math.Sin(2*math.Pi*70*t)
		v := math.Exp(-t*n.decay) * (0.3*noise + rumble)
		samples[i][0] = v
		samples[i][1] = v
		n.pos++
	}
	return len(samples), true
}

func (n *noiseBurst) Err() error {
	return nil
}
