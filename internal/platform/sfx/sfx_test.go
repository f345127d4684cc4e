package sfx

import (
	"testing"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

func drain(t *testing.T, ev core.Event) int {
	t.Helper()
	s := Streamer(ev)
	if s == nil {
		t.Fatalf("Streamer(%q) = nil", ev.Kind)
	}
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		for _, smp := range buf[:n] {
			if smp[0] > 1 || smp[0] < -1 {
				t.Fatalf("%s sample %v out of range", ev.Kind, smp[0])
			}
		}
		if !ok || n == 0 {
			break
		}
	}
	return total
}

func TestEveryEventKindHasCue(t *testing.T) {
	kinds := []string{
		core.EventHit, core.EventKill, core.EventDeath, core.EventLevelClear,
		core.EventWarp, core.EventSuperzapper, core.EventFood, core.EventVirus,
		core.EventLineClear, core.EventSpeedUp, core.EventExtraLife,
	}
	for _, k := range kinds {
		if _, ok := CueFor(k); !ok {
			t.Errorf("no cue for %q", k)
		}
	}
}

func TestStreamerLength(t *testing.T) {
	tests := []core.Event{
		{Kind: core.EventHit, Intensity: 0.3},
		{Kind: core.EventDeath, Intensity: 1},
		{Kind: core.EventLineClear, Intensity: 0.8},
	}
	for _, ev := range tests {
		cue, _ := CueFor(ev.Kind)
		want := sampleRate.N(cue.Duration)
		if got := drain(t, ev); got != want {
			t.Errorf("%s: %d samples, expected %d", ev.Kind, got, want)
		}
	}
}

func TestUnknownKindIsSilent(t *testing.T) {
	if Streamer(core.Event{Kind: "nope"}) != nil {
		t.Errorf("expected nil streamer for unknown kind")
	}
}

func TestVolumeScalesWithIntensity(t *testing.T) {
	if volume(0.2) >= volume(0.9) {
		t.Errorf("volume(0.2) = %v, expected below volume(0.9) = %v", volume(0.2), volume(0.9))
	}
	if volume(0) != volume(0.05) {
		t.Errorf("zero intensity should clamp to the floor")
	}
}

func TestPlayWithoutInitIsNoop(t *testing.T) {
	p := New()
	p.Play(core.Event{Kind: core.EventHit, Intensity: 1})
	p.Close()
}
