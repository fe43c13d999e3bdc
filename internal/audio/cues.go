package audio

import (
	"slices"
	"time"

	"github.com/gopxl/beep"
)

// Cue names, matching the simulation's event kinds.
const (
	CueRunStart   = "run_start"
	CueTrailStart = "trail_start"
	CueClaim      = "claim"
	CueBounce     = "bounce"
	CueNitro      = "nitro"
	CueLifeLost   = "life_lost"
	CueGameOver   = "game_over"
	CueLevelUp    = "level_up"
)

const ms = time.Millisecond

type cueBuilder func(rate beep.SampleRate) beep.Streamer

var cues = map[string]cueBuilder{
	CueRunStart: func(r beep.SampleRate) beep.Streamer {
		return beep.Seq(
			note(WaveSquare, 220, 220, 90*ms, 0.18, r),
			note(WaveSquare, 330, 330, 90*ms, 0.18, r),
			note(WaveSquare, 440, 440, 160*ms, 0.2, r),
		)
	},
	CueTrailStart: func(r beep.SampleRate) beep.Streamer {
		return note(WaveSaw, 140, 190, 80*ms, 0.12, r)
	},
	CueClaim: func(r beep.SampleRate) beep.Streamer {
		return beep.Mix(
			note(WaveSine, 660, 990, 180*ms, 0.3, r),
			note(WaveSine, 1320, 1980, 180*ms, 0.1, r),
		)
	},
	CueBounce: func(r beep.SampleRate) beep.Streamer {
		return beep.Mix(
			note(WaveNoise, 0, 0, 50*ms, 0.12, r),
			note(WaveSquare, 110, 70, 60*ms, 0.1, r),
		)
	},
	CueNitro: func(r beep.SampleRate) beep.Streamer {
		return beep.Mix(
			note(WaveSaw, 90, 380, 450*ms, 0.22, r),
			note(WaveNoise, 0, 0, 300*ms, 0.06, r),
		)
	},
	CueLifeLost: func(r beep.SampleRate) beep.Streamer {
		return beep.Mix(
			note(WaveSquare, 300, 80, 500*ms, 0.25, r),
			note(WaveNoise, 0, 0, 220*ms, 0.2, r),
		)
	},
	CueGameOver: func(r beep.SampleRate) beep.Streamer {
		return beep.Seq(
			note(WaveSquare, 392, 392, 180*ms, 0.2, r),
			note(WaveSquare, 311, 311, 180*ms, 0.2, r),
			note(WaveSquare, 262, 262, 180*ms, 0.2, r),
			note(WaveSquare, 196, 150, 420*ms, 0.22, r),
		)
	},
	CueLevelUp: func(r beep.SampleRate) beep.Streamer {
		return beep.Seq(
			note(WaveSine, 523, 523, 90*ms, 0.25, r),
			note(WaveSine, 659, 659, 90*ms, 0.25, r),
			note(WaveSine, 784, 784, 90*ms, 0.25, r),
			note(WaveSine, 1047, 1047, 240*ms, 0.28, r),
		)
	},
}

// NewCue builds the streamer for a named cue. It reports false for unknown names.
func NewCue(name string, rate beep.SampleRate) (beep.Streamer, bool) {
	build, ok := cues[name]
	if !ok {
		return nil, false
	}
	return build(rate), true
}

// CueNames lists every known cue, sorted.
func CueNames() []string {
	names := make([]string, 0, len(cues))
	for name := range cues {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
