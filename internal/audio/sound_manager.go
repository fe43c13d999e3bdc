package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	// repeatGuard is the minimum gap between two plays of the same cue.
	repeatGuard = 40 * time.Millisecond

	// maxVoices caps concurrent streams in the mixer.
	maxVoices = 12
)

// SoundManager plays cues through the system speaker. The zero value is
// not usable; create one with NewSoundManager. All methods are safe to call
// before Initialize, in which case they do nothing.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	lastPlayed  map[string]time.Time
	now         func() time.Time
	initialized bool
}

// NewSoundManager creates a sound manager at the given master volume (0..1).
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:      &beep.Mixer{},
		volume:     min(max(volume, 0), 1),
		lastPlayed: make(map[string]time.Time),
		now:        time.Now,
	}
}

// Initialize opens the speaker and starts the mixer.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Play queues a named cue. Unknown cues and rapid repeats are ignored.
func (sm *SoundManager) Play(cue string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || !sm.admit(cue) {
		return
	}
	s, ok := NewCue(cue, sampleRate)
	if !ok {
		return
	}

	speaker.Lock()
	if sm.mixer.Len() < maxVoices {
		sm.mixer.Add(newVolume(s, sm.volume))
	}
	speaker.Unlock()
}

// PlayAll plays each cue in order.
func (sm *SoundManager) PlayAll(cues []string) {
	for _, c := range cues {
		sm.Play(c)
	}
}

// admit reports whether cue may play now and records the attempt.
// Callers hold sm.mu.
func (sm *SoundManager) admit(cue string) bool {
	now := sm.now()
	if last, ok := sm.lastPlayed[cue]; ok && now.Sub(last) < repeatGuard {
		return false
	}
	sm.lastPlayed[cue] = now
	return true
}

// Cleanup silences everything and closes the speaker.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}
