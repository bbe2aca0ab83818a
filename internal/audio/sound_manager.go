// Package audio синтезирует звуковые эффекты игры через beep.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// SoundManager manages all game audio. Before Initialize every Play* is a no-op.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize открывает аудиоустройство. Ошибка не фатальна: игра идёт без звука.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// SetMuted включает или выключает звук без закрытия устройства.
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// ToggleMute переключает звук и возвращает новое состояние.
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	return sm.muted
}

func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// PlayShot — короткий высокий писк выстрела игрока
func (sm *SoundManager) PlayShot() {
	sm.play(func() beep.Streamer {
		return tone(880, 60*time.Millisecond, -1.5)
	})
}

// PlayEnemyShot — ниже и короче, чтобы отличать от своего выстрела
func (sm *SoundManager) PlayEnemyShot() {
	sm.play(func() beep.Streamer {
		return tone(330, 50*time.Millisecond, -2)
	})
}

// PlayExplosion — шумовой хлопок
func (sm *SoundManager) PlayExplosion() {
	sm.play(func() beep.Streamer {
		return quiet(beep.Take(sampleRate.N(120*time.Millisecond), noise()), -1)
	})
}

// PlayLifeLost — нисходящий свип
func (sm *SoundManager) PlayLifeLost() {
	sm.play(func() beep.Streamer {
		return quiet(sweep(600, 200, 250*time.Millisecond), -1)
	})
}

// PlayGameOver — три нисходящие ноты
func (sm *SoundManager) PlayGameOver() {
	sm.play(func() beep.Streamer {
		return beep.Seq(
			tone(523, 180*time.Millisecond, -1),
			tone(392, 180*time.Millisecond, -1),
			tone(262, 400*time.Millisecond, -1),
		)
	})
}

func (sm *SoundManager) play(build func() beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	streamer := build()
	if streamer == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

// tone — синус заданной частоты и длительности
func tone(freq float64, d time.Duration, volume float64) beep.Streamer {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return nil
	}
	return quiet(beep.Take(sampleRate.N(d), sine), volume)
}

func quiet(s beep.Streamer, volume float64) beep.Streamer {
	return &effects.Volume{Streamer: s, Base: 2, Volume: volume}
}

// noise — белый шум с детерминированным LCG, без общего math/rand
func noise() beep.Streamer {
	var state uint32 = 0x9e3779b9
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			state = state*1664525 + 1013904223
			v := float64(state)/float64(math.MaxUint32)*2 - 1
			samples[i][0] = v
			samples[i][1] = v
		}
		return len(samples), true
	})
}

// sweep — синус с линейно меняющейся частотой
func sweep(from, to float64, d time.Duration) beep.Streamer {
	total := sampleRate.N(d)
	pos := 0
	phase := 0.0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		for i := range samples {
			if pos >= total {
				return i, true
			}
			t := float64(pos) / float64(total)
			freq := from + (to-from)*t
			v := math.Sin(2 * math.Pi * phase)
			samples[i][0] = v
			samples[i][1] = v
			phase += freq / float64(sampleRate)
			phase -= math.Floor(phase)
			pos++
		}
		return len(samples), true
	})
}
