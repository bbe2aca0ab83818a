package audio

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func drain(t *testing.T, s interface {
	Stream([][2]float64) (int, bool)
}) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
	}
	t.Fatal("streamer never finished")
	return total
}

func TestSweepLength(t *testing.T) {
	s := sweep(600, 200, 100*time.Millisecond)
	assert.Equal(t, sampleRate.N(100*time.Millisecond), drain(t, s))
}

func TestToneLength(t *testing.T) {
	s := tone(440, 50*time.Millisecond, 0)
	assert.NotNil(t, s)
	assert.Equal(t, sampleRate.N(50*time.Millisecond), drain(t, s))
}

func TestNoiseStaysInRange(t *testing.T) {
	buf := make([][2]float64, 1024)
	n, ok := noise().Stream(buf)
	assert.True(t, ok)
	assert.Equal(t, len(buf), n)
	for _, s := range buf {
		assert.GreaterOrEqual(t, s[0], -1.0)
		assert.LessOrEqual(t, s[0], 1.0)
	}
}

func TestUninitializedManagerIsSilent(t *testing.T) {
	sm := NewSoundManager()
	assert.NotPanics(t, func() {
		sm.PlayShot()
		sm.PlayEnemyShot()
		sm.PlayExplosion()
		sm.PlayLifeLost()
		sm.PlayGameOver()
		sm.Cleanup()
	})
}

func TestToggleMute(t *testing.T) {
	sm := NewSoundManager()
	assert.False(t, sm.Muted())
	assert.True(t, sm.ToggleMute())
	assert.True(t, sm.Muted())
	sm.SetMuted(false)
	assert.False(t, sm.Muted())
}
