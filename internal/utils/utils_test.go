package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	assert.Equal(t, 5.0, Distance(0, 0, 3, 4))
	assert.Equal(t, 50.0, Distance(400, 520, 400, 470))
	assert.Equal(t, 0.0, Distance(1, 1, 1, 1))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 32.0, Clamp(-10, 32, 768))
	assert.Equal(t, 768.0, Clamp(900, 32, 768))
	assert.Equal(t, 400.0, Clamp(400, 32, 768))
}

func TestRectsOverlap(t *testing.T) {
	tests := []struct {
		name string
		x2   float64
		y2   float64
		want bool
	}{
		{"same centre", 0, 0, true},
		{"partial", 15, 15, true},
		{"touching edges", 20, 0, false},
		{"apart", 100, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RectsOverlap(0, 0, 20, 20, tt.x2, tt.y2, 20, 20))
		})
	}
}

func TestPRNGIsReproducible(t *testing.T) {
	a := NewPRNGService(42)
	b := NewPRNGService(42)
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Between(50, 750), b.Between(50, 750))
	}
}

func TestBetweenIsInclusive(t *testing.T) {
	rng := NewPRNGService(7)
	seen := map[int]bool{}
	for i := 0; i < 200; i++ {
		v := rng.Between(1, 2)
		assert.True(t, v == 1 || v == 2)
		seen[v] = true
	}
	assert.Len(t, seen, 2)
	assert.Equal(t, 5, rng.Between(5, 5))
}

func TestChanceBounds(t *testing.T) {
	rng := NewPRNGService(1)
	for i := 0; i < 50; i++ {
		assert.False(t, rng.Chance(0))
		assert.True(t, rng.Chance(1))
	}
}
