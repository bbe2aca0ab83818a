package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirectionLeftWins(t *testing.T) {
	assert.Equal(t, 0, State{}.Direction())
	assert.Equal(t, -1, State{Left: true}.Direction())
	assert.Equal(t, 1, State{Right: true}.Direction())
	assert.Equal(t, -1, State{Left: true, Right: true}.Direction())
}
