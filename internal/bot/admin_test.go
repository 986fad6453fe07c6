package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdminGate(t *testing.T) {
	gate := NewAdminGate(12345)

	assert.True(t, gate.IsAdmin(12345))
	assert.False(t, gate.IsAdmin(99999))
	assert.False(t, gate.IsAdmin(0))
}

func TestAdminGateUnconfigured(t *testing.T) {
	// With no admin chat id configured nobody is admin, not even user 0.
	gate := NewAdminGate(0)

	assert.False(t, gate.IsAdmin(0))
	assert.False(t, gate.IsAdmin(12345))
}
