package monitor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/communitystore/backend/repository/memory"
)

func TestMonitorRefresh(t *testing.T) {
	store := memory.NewUserStore()
	mon := New(store, time.Minute, nil)

	// Before any probe the snapshot is zero-valued.
	assert.False(t, mon.GetStatus().Online)
	assert.True(t, mon.GetStatus().LastCheck.IsZero())

	mon.refresh()

	status := mon.GetStatus()
	assert.Equal(t, "memory", status.Backend)
	assert.True(t, status.Online)
	assert.False(t, status.LastCheck.IsZero())
}

func TestMonitorStartStop(t *testing.T) {
	store := memory.NewUserStore()
	mon := New(store, 10*time.Millisecond, nil)

	mon.Start()
	require.Eventually(t, func() bool {
		return mon.GetStatus().Online
	}, time.Second, 5*time.Millisecond)
	mon.Stop()
}
