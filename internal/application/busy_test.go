package application

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusyGateAdmitsOneHolder(t *testing.T) {
	gate := newBusyGate()
	assert.False(t, gate.busy())

	require.True(t, gate.tryAcquire())
	assert.True(t, gate.busy())
	assert.False(t, gate.tryAcquire())

	gate.release()
	assert.False(t, gate.busy())
	assert.True(t, gate.tryAcquire())
	gate.release()
}

func TestBusyGateReadsNeverTurnCallersAway(t *testing.T) {
	gate := newBusyGate()

	stop := make(chan struct{})
	var readers sync.WaitGroup
	for range 4 {
		readers.Add(1)
		go func() {
			defer readers.Done()
			for {
				select {
				case <-stop:
					return
				default:
					_ = gate.busy()
				}
			}
		}()
	}

	var refused atomic.Int32
	for range 1000 {
		if !gate.tryAcquire() {
			refused.Add(1)
			continue
		}
		gate.release()
	}
	close(stop)
	readers.Wait()

	assert.Zero(t, refused.Load())
}

func TestBusyGateHolderAlwaysReadsBusy(t *testing.T) {
	gate := newBusyGate()

	var workers sync.WaitGroup
	var mismatches atomic.Int32
	for range 8 {
		workers.Add(1)
		go func() {
			defer workers.Done()
			for range 500 {
				if gate.tryAcquire() {
					if !gate.busy() {
						mismatches.Add(1)
					}
					gate.release()
				}
			}
		}()
	}
	workers.Wait()

	assert.Zero(t, mismatches.Load())
	assert.False(t, gate.busy())
}
