/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package semaphore_test

import (
	"context"
	"testing"
	"time"

	"github.com/hyperledger/fabric-vcp/common/semaphore"
	"github.com/stretchr/testify/require"
)

func TestCountingSemaphore(t *testing.T) {
	s := semaphore.New(2).(*semaphore.Counting)

	require.NoError(t, s.Acquire(context.Background()))
	require.True(t, s.TryAcquire())
	require.False(t, s.TryAcquire())
	require.Equal(t, 2, s.InUse())

	s.Release()
	require.Equal(t, 1, s.InUse())
	require.True(t, s.TryAcquire())
}

func TestAcquireBlocksUntilRelease(t *testing.T) {
	s := semaphore.New(1)
	require.NoError(t, s.Acquire(context.Background()))

	done := make(chan error, 1)
	go func() { done <- s.Acquire(context.Background()) }()

	select {
	case <-done:
		t.Fatal("acquire should block while the permit is held")
	case <-time.After(50 * time.Millisecond):
	}

	s.Release()
	require.NoError(t, <-done)
}

func TestAcquireCancelled(t *testing.T) {
	s := semaphore.New(1)
	require.NoError(t, s.Acquire(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.Equal(t, context.Canceled, s.Acquire(ctx))
}

func TestReleaseWithoutAcquire(t *testing.T) {
	s := semaphore.New(1)
	require.PanicsWithValue(t, "semaphore released more times than acquired", s.Release)
}

func TestUnbounded(t *testing.T) {
	s := semaphore.New(0)
	require.Equal(t, semaphore.Unbounded, s)
	for i := 0; i < 100; i++ {
		require.NoError(t, s.Acquire(context.Background()))
	}
	s.Release()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.Error(t, s.Acquire(ctx))
}
