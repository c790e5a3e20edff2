package chflow

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReceive(t *testing.T) {
	t.Run("successful receive", func(t *testing.T) {
		ch := make(chan int, 1)
		ch <- 42

		ctx := t.Context()
		value, ok := Receive(ctx, ch)

		assert.True(t, ok)
		assert.Equal(t, 42, value)
	})

	t.Run("context canceled before receive", func(t *testing.T) {
		ch := make(chan int)
		ctx, cancel := context.WithCancel(t.Context())
		cancel() // Cancel immediately

		value, ok := Receive(ctx, ch)

		assert.False(t, ok)
		assert.Equal(t, 0, value) // zero value for int
	})

	t.Run("channel closed", func(t *testing.T) {
		ch := make(chan string)
		close(ch)

		ctx := t.Context()
		value, ok := Receive(ctx, ch)

		assert.False(t, ok)
		assert.Equal(t, "", value) // zero value for string
	})

	t.Run("receive with different types", func(t *testing.T) {
		// Test with struct
		type testStruct struct {
			Name string
			ID   int
		}

		structCh := make(chan testStruct, 1)
		expected := testStruct{Name: "test", ID: 123}
		structCh <- expected

		ctx := t.Context()
		result, ok := Receive(ctx, structCh)

		assert.True(t, ok)
		assert.Equal(t, expected, result)
	})
}

func TestSleep(t *testing.T) {
	t.Run("waits for the duration", func(t *testing.T) {
		start := time.Now()

		ok := Sleep(t.Context(), 20*time.Millisecond)

		assert.True(t, ok)
		assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	})

	t.Run("returns early when the context is canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())
		go func() {
			time.Sleep(10 * time.Millisecond)
			cancel()
		}()

		start := time.Now()
		ok := Sleep(ctx, time.Minute)

		assert.False(t, ok)
		assert.Less(t, time.Since(start), time.Second)
	})

	t.Run("already canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		assert.False(t, Sleep(ctx, time.Minute))
	})
}
