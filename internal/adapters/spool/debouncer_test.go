package spool_test

import (
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/llegomark/better-nginx-cache/internal/adapters/spool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebouncer_CoalescesBurst(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var calls [][]string
		d := spool.NewDebouncer(100*time.Millisecond, func(paths []string) {
			calls = append(calls, paths)
		})

		d.Add("/spool/b.yaml")
		time.Sleep(50 * time.Millisecond)
		d.Add("/spool/a.yaml")
		time.Sleep(50 * time.Millisecond)
		d.Add("/spool/b.yaml")

		synctest.Wait()
		assert.Empty(t, calls)

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		require.Len(t, calls, 1)
		assert.Equal(t, []string{"/spool/a.yaml", "/spool/b.yaml"}, calls[0])
	})
}

func TestDebouncer_SeparateWindows(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var mu sync.Mutex
		var calls [][]string
		d := spool.NewDebouncer(100*time.Millisecond, func(paths []string) {
			mu.Lock()
			defer mu.Unlock()
			calls = append(calls, paths)
		})

		d.Add("/spool/1.yaml")
		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		d.Add("/spool/2.yaml")
		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		mu.Lock()
		defer mu.Unlock()
		assert.Equal(t, [][]string{{"/spool/1.yaml"}, {"/spool/2.yaml"}}, calls)
	})
}

func TestDebouncer_NilCallback(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		d := spool.NewDebouncer(10*time.Millisecond, nil)
		d.Add("/spool/x.yaml")
		time.Sleep(20 * time.Millisecond)
		synctest.Wait()
	})
}
