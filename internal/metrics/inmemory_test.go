package metrics

import (
	"sync"
	"testing"
	"time"
)

func TestInMemoryRecorder_Counters(t *testing.T) {
	t.Parallel()

	m := NewInMemory()

	m.IncUserCreated()
	m.IncUserCreated()
	m.IncUserCacheHit()
	m.IncUserCacheMiss()
	m.IncExerciseCreated()
	m.IncLogQuery()
	m.ObserveLogQueryDuration(10 * time.Millisecond)
	m.ObserveLogQueryDuration(20 * time.Millisecond)

	snap := m.Snapshot()

	if snap.UsersCreated != 2 {
		t.Errorf("UsersCreated = %d, want 2", snap.UsersCreated)
	}
	if snap.UserCacheHits != 1 || snap.UserCacheMisses != 1 {
		t.Errorf("cache counters = %d/%d, want 1/1", snap.UserCacheHits, snap.UserCacheMisses)
	}
	if snap.ExercisesCreated != 1 {
		t.Errorf("ExercisesCreated = %d, want 1", snap.ExercisesCreated)
	}
	if snap.LogQueries != 1 {
		t.Errorf("LogQueries = %d, want 1", snap.LogQueries)
	}
	if snap.LogQueryDurationCount != 2 {
		t.Errorf("LogQueryDurationCount = %d, want 2", snap.LogQueryDurationCount)
	}
	if want := (30 * time.Millisecond).Nanoseconds(); snap.LogQueryDurationTotalNs != want {
		t.Errorf("LogQueryDurationTotalNs = %d, want %d", snap.LogQueryDurationTotalNs, want)
	}
}

func TestInMemoryRecorder_ConcurrentUse(t *testing.T) {
	t.Parallel()

	m := NewInMemory()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				m.IncUserCreated()
			}
		}()
	}
	wg.Wait()

	if got := m.Snapshot().UsersCreated; got != 1000 {
		t.Errorf("UsersCreated = %d, want 1000", got)
	}
}
