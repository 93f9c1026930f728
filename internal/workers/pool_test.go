package workers

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestWorkerPool_RunCollectsAllResults(t *testing.T) {
	pool := New[int](NumCPUBounded(5))

	const jobCount = 5
	go func() {
		for i := 0; i < jobCount; i++ {
			i := i
			pool.AddJob(Job[int]{
				Description: JobDescriptor{ID: JobID(fmt.Sprintf("job-%d", i))},
				ExecFn: func(ctx context.Context, n int) (int, error) {
					return n * n, nil
				},
				Args: i,
			})
		}
	}()

	results := pool.Run(context.Background(), jobCount)
	if len(results) != jobCount {
		t.Fatalf("expected %d results, got %d", jobCount, len(results))
	}

	seen := make(map[int]bool)
	for _, r := range results {
		if r.Err != nil {
			t.Errorf("unexpected job error: %v", r.Err)
		}
		seen[r.Value] = true
	}
	for _, want := range []int{0, 1, 4, 9, 16} {
		if !seen[want] {
			t.Errorf("expected result %d among squares, got %v", want, results)
		}
	}
}

func TestWorkerPool_RunSurfacesJobErrors(t *testing.T) {
	pool := New[int](2)
	wantErr := errors.New("boom")

	go func() {
		pool.AddJob(Job[int]{
			Description: JobDescriptor{ID: "failing"},
			ExecFn: func(ctx context.Context, n int) (int, error) {
				return 0, wantErr
			},
		})
	}()

	results := pool.Run(context.Background(), 1)
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if !errors.Is(results[0].Err, wantErr) {
		t.Errorf("expected wrapped wantErr, got %v", results[0].Err)
	}
}

func TestNumCPUBounded_ClampsToJobCount(t *testing.T) {
	if got := NumCPUBounded(1); got != 1 {
		t.Errorf("NumCPUBounded(1) = %d, want 1", got)
	}
	if got := NumCPUBounded(0); got != 1 {
		t.Errorf("NumCPUBounded(0) = %d, want 1 (clamped)", got)
	}
}
