package coursepdf

// Notes:
// - Pooled Converters start their browser lazily, so acquiring and closing
//   them here never launches Chrome.

import (
	"errors"
	"path/filepath"
	"runtime"
	"testing"
)

func TestResolvePoolSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		workers int
		want    int
	}{
		{name: "explicit", workers: 3, want: 3},
		{name: "explicit capped", workers: 20, want: MaxPoolSize},
		{name: "auto", workers: 0, want: max(MinPoolSize, min(runtime.GOMAXPROCS(0)/cpuDivisor, MaxPoolSize))},
		{name: "negative is auto", workers: -1, want: max(MinPoolSize, min(runtime.GOMAXPROCS(0)/cpuDivisor, MaxPoolSize))},
	}

	for _, tt := range tests {
		if got := ResolvePoolSize(tt.workers); got != tt.want {
			t.Errorf("%s: ResolvePoolSize(%d) = %d, want %d", tt.name, tt.workers, got, tt.want)
		}
	}
}

func TestConverterPool_AcquireRelease(t *testing.T) {
	t.Parallel()

	pool := NewConverterPool(0)
	if pool.Size() != 1 {
		t.Fatalf("Size() = %d, want 1", pool.Size())
	}

	first, err := pool.Acquire()
	if err != nil {
		t.Fatalf("Acquire() error: %v", err)
	}
	pool.Release(first)

	second, err := pool.Acquire()
	if err != nil {
		t.Fatalf("Acquire() error: %v", err)
	}
	if first != second {
		t.Error("released converter should be reused")
	}
	pool.Release(second)

	if err := pool.Close(); err != nil {
		t.Errorf("Close() error: %v", err)
	}
	if err := pool.Close(); err != nil {
		t.Errorf("second Close() error: %v", err)
	}
	if _, err := pool.Acquire(); !errors.Is(err, ErrPoolClosed) {
		t.Errorf("Acquire() after Close = %v, want ErrPoolClosed", err)
	}
	pool.Release(second)
}

func TestConverterPool_CreationErrorFreesSlot(t *testing.T) {
	t.Parallel()

	pool := NewConverterPool(1, WithAssetPath(filepath.Join(t.TempDir(), "missing")))
	defer func() { _ = pool.Close() }()

	for i := 0; i < 2; i++ {
		if _, err := pool.Acquire(); !errors.Is(err, ErrInvalidAssetPath) {
			t.Fatalf("attempt %d: error = %v, want ErrInvalidAssetPath", i, err)
		}
	}
}
