package embedding

import (
	"context"
	"errors"
	"sync"
	"testing"
)

type stubProvider struct{}

func (stubProvider) Embed(ctx context.Context, text string) ([]float32, error) {
	return []float32{0}, nil
}

func (stubProvider) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i := range texts {
		out[i] = []float32{0}
	}
	return out, nil
}

func (stubProvider) Close() error { return nil }

func TestLoader_MemoizesSuccess(t *testing.T) {
	builds := 0
	loader := newLoaderWithBuilder(func() (Provider, error) {
		builds++
		return stubProvider{}, nil
	})

	if loader.Ready() {
		t.Error("loader should not be ready before first Get")
	}

	for i := 0; i < 3; i++ {
		if _, err := loader.Get(); err != nil {
			t.Fatalf("Get() error = %v", err)
		}
	}

	if builds != 1 {
		t.Errorf("provider built %d times, want 1", builds)
	}
	if !loader.Ready() {
		t.Error("loader should be ready after successful Get")
	}
}

func TestLoader_RetriesAfterFailure(t *testing.T) {
	builds := 0
	loader := newLoaderWithBuilder(func() (Provider, error) {
		builds++
		if builds == 1 {
			return nil, errors.New("backend unavailable")
		}
		return stubProvider{}, nil
	})

	if _, err := loader.Get(); err == nil {
		t.Fatal("first Get() should fail")
	}
	if loader.Ready() {
		t.Error("loader should not be ready after failed load")
	}

	if _, err := loader.Get(); err != nil {
		t.Fatalf("second Get() error = %v", err)
	}
	if builds != 2 {
		t.Errorf("provider built %d times, want 2", builds)
	}
}

func TestLoader_ConcurrentGets(t *testing.T) {
	builds := 0
	loader := newLoaderWithBuilder(func() (Provider, error) {
		builds++
		return stubProvider{}, nil
	})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			loader.Get()
		}()
	}
	wg.Wait()

	if builds != 1 {
		t.Errorf("provider built %d times under concurrency, want 1", builds)
	}
}
