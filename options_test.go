package moonicon

import (
	"slices"
	"testing"
)

func TestDefaultOptions(t *testing.T) {
	o := buildOptions(nil)
	if !slices.Equal(o.sizes, []int{16, 48, 128}) {
		t.Errorf("sizes = %v, want [16 48 128]", o.sizes)
	}
	if o.supersample != 1 {
		t.Errorf("supersample = %d, want 1", o.supersample)
	}
	if o.style != DefaultStyle() {
		t.Error("style should default to DefaultStyle()")
	}
	if o.progress != nil {
		t.Error("progress should default to nil")
	}
}

func TestWithSizes(t *testing.T) {
	sizes := []int{24, 64}
	o := buildOptions([]Option{WithSizes(sizes...)})
	sizes[0] = 1

	if !slices.Equal(o.sizes, []int{24, 64}) {
		t.Errorf("sizes = %v, want a copy of [24 64]", o.sizes)
	}

	o = buildOptions([]Option{WithSizes()})
	if !slices.Equal(o.sizes, DefaultSizes()) {
		t.Errorf("empty WithSizes changed sizes to %v", o.sizes)
	}
}

func TestWithSupersample(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{4, 4},
		{1, 1},
		{0, 1},
		{-3, 1},
	}
	for _, tt := range tests {
		o := buildOptions([]Option{WithSupersample(tt.in)})
		if o.supersample != tt.want {
			t.Errorf("WithSupersample(%d) = %d, want %d", tt.in, o.supersample, tt.want)
		}
	}
}

func TestMultipleOptions(t *testing.T) {
	s := DefaultStyle()
	s.Moon = Black
	called := false

	o := buildOptions([]Option{
		WithStyle(s),
		WithSupersample(2),
		WithProgress(func(Result) { called = true }),
	})

	if o.style.Moon != Black || o.supersample != 2 || o.progress == nil {
		t.Fatalf("options not applied: %+v", o)
	}
	o.progress(Result{})
	if !called {
		t.Error("progress callback not stored")
	}
}
