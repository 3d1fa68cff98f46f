package histogram

import (
	"errors"
	"strings"
	"testing"
)

func TestScalar(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		bins   int
		min    float64
		max    float64
		want   Histogram
	}{
		{
			"uniform spread",
			[]float64{0, 25, 50, 75, 100},
			4, 0, 100,
			Histogram{1, 1, 1, 2},
		},
		{
			"all in one bin",
			[]float64{10, 11, 12},
			10, 0, 100,
			Histogram{0, 3, 0, 0, 0, 0, 0, 0, 0, 0},
		},
		{
			"single bin",
			[]float64{1, 2, 3, 4},
			1, 0, 10,
			Histogram{4},
		},
		{
			"no samples",
			nil,
			3, 0, 1,
			Histogram{0, 0, 0},
		},
		{
			"range not starting at zero",
			[]float64{-50, 0, 49},
			2, -50, 50,
			Histogram{1, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Scalar(tt.values, tt.bins, tt.min, tt.max)
			if err != nil {
				t.Fatalf("Scalar failed: %v", err)
			}
			if len(got) != tt.bins {
				t.Fatalf("length: got %d, want %d", len(got), tt.bins)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("bin %d: got %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestScalar_SumEqualsSampleCount(t *testing.T) {
	values := make([]float64, 0, 1000)
	for i := 0; i < 1000; i++ {
		values = append(values, float64(i%256))
	}

	h, err := Scalar(values, 16, 0, 255)
	if err != nil {
		t.Fatalf("Scalar failed: %v", err)
	}

	if got := h.Sum(); got != float64(len(values)) {
		t.Errorf("total mass: got %v, want %v", got, len(values))
	}
}

func TestScalar_RangeMaxLandsInLastBin(t *testing.T) {
	// A uint8 sample at the maximum representable value must not trigger
	// any epsilon arithmetic that would overflow the sample type.
	values := []uint8{255, 255, 0}

	h, err := Scalar(values, 4, uint8(0), uint8(255))
	if err != nil {
		t.Fatalf("Scalar failed: %v", err)
	}

	if h[3] != 2 {
		t.Errorf("last bin: got %v, want 2", h[3])
	}
	if h[0] != 1 {
		t.Errorf("first bin: got %v, want 1", h[0])
	}
}

func TestScalar_OutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		value float64
	}{
		{"below range", -5},
		{"above range", 101},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Scalar([]float64{50, tt.value}, 10, 0, 100)
			if err == nil {
				t.Fatal("Scalar should fail for out-of-range value")
			}

			var binErr *BinError
			if !errors.As(err, &binErr) {
				t.Fatalf("error type: got %T, want *BinError", err)
			}
			if binErr.Value != tt.value {
				t.Errorf("Value: got %v, want %v", binErr.Value, tt.value)
			}
			if binErr.Index != 1 {
				t.Errorf("Index: got %d, want 1", binErr.Index)
			}
			if binErr.SampleCount != 2 {
				t.Errorf("SampleCount: got %d, want 2", binErr.SampleCount)
			}
			if binErr.RangeMin != 0 || binErr.RangeMax != 100 {
				t.Errorf("range: got [%v, %v], want [0, 100]", binErr.RangeMin, binErr.RangeMax)
			}
		})
	}
}

func TestScalar_ZeroWidthRange(t *testing.T) {
	tests := []struct {
		name string
		min  float64
		max  float64
	}{
		{"equal bounds", 42, 42},
		{"width below tolerance", 0, 1e-9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := Scalar([]float64{tt.min, tt.min, tt.min}, 5, tt.min, tt.max)
			if err != nil {
				t.Fatalf("degenerate range should not fail: %v", err)
			}
			if len(h) != 5 {
				t.Fatalf("length: got %d, want 5", len(h))
			}
			if h.Sum() != 0 {
				t.Errorf("degenerate range should yield all-zero histogram, got %v", h)
			}
		})
	}
}

func TestScalar_InvalidBinCount(t *testing.T) {
	for _, bins := range []int{0, -1} {
		if _, err := Scalar([]float64{1}, bins, 0, 10); err == nil {
			t.Errorf("Scalar should fail for %d bins", bins)
		}
	}
}

func TestScalar_IntegerSamples(t *testing.T) {
	values := []int{0, 63, 64, 127, 128, 255}

	h, err := Scalar(values, 4, 0, 255)
	if err != nil {
		t.Fatalf("Scalar failed: %v", err)
	}

	want := Histogram{2, 2, 1, 1}
	for i := range h {
		if h[i] != want[i] {
			t.Errorf("bin %d: got %v, want %v", i, h[i], want[i])
		}
	}
}

func TestBinError_Message(t *testing.T) {
	_, err := Scalar([]float64{200}, 10, 0, 100)
	if err == nil {
		t.Fatal("expected error")
	}

	msg := err.Error()
	for _, fragment := range []string{"200", "100", "bin"} {
		if !strings.Contains(msg, fragment) {
			t.Errorf("error message %q should mention %q", msg, fragment)
		}
	}
}
