package youtube

import (
	"testing"

	"github.com/radhakrishnanganapathy/YTAnalyis/internal/model"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		seconds int
		want    model.FormatType
	}{
		{"zero duration", 0, model.FormatShorts},
		{"thirty seconds", 30, model.FormatShorts},
		{"exactly sixty", 60, model.FormatShorts},
		{"sixty one", 61, model.FormatVideo},
		{"ten minutes", 600, model.FormatVideo},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.seconds); got != tt.want {
				t.Errorf("Classify(%d) = %q, want %q", tt.seconds, got, tt.want)
			}
		})
	}
}
