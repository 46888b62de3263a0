package youtube

import "testing"

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"minutes and seconds", "PT1M30S", 90},
		{"days and hours", "P1DT2H", 93600},
		{"zero seconds", "PT0S", 0},
		{"seconds only", "PT45S", 45},
		{"hours minutes seconds", "PT1H2M3S", 3723},
		{"exactly one minute", "PT1M", 60},
		{"long video", "PT11H59M59S", 43199},
		{"garbage", "garbage", 0},
		{"empty", "", 0},
		{"missing T marker", "P1D", 0},
		{"bare T", "PT", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseDuration(tt.input); got != tt.want {
				t.Errorf("ParseDuration(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}
