package format

import (
	"testing"

	"github.com/JaimedeAnoWork/Southern-Metropolitan/pkg/series"
)

func TestCount(t *testing.T) {
	cases := map[float64]string{
		0:      "0",
		608:    "608",
		15800:  "15,800",
		247950: "247,950",
		-200:   "-200",
		130909: "130,909",
		1e6:    "1,000,000",
		2399.6: "2,400",
	}
	for in, want := range cases {
		if got := Count(in); got != want {
			t.Errorf("Count(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestPercentNeverFraction(t *testing.T) {
	if got := Percent(0.55); got != "55%" {
		t.Errorf("Percent(0.55) = %q, want 55%%", got)
	}
	if got := Scale(0.55); got != 55 {
		t.Errorf("Scale(0.55) = %v, want 55", got)
	}
	if got := Percent(0.8); got != "80%" {
		t.Errorf("Percent(0.8) = %q, want 80%%", got)
	}
}

func TestValueByUnit(t *testing.T) {
	tests := []struct {
		v    float64
		unit series.Unit
		want string
	}{
		{15800, series.UnitCount, "15,800"},
		{0.57, series.UnitRatio, "57%"},
		{25, series.UnitPercent, "25%"},
	}
	for _, tt := range tests {
		if got := Value(tt.v, tt.unit); got != tt.want {
			t.Errorf("Value(%v, %s) = %q, want %q", tt.v, tt.unit, got, tt.want)
		}
	}
}

func TestSliceLabel(t *testing.T) {
	if got := SliceLabel("Local Growth Can Provide", 4200, 5369); got != "Local Growth Can Provide: 78%" {
		t.Errorf("SliceLabel = %q", got)
	}
	if got := SliceLabel("Migration Required", 5500, 26500); got != "Migration Required: 21%" {
		t.Errorf("SliceLabel = %q", got)
	}
	if got := SliceLabel("empty", 0, 0); got != "empty: 0%" {
		t.Errorf("SliceLabel = %q", got)
	}
}

func TestMoney(t *testing.T) {
	if got := Money(30); got != "$30M" {
		t.Errorf("Money(30) = %q", got)
	}
	if got := Money(2500); got != "$2.50B" {
		t.Errorf("Money(2500) = %q", got)
	}
}
