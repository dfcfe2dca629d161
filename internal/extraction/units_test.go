package extraction

import "testing"

func TestCanonicalUnit(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"kg", "kg"},
		{"KG", "kg"},
		{"kgs", "kg"},
		{"kilogram", "kg"},
		{"kilograms", "kg"},
		{"gram", "g"},
		{"grams", "g"},
		{"carton", "carton"},
		{"Cartons", "carton"},
		{"bottle", "bottle"},
		{"bottles", "bottle"},
		{"pack", "pack"},
		{"packs", "pack"},
		{"package", "pack"},
		{"packages", "pack"},
		{"litre", "l"},
		{"liters", "l"},
		{"l", "l"},
		{"metre", "m"},
		{"meters", "m"},
		{"m", "m"},
		{"hour", "hr"},
		{"hrs", "hr"},
		{"item", "item"},
		{"items", "item"},
		{"box", "box"},
		{"boxes", "box"},
		{"pieces", "piece"},
		{"units", "unit"},
		{"bags", "bag"},
		{"goods", "item"},
		{"  Bottles  ", "bottle"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := CanonicalUnit(tt.raw); got != tt.want {
			t.Errorf("CanonicalUnit(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}
