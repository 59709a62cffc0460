package celestial

import "testing"

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
		ok   bool
	}{
		{"Star", Star, true},
		{"Planet", Planet, true},
		{"Moon", Moon, true},
		{"DwarfPlanet", DwarfPlanet, true},
		{"Asteroid", Asteroid, true},
		{"Comet", Comet, true},
		{"Galaxy", 0, false},
		{"planet", 0, false},
		{"STAR", 0, false},
		{"dwarfplanet", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseKind(tt.in)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("ParseKind(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestKindString(t *testing.T) {
	for k := Star; k <= Comet; k++ {
		back, ok := ParseKind(k.String())
		if !ok || back != k {
			t.Errorf("ParseKind(%v.String()) = %v, %v", k, back, ok)
		}
	}
	if got := Kind(42).String(); got != "Kind(42)" {
		t.Errorf("Kind(42).String() = %q", got)
	}
}
