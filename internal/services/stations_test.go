package services

import (
	"testing"
)

func TestStationsByCity(t *testing.T) {
	tests := []struct {
		name     string
		city     string
		contains string
		empty    bool
	}{
		{
			name:     "known city",
			city:     "Mira Road",
			contains: "Bhayander",
		},
		{
			name:  "unknown city",
			city:  "Atlantis",
			empty: true,
		},
		{
			name:  "lookup is case sensitive",
			city:  "mumbai",
			empty: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stations := StationsByCity(tt.city)
			if tt.empty {
				if len(stations) != 0 {
					t.Errorf("StationsByCity(%q) = %v; want empty", tt.city, stations)
				}
				return
			}
			found := false
			for _, s := range stations {
				if s == tt.contains {
					found = true
				}
			}
			if !found {
				t.Errorf("StationsByCity(%q) = %v; want to contain %q", tt.city, stations, tt.contains)
			}
		})
	}
}

func TestLocalitiesByCity(t *testing.T) {
	localities := LocalitiesByCity("Pune")
	if len(localities) == 0 {
		t.Fatal("expected localities for Pune")
	}
	if len(LocalitiesByCity("Atlantis")) != 0 {
		t.Error("unknown city should return nothing")
	}
}
