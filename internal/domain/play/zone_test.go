package play

import "testing"

func fptr(v float64) *float64 { return &v }

func TestZoneFor(t *testing.T) {
	cases := []struct {
		name     string
		yardline *float64
		want     Zone
	}{
		{"nil yardline", nil, ZoneUnknown},
		{"goal line", fptr(0), ZoneRedzone},
		{"redzone boundary", fptr(20), ZoneRedzone},
		{"just past redzone", fptr(20.01), ZoneMidfield},
		{"midfield boundary", fptr(50), ZoneMidfield},
		{"just past midfield", fptr(50.01), ZoneOwnTerritory},
		{"deep own territory", fptr(95), ZoneOwnTerritory},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ZoneFor(tc.yardline); got != tc.want {
				t.Fatalf("ZoneFor = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestZones(t *testing.T) {
	zones := Zones()
	if len(zones) != 3 {
		t.Fatalf("unexpected zone count: %d", len(zones))
	}
	if zones[0] != ZoneRedzone || zones[1] != ZoneMidfield || zones[2] != ZoneOwnTerritory {
		t.Fatalf("unexpected zone order: %+v", zones)
	}
}
