package play

// Zone is the coarse field-position bucket used for filtering.
type Zone string

const (
	ZoneUnknown      Zone = "unknown"
	ZoneRedzone      Zone = "redzone"
	ZoneMidfield     Zone = "midfield"
	ZoneOwnTerritory Zone = "own_territory"
)

// Zones lists the known (non-unknown) buckets in filter order.
func Zones() []Zone {
	return []Zone{ZoneRedzone, ZoneMidfield, ZoneOwnTerritory}
}

// ZoneFor buckets an absolute field position. Boundaries are inclusive on
// the lower category: 20 is still redzone, 50 is still midfield.
func ZoneFor(yardline *float64) Zone {
	switch {
	case yardline == nil:
		return ZoneUnknown
	case *yardline <= 20:
		return ZoneRedzone
	case *yardline <= 50:
		return ZoneMidfield
	default:
		return ZoneOwnTerritory
	}
}
