package timefeed

// labelStyle selects how a zone's suffix label is derived from an instant.
type labelStyle string

const (
	// labelAbbrev uses the platform abbreviation for the instant (EST, GMT,
	// PDT, ...), falling back to the offset form when the platform only has
	// a numeric name for the zone.
	labelAbbrev labelStyle = "abbrev"
	// labelOffset always renders the instant's UTC offset as GMT+N.
	labelOffset labelStyle = "offset"
)

// Zone is one row of the panel: a display name bound to an IANA zone
// identifier. The set is fixed; nothing is added or removed at runtime.
type Zone struct {
	Name  string
	TZ    string
	label labelStyle
}

// zones is the fixed display set, in render order. "Local" resolves to the
// host's own zone via time.LoadLocation.
var zones = []Zone{
	{Name: "New York", TZ: "America/New_York", label: labelAbbrev},
	{Name: "London", TZ: "Europe/London", label: labelAbbrev},
	{Name: "Tokyo", TZ: "Asia/Tokyo", label: labelOffset},
	{Name: "Sydney", TZ: "Australia/Sydney", label: labelOffset},
	{Name: "Dubai", TZ: "Asia/Dubai", label: labelOffset},
	{Name: "Los Angeles", TZ: "America/Los_Angeles", label: labelAbbrev},
	{Name: "Local Time", TZ: "Local", label: labelAbbrev},
}

// Zones returns the fixed zone set in render order. Callers must not
// mutate the returned slice.
func Zones() []Zone {
	out := make([]Zone, len(zones))
	copy(out, zones)
	return out
}
