package timefeed

import (
	"fmt"
	"time"
)

// RefreshInterval is the recurring recomputation period once the feed is
// aligned to a minute boundary.
const RefreshInterval = time.Minute

// Entry is one formatted row of a snapshot.
type Entry struct {
	Name string
	Time string
}

// Snapshot is the complete formatted mapping for one tick, in fixed zone
// order. Each tick fully replaces the previous snapshot; no history is kept.
type Snapshot []Entry

// Get returns the formatted time for a display name.
func (s Snapshot) Get(name string) (string, bool) {
	for _, e := range s {
		if e.Name == name {
			return e.Time, true
		}
	}
	return "", false
}

// Feed computes snapshots for the fixed zone set. Locations are resolved
// once at construction; an unknown identifier is a construction error.
type Feed struct {
	clock Clock
	zones []Zone
	locs  []*time.Location
}

// New resolves every zone in the fixed set against the host's zone
// database. Resolution failures propagate to the caller; there is no
// fallback for a broken identifier.
func New(clock Clock) (*Feed, error) {
	if clock == nil {
		clock = SystemClock{}
	}
	f := &Feed{clock: clock, zones: Zones()}
	f.locs = make([]*time.Location, len(f.zones))
	for i, z := range f.zones {
		loc, err := time.LoadLocation(z.TZ)
		if err != nil {
			return nil, fmt.Errorf("load zone %q: %w", z.TZ, err)
		}
		f.locs[i] = loc
	}
	return f, nil
}

// Now reports the feed clock's current instant.
func (f *Feed) Now() time.Time { return f.clock.Now() }

// Take recomputes the full snapshot for the current instant. The result
// always holds exactly the fixed zones, in order.
func (f *Feed) Take() Snapshot {
	now := f.clock.Now()
	out := make(Snapshot, len(f.zones))
	for i, z := range f.zones {
		out[i] = Entry{Name: z.Name, Time: Format(now.In(f.locs[i]), z)}
	}
	return out
}

// AlignDelay returns the time remaining until the next minute boundary.
// At second 37 of a minute this is 23s; at an exact boundary it is a full
// minute, so ticks never double-fire on the same boundary.
func AlignDelay(now time.Time) time.Duration {
	return time.Duration(60-now.Second())*time.Second - time.Duration(now.Nanosecond())
}

// Format renders an instant already converted to a zone's location as a
// zero-padded 12-hour clock string with the zone's suffix label, e.g.
// "09:05 AM EST".
func Format(t time.Time, z Zone) string {
	return t.Format("03:04 PM") + " " + label(t, z)
}

// label derives the suffix for an instant in a zone. Offset zones always
// get the computed GMT form; abbreviation zones use the platform name for
// the instant so the suffix tracks daylight saving, with the offset form
// as fallback when the platform name is numeric (e.g. "+0530").
func label(t time.Time, z Zone) string {
	if z.label == labelOffset {
		return gmtLabel(t)
	}
	name, _ := t.Zone()
	if name == "" || name[0] == '+' || name[0] == '-' {
		return gmtLabel(t)
	}
	return name
}

// gmtLabel renders an instant's UTC offset as GMT+N, with minutes kept
// only for zones that are not whole hours (GMT+5:30).
func gmtLabel(t time.Time) string {
	_, offset := t.Zone()
	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}
	h := offset / 3600
	m := offset % 3600 / 60
	if m == 0 {
		return fmt.Sprintf("GMT%s%d", sign, h)
	}
	return fmt.Sprintf("GMT%s%d:%02d", sign, h, m)
}
