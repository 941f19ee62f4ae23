// Package jurisdiction owns the police station → zone mapping.
//
// The directory is the single authoritative source for zone membership; the
// scope evaluator resolves through it and through nothing else.
package jurisdiction

import (
	"sort"
	"strings"
	"sync"
)

// Directory maps police stations to zones and divisions.
type Directory struct {
	mu       sync.RWMutex
	stations map[string]entry // keyed by normalized station name
}

type entry struct {
	station  string
	zone     string
	division string
}

// NewDirectory returns an empty directory. Use Register (or seed.Demarcation)
// to populate it.
func NewDirectory() *Directory {
	return &Directory{stations: make(map[string]entry)}
}

// Register adds or replaces a station's zone/division assignment.
func (d *Directory) Register(station, division, zone string) {
	station = strings.TrimSpace(station)
	if station == "" || zone == "" {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stations[normalize(station)] = entry{station: station, zone: zone, division: division}
}

// ZoneOf resolves a station to its zone. Lookup is case-insensitive; unknown
// stations resolve to ("", false) so callers stay fail-closed.
func (d *Directory) ZoneOf(station string) (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	e, ok := d.stations[normalize(station)]
	if !ok {
		return "", false
	}
	return e.zone, true
}

// DivisionOf resolves a station to its ACP division.
func (d *Directory) DivisionOf(station string) (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	e, ok := d.stations[normalize(station)]
	if !ok {
		return "", false
	}
	return e.division, true
}

// Stations lists the stations of a zone, sorted for stable output.
func (d *Directory) Stations(zone string) []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	var out []string
	for _, e := range d.stations {
		if e.zone == zone {
			out = append(out, e.station)
		}
	}
	sort.Strings(out)
	return out
}

// Zones lists all known zones, sorted.
func (d *Directory) Zones() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	seen := make(map[string]struct{})
	for _, e := range d.stations {
		seen[e.zone] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for z := range seen {
		out = append(out, z)
	}
	sort.Strings(out)
	return out
}

func normalize(station string) string {
	return strings.ToLower(strings.TrimSpace(station))
}
