package models

import (
	"encoding/json"
	"fmt"
)

// Building is a campus building record as stored in the campus document.
// Coordinates are [latitude, longitude] in degrees.
type Building struct {
	Name        string     `json:"name"`
	Coordinates [2]float64 `json:"coordinates"`
	Description string     `json:"description"`
	Type        string     `json:"type"`
}

// PathEntry is one configured walkway between two nodes. Distance is optional;
// when nil the weight is derived from the endpoint coordinates at build time.
//
// The on-disk form is a JSON array: ["node1", "node2"] or ["node1", "node2", 42.5].
type PathEntry struct {
	Node1    string
	Node2    string
	Distance *float64
}

func (p PathEntry) MarshalJSON() ([]byte, error) {
	if p.Distance != nil {
		return json.Marshal([3]interface{}{p.Node1, p.Node2, *p.Distance})
	}
	return json.Marshal([2]string{p.Node1, p.Node2})
}

func (p *PathEntry) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) < 2 {
		return fmt.Errorf("path entry needs at least two nodes, got %d elements", len(raw))
	}
	if err := json.Unmarshal(raw[0], &p.Node1); err != nil {
		return err
	}
	if err := json.Unmarshal(raw[1], &p.Node2); err != nil {
		return err
	}
	p.Distance = nil
	if len(raw) > 2 {
		var d float64
		if err := json.Unmarshal(raw[2], &d); err != nil {
			return err
		}
		p.Distance = &d
	}
	return nil
}

// Connects reports whether the entry joins a and b in either direction.
func (p PathEntry) Connects(a, b string) bool {
	return (p.Node1 == a && p.Node2 == b) || (p.Node1 == b && p.Node2 == a)
}

// Touches reports whether the entry references the given node.
func (p PathEntry) Touches(id string) bool {
	return p.Node1 == id || p.Node2 == id
}

type MapSettings struct {
	CenterCoordinates [2]float64 `json:"center_coordinates"`
	MapBoundsKm       float64    `json:"map_bounds_km"`
	ZoomLevel         int        `json:"zoom_level"`
}

type AdminSettings struct {
	AdminPassword       string `json:"admin_password"`
	SessionTimeoutHours int    `json:"session_timeout_hours"`
}

// CampusDocument is the full campus configuration: the record store the
// outdoor graph is built from, plus map and admin settings. It is persisted
// as a single JSON document.
type CampusDocument struct {
	MapSettings   MapSettings           `json:"map_settings"`
	AdminSettings AdminSettings         `json:"admin_settings"`
	Buildings     map[string]Building   `json:"buildings"`
	Intersections map[string][2]float64 `json:"intersections"`
	CampusPaths   []PathEntry           `json:"campus_paths"`
}

// Clone returns a deep copy. Mutations are applied to a clone and persisted
// before the served records are swapped.
func (d *CampusDocument) Clone() *CampusDocument {
	out := &CampusDocument{
		MapSettings:   d.MapSettings,
		AdminSettings: d.AdminSettings,
		Buildings:     make(map[string]Building, len(d.Buildings)),
		Intersections: make(map[string][2]float64, len(d.Intersections)),
		CampusPaths:   make([]PathEntry, 0, len(d.CampusPaths)),
	}
	for id, b := range d.Buildings {
		out.Buildings[id] = b
	}
	for id, c := range d.Intersections {
		out.Intersections[id] = c
	}
	for _, p := range d.CampusPaths {
		cp := p
		if p.Distance != nil {
			dist := *p.Distance
			cp.Distance = &dist
		}
		out.CampusPaths = append(out.CampusPaths, cp)
	}
	return out
}
