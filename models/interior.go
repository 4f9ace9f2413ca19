package models

import (
	"encoding/json"
	"fmt"
)

// Room is a navigable point on a floor. Coordinates are planar [x, y] local
// to the floor plan, not geographic.
type Room struct {
	Name        string     `json:"name"`
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

// RoomConnection is an intra-floor hallway edge between two rooms. Distance
// is optional; omitted connections default to a fixed hallway length.
//
// On-disk form mirrors PathEntry: ["room1", "room2"] or ["room1", "room2", 12].
type RoomConnection struct {
	Room1    string
	Room2    string
	Distance *float64
}

func (c RoomConnection) MarshalJSON() ([]byte, error) {
	if c.Distance != nil {
		return json.Marshal([3]interface{}{c.Room1, c.Room2, *c.Distance})
	}
	return json.Marshal([2]string{c.Room1, c.Room2})
}

func (c *RoomConnection) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) < 2 {
		return fmt.Errorf("room connection needs two rooms, got %d elements", len(raw))
	}
	if err := json.Unmarshal(raw[0], &c.Room1); err != nil {
		return err
	}
	if err := json.Unmarshal(raw[1], &c.Room2); err != nil {
		return err
	}
	c.Distance = nil
	if len(raw) > 2 {
		var d float64
		if err := json.Unmarshal(raw[2], &d); err != nil {
			return err
		}
		c.Distance = &d
	}
	return nil
}

// FloorPlan carries rendering dimensions only; pathfinding never reads it.
type FloorPlan struct {
	Width              float64 `json:"width"`
	Height             float64 `json:"height"`
	ScaleMetersPerUnit float64 `json:"scale_meters_per_unit"`
}

type Floor struct {
	Name        string           `json:"name"`
	Level       int              `json:"level"`
	Rooms       map[string]Room  `json:"rooms"`
	Connections []RoomConnection `json:"connections"`
	Entrances   []string         `json:"entrances"`
	FloorPlan   FloorPlan        `json:"floor_plan"`
}

// VerticalConnection is a stairs or elevator shaft. Floors lists the floor
// ids it touches in authored order; only consecutive entries of that list are
// linked in the interior graph, so the list must be in physical floor order.
type VerticalConnection struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Floors   []string   `json:"floors"`
	Location [2]float64 `json:"location"`
}

type VerticalConnections struct {
	Stairs    []VerticalConnection `json:"stairs"`
	Elevators []VerticalConnection `json:"elevators"`
}

type RoomTypeStyle struct {
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// InteriorDocument is one building's interior configuration, persisted as a
// standalone JSON document keyed by building id.
type InteriorDocument struct {
	BuildingID          string                   `json:"building_id"`
	BuildingName        string                   `json:"building_name"`
	Floors              map[string]Floor         `json:"floors"`
	VerticalConnections VerticalConnections      `json:"vertical_connections"`
	RoomTypes           map[string]RoomTypeStyle `json:"room_types"`
}
