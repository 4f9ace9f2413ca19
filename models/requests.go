package models

// Mutation and query payloads. Coordinates arrive as loose JSON arrays so the
// editor can reject malformed shapes explicitly instead of silently zeroing.

type BuildingRequest struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Coordinates []float64 `json:"coordinates"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
}

type IntersectionRequest struct {
	ID          string    `json:"id"`
	Coordinates []float64 `json:"coordinates"`
}

type PathRequest struct {
	Node1    string   `json:"node1"`
	Node2    string   `json:"node2"`
	Distance *float64 `json:"distance,omitempty"`
}

type RouteRequest struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type InteriorRouteRequest struct {
	StartRoom string `json:"start_room"`
	EndRoom   string `json:"end_room"`
}

type RoomRouteRequest struct {
	StartBuilding string `json:"start_building"`
	EndBuilding   string `json:"end_building"`
	EndRoom       string `json:"end_room"`
}

type LoginRequest struct {
	Password string `json:"password"`
}

// IntersectionInfo is the listing form of an intersection record.
type IntersectionInfo struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Coordinates [2]float64 `json:"coordinates"`
}

// PathInfo is the listing form of a configured path. ID is the entry's index
// in the campus document, which is also the delete handle.
type PathInfo struct {
	ID        int     `json:"id"`
	Node1     string  `json:"node1"`
	Node2     string  `json:"node2"`
	Node1Name string  `json:"node1_name"`
	Node2Name string  `json:"node2_name"`
	Distance  float64 `json:"distance"`
}
