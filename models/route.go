package models

// RouteStep describes one node along a computed route. DistanceToNext is
// absent on the final step. ConnectionType is set for interior routes only
// (hallway, stairs, elevator).
type RouteStep struct {
	NodeID         string     `json:"node_id"`
	Name           string     `json:"name"`
	Type           string     `json:"type"`
	Step           int        `json:"step"`
	Coordinates    [2]float64 `json:"coordinates"`
	DistanceToNext *float64   `json:"distance_to_next,omitempty"`
	ConnectionType string     `json:"connection_type,omitempty"`
}

// RouteResult is a single-tier route. On failure Success is false, Error
// names both endpoints and the remaining fields are empty.
type RouteResult struct {
	Success           bool         `json:"success"`
	Error             string       `json:"error,omitempty"`
	Path              []string     `json:"path"`
	Coordinates       [][2]float64 `json:"coordinates"`
	TotalDistance     float64      `json:"total_distance"`
	PathDetails       []RouteStep  `json:"path_details"`
	StartName         string       `json:"start_name,omitempty"`
	EndName           string       `json:"end_name,omitempty"`
	EstimatedWalkTime int          `json:"estimated_walk_time"`
}

// CompositeRouteResult chains an outdoor route with an interior route to
// reach a room in the destination building. Both legs are retained for
// inspection.
type CompositeRouteResult struct {
	Success       bool         `json:"success"`
	Error         string       `json:"error,omitempty"`
	CampusRoute   *RouteResult `json:"campus_route,omitempty"`
	InteriorRoute *RouteResult `json:"interior_route,omitempty"`
	TotalDistance float64      `json:"total_distance"`
	TotalWalkTime int          `json:"total_walk_time"`
}

// Destination is one reachable building from a given start, with the
// shortest-path distance and derived walk time.
type Destination struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Distance    float64    `json:"distance"`
	WalkTime    int        `json:"walk_time"`
	Coordinates [2]float64 `json:"coordinates"`
	Description string     `json:"description"`
}

// RoomInfo is the flattened listing form of a room for API consumers.
type RoomInfo struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	Floor     string `json:"floor"`
	FloorName string `json:"floor_name"`
}

type GraphInfo struct {
	TotalNodes         int  `json:"total_nodes"`
	TotalEdges         int  `json:"total_edges"`
	BuildingsCount     int  `json:"buildings_count"`
	IntersectionsCount int  `json:"intersections_count"`
	IsConnected        bool `json:"is_connected"`
}
