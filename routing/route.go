package routing

import "github.com/y345-git/Campus-Navigation/models"

// BuildRoute runs the shortest-path engine between two nodes and assembles
// the structured route: node sequence, coordinates, per-step details and
// totals. A missing endpoint or disconnected pair produces a failure result
// naming both endpoints; this boundary never panics.
func BuildRoute(g *Graph, start, end string) models.RouteResult {
	path, total, ok := g.ShortestPath(start, end)
	if !ok {
		return models.RouteResult{
			Success:     false,
			Error:       "No route found between " + start + " and " + end,
			Coordinates: [][2]float64{},
			PathDetails: []models.RouteStep{},
		}
	}

	coordinates := make([][2]float64, 0, len(path))
	details := make([]models.RouteStep, 0, len(path))
	for i, nodeID := range path {
		node, _ := g.Node(nodeID)
		coordinates = append(coordinates, node.Coordinates)

		step := models.RouteStep{
			NodeID:      nodeID,
			Name:        node.Name,
			Type:        node.Kind,
			Step:        i + 1,
			Coordinates: node.Coordinates,
		}
		if i < len(path)-1 {
			if weight, kind, ok := g.Edge(nodeID, path[i+1]); ok {
				d := round1(weight)
				step.DistanceToNext = &d
				step.ConnectionType = kind
			}
		}
		details = append(details, step)
	}

	result := models.RouteResult{
		Success:           true,
		Path:              path,
		Coordinates:       coordinates,
		TotalDistance:     round1(total),
		PathDetails:       details,
		EstimatedWalkTime: WalkTimeMinutes(total),
	}
	if n, ok := g.Node(start); ok {
		result.StartName = n.Name
	}
	if n, ok := g.Node(end); ok {
		result.EndName = n.Name
	}
	return result
}
