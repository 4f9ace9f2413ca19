package routing

import (
	"fmt"
	"sort"

	"github.com/y345-git/Campus-Navigation/models"
)

// BuildCampusGraph constructs the outdoor tier from the current campus
// records. Path entries whose endpoints are missing are skipped silently:
// deleting a node leaves its paths dangling in the document and they are
// dropped here on the next rebuild.
func BuildCampusGraph(doc *models.CampusDocument) *Graph {
	g := NewGraph()

	for id, b := range doc.Buildings {
		g.AddNode(Node{
			ID:          id,
			Name:        b.Name,
			Kind:        KindBuilding,
			Coordinates: b.Coordinates,
			Description: b.Description,
		})
	}
	for id, coords := range doc.Intersections {
		g.AddNode(Node{
			ID:          id,
			Name:        id,
			Kind:        KindIntersection,
			Coordinates: coords,
		})
	}

	for _, p := range doc.CampusPaths {
		a, aok := g.Node(p.Node1)
		b, bok := g.Node(p.Node2)
		if !aok || !bok {
			continue
		}
		weight := 0.0
		if p.Distance != nil {
			weight = *p.Distance
		} else {
			weight = Haversine(a.Coordinates, b.Coordinates)
		}
		g.AddEdge(p.Node1, p.Node2, weight, "")
	}

	return g
}

// InteriorNodeID returns the composite node id for a room, unique across
// buildings and floors.
func InteriorNodeID(buildingID, floorID, roomID string) string {
	return fmt.Sprintf("%s_%s_%s", buildingID, floorID, roomID)
}

// BuildInteriorGraph constructs the interior tier for one building. The
// result depends only on the document contents, so rebuilding after eviction
// yields an identical graph.
func BuildInteriorGraph(buildingID string, doc *models.InteriorDocument) *Graph {
	g := NewGraph()
	if doc == nil {
		return g
	}

	floorIDs := make([]string, 0, len(doc.Floors))
	for id := range doc.Floors {
		floorIDs = append(floorIDs, id)
	}
	sort.Strings(floorIDs)

	for _, floorID := range floorIDs {
		floor := doc.Floors[floorID]

		roomIDs := make([]string, 0, len(floor.Rooms))
		for id := range floor.Rooms {
			roomIDs = append(roomIDs, id)
		}
		sort.Strings(roomIDs)

		for _, roomID := range roomIDs {
			room := floor.Rooms[roomID]
			name := room.Name
			if name == "" {
				name = roomID
			}
			roomType := room.Type
			if roomType == "" {
				roomType = "common"
			}
			g.AddNode(Node{
				ID:          InteriorNodeID(buildingID, floorID, roomID),
				Name:        name,
				Kind:        KindRoom,
				Coordinates: room.Coordinates,
				Floor:       floorID,
				RoomType:    roomType,
			})
		}

		for _, conn := range floor.Connections {
			weight := DefaultHallwayMeters
			if conn.Distance != nil {
				weight = *conn.Distance
			}
			// AddEdge skips connections naming missing rooms.
			g.AddEdge(
				InteriorNodeID(buildingID, floorID, conn.Room1),
				InteriorNodeID(buildingID, floorID, conn.Room2),
				weight, ConnHallway,
			)
		}
	}

	for _, stairs := range doc.VerticalConnections.Stairs {
		addVerticalChain(g, buildingID, stairs, ConnStairs, StairsCost)
	}
	for _, elevator := range doc.VerticalConnections.Elevators {
		addVerticalChain(g, buildingID, elevator, ConnElevator, ElevatorCost)
	}

	return g
}

// addVerticalChain materializes one node per floor the connection touches and
// links consecutive entries of the authored floor list with a fixed cost.
// The list order determines chain adjacency; it is not sorted by level.
func addVerticalChain(g *Graph, buildingID string, conn models.VerticalConnection, kind string, cost float64) {
	connID := conn.ID
	if connID == "" {
		connID = "1"
	}

	nodeIDs := make([]string, 0, len(conn.Floors))
	for _, floorID := range conn.Floors {
		nodeID := fmt.Sprintf("%s_%s_%s_%s", buildingID, floorID, kind, connID)
		if !g.HasNode(nodeID) {
			name := conn.Name
			if name == "" {
				if kind == ConnStairs {
					name = "Stairs " + connID
				} else {
					name = "Elevator " + connID
				}
			}
			g.AddNode(Node{
				ID:          nodeID,
				Name:        fmt.Sprintf("%s (Floor %s)", name, floorID),
				Kind:        KindVertical,
				Coordinates: conn.Location,
				Floor:       floorID,
				RoomType:    kind,
			})
		}
		nodeIDs = append(nodeIDs, nodeID)
	}

	for i := 0; i+1 < len(nodeIDs); i++ {
		g.AddEdge(nodeIDs[i], nodeIDs[i+1], cost, kind)
	}
}
