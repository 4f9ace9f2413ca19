package services

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/y345-git/Campus-Navigation/models"
	"github.com/y345-git/Campus-Navigation/routing"
)

// fallbackEntrance is used when a building's interior configures no entrance
// rooms at all.
const fallbackEntrance = "main_entrance"

// Navigator answers route queries over a swappable campus graph snapshot.
// Queries read the graph reference under a short read lock and then run on
// that immutable snapshot; mutations build a fresh graph and swap it in
// whole, so a query sees either the old graph or the new one, never a
// half-rebuilt state.
type Navigator struct {
	log       *zap.Logger
	interiors *InteriorCache

	mu        sync.RWMutex
	graph     *routing.Graph
	buildings map[string]models.Building
}

func NewNavigator(doc *models.CampusDocument, interiors *InteriorCache, log *zap.Logger) *Navigator {
	n := &Navigator{log: log, interiors: interiors}
	n.Swap(doc)
	return n
}

// Swap rebuilds the campus graph from the given records and publishes it.
func (n *Navigator) Swap(doc *models.CampusDocument) {
	graph := routing.BuildCampusGraph(doc)
	buildings := make(map[string]models.Building, len(doc.Buildings))
	for id, b := range doc.Buildings {
		buildings[id] = b
	}

	n.mu.Lock()
	n.graph = graph
	n.buildings = buildings
	n.mu.Unlock()

	n.log.Info("campus graph rebuilt",
		zap.Int("nodes", graph.NodeCount()),
		zap.Int("edges", graph.EdgeCount()))
}

func (n *Navigator) snapshot() (*routing.Graph, map[string]models.Building) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.graph, n.buildings
}

func (n *Navigator) HasBuilding(id string) bool {
	_, buildings := n.snapshot()
	_, ok := buildings[id]
	return ok
}

func (n *Navigator) BuildingName(id string) (string, bool) {
	_, buildings := n.snapshot()
	b, ok := buildings[id]
	if !ok {
		return "", false
	}
	return b.Name, true
}

// Buildings lists all building records for API consumers.
func (n *Navigator) Buildings() []models.Destination {
	_, buildings := n.snapshot()
	out := make([]models.Destination, 0, len(buildings))
	for id, b := range buildings {
		out = append(out, models.Destination{
			ID:          id,
			Name:        b.Name,
			Coordinates: b.Coordinates,
			Description: b.Description,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// FindRoute computes the outdoor route between two campus nodes.
func (n *Navigator) FindRoute(start, end string) models.RouteResult {
	graph, _ := n.snapshot()
	return routing.BuildRoute(graph, start, end)
}

// Destinations lists every building reachable from start, sorted by shortest
// distance.
func (n *Navigator) Destinations(start string) ([]models.Destination, error) {
	graph, buildings := n.snapshot()
	if _, ok := buildings[start]; !ok {
		return nil, fmt.Errorf("building %s: %w", start, models.ErrNotFound)
	}

	out := make([]models.Destination, 0, len(buildings))
	for id, b := range buildings {
		if id == start {
			continue
		}
		_, dist, ok := graph.ShortestPath(start, id)
		if !ok {
			continue
		}
		out = append(out, models.Destination{
			ID:          id,
			Name:        b.Name,
			Distance:    math.Round(dist*10) / 10,
			WalkTime:    routing.WalkTimeMinutes(dist),
			Coordinates: b.Coordinates,
			Description: b.Description,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Distance < out[j].Distance })
	return out, nil
}

// GraphInfo reports the current outdoor graph shape, including whether the
// campus is a single connected component.
func (n *Navigator) GraphInfo() models.GraphInfo {
	graph, buildings := n.snapshot()
	return models.GraphInfo{
		TotalNodes:         graph.NodeCount(),
		TotalEdges:         graph.EdgeCount(),
		BuildingsCount:     len(buildings),
		IntersectionsCount: graph.NodeCount() - len(buildings),
		IsConnected:        graph.Connected(),
	}
}

// InteriorDocument returns a building's interior configuration (the default
// layout if none has been saved).
func (n *Navigator) InteriorDocument(buildingID string) (*models.InteriorDocument, error) {
	name, ok := n.BuildingName(buildingID)
	if !ok {
		return nil, fmt.Errorf("building %s: %w", buildingID, models.ErrNotFound)
	}
	entry, err := n.interiors.Get(buildingID, name)
	if err != nil {
		return nil, err
	}
	return entry.doc, nil
}

// BuildingRooms lists all rooms of a building across its floors.
func (n *Navigator) BuildingRooms(buildingID string) ([]models.RoomInfo, error) {
	doc, err := n.InteriorDocument(buildingID)
	if err != nil {
		return nil, err
	}

	out := []models.RoomInfo{}
	for _, floorID := range sortedFloorIDs(doc) {
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
			out = append(out, models.RoomInfo{
				ID:        routing.InteriorNodeID(buildingID, floorID, roomID),
				Name:      name,
				Type:      room.Type,
				Floor:     floorID,
				FloorName: floor.Name,
			})
		}
	}
	return out, nil
}

// FindInteriorRoute computes a route between two rooms of one building. Room
// references may be full composite ids, bare room ids, or display names.
func (n *Navigator) FindInteriorRoute(buildingID, startRoom, endRoom string) (models.RouteResult, error) {
	name, ok := n.BuildingName(buildingID)
	if !ok {
		return models.RouteResult{}, fmt.Errorf("building %s: %w", buildingID, models.ErrNotFound)
	}
	entry, err := n.interiors.Get(buildingID, name)
	if err != nil {
		return models.RouteResult{}, err
	}

	startID, ok := resolveRoom(buildingID, entry.doc, startRoom)
	if !ok {
		return roomNotFound(buildingID, startRoom), nil
	}
	endID, ok := resolveRoom(buildingID, entry.doc, endRoom)
	if !ok {
		return roomNotFound(buildingID, endRoom), nil
	}

	return routing.BuildRoute(entry.graph, startID, endID), nil
}

// FindCampusToRoomRoute chains the outdoor route to the destination building
// with the best interior route from one of its entrances to the target room.
func (n *Navigator) FindCampusToRoomRoute(startBuilding, endBuilding, endRoom string) (models.CompositeRouteResult, error) {
	campus := n.FindRoute(startBuilding, endBuilding)
	if !campus.Success {
		return models.CompositeRouteResult{
			Success:     false,
			Error:       campus.Error,
			CampusRoute: &campus,
		}, nil
	}

	name, _ := n.BuildingName(endBuilding)
	entry, err := n.interiors.Get(endBuilding, name)
	if err != nil {
		return models.CompositeRouteResult{}, err
	}

	interior := n.bestEntranceRoute(endBuilding, entry, endRoom)

	result := models.CompositeRouteResult{
		Success:       campus.Success && interior.Success,
		CampusRoute:   &campus,
		InteriorRoute: &interior,
		TotalWalkTime: campus.EstimatedWalkTime + interior.EstimatedWalkTime,
	}
	total := campus.TotalDistance
	if interior.Success {
		total += interior.TotalDistance
	} else {
		result.Error = interior.Error
	}
	result.TotalDistance = math.Round(total*10) / 10
	return result, nil
}

// bestEntranceRoute tries every configured entrance of the building and keeps
// the interior route with the minimum total distance; on a tie the first
// entrance in enumeration order wins.
func (n *Navigator) bestEntranceRoute(buildingID string, entry *interiorEntry, endRoom string) models.RouteResult {
	roomID, ok := resolveRoom(buildingID, entry.doc, endRoom)
	if !ok {
		return roomNotFound(buildingID, endRoom)
	}

	entrances := entranceRooms(buildingID, entry.doc)
	if len(entrances) == 0 {
		entrances = []string{fallbackEntrance}
	}

	var best models.RouteResult
	for _, entrance := range entrances {
		route := routing.BuildRoute(entry.graph, entrance, roomID)
		if !route.Success {
			continue
		}
		if !best.Success || route.TotalDistance < best.TotalDistance {
			best = route
		}
	}
	if !best.Success {
		return models.RouteResult{
			Success:     false,
			Error:       fmt.Sprintf("No interior route found to %s in %s", endRoom, buildingID),
			Coordinates: [][2]float64{},
			PathDetails: []models.RouteStep{},
		}
	}
	return best
}

// InvalidateInterior evicts a building's cached interior graph.
func (n *Navigator) InvalidateInterior(buildingID string) {
	n.interiors.Invalidate(buildingID)
}

func sortedFloorIDs(doc *models.InteriorDocument) []string {
	ids := make([]string, 0, len(doc.Floors))
	for id := range doc.Floors {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// entranceRooms returns the composite node ids of all configured entrance
// rooms, floors in sorted order and entrances in authored order within a
// floor.
func entranceRooms(buildingID string, doc *models.InteriorDocument) []string {
	var out []string
	for _, floorID := range sortedFloorIDs(doc) {
		for _, entranceID := range doc.Floors[floorID].Entrances {
			out = append(out, routing.InteriorNodeID(buildingID, floorID, entranceID))
		}
	}
	return out
}

// resolveRoom maps a room reference to its composite node id. The reference
// may be the full composite id, a bare room id, or a display name; matching
// is case-insensitive and the first hit in sorted floor/room order wins.
func resolveRoom(buildingID string, doc *models.InteriorDocument, ref string) (string, bool) {
	for _, floorID := range sortedFloorIDs(doc) {
		floor := doc.Floors[floorID]
		roomIDs := make([]string, 0, len(floor.Rooms))
		for id := range floor.Rooms {
			roomIDs = append(roomIDs, id)
		}
		sort.Strings(roomIDs)
		for _, roomID := range roomIDs {
			full := routing.InteriorNodeID(buildingID, floorID, roomID)
			if strings.EqualFold(ref, full) ||
				strings.EqualFold(ref, roomID) ||
				strings.EqualFold(ref, floor.Rooms[roomID].Name) {
				return full, true
			}
		}
	}
	return "", false
}

func roomNotFound(buildingID, room string) models.RouteResult {
	return models.RouteResult{
		Success:     false,
		Error:       fmt.Sprintf("Room %s not found in building %s", room, buildingID),
		Coordinates: [][2]float64{},
		PathDetails: []models.RouteStep{},
	}
}
