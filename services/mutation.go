package services

import (
	"fmt"
	"math"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/y345-git/Campus-Navigation/models"
	"github.com/y345-git/Campus-Navigation/routing"
	"github.com/y345-git/Campus-Navigation/store"
)

// Editor applies admin mutations to the campus records. Every mutation
// validates against the current records, is applied to a clone, persisted,
// and only then swapped into the navigator with a full graph rebuild. A
// failed persist therefore never changes what is being served.
type Editor struct {
	log       *zap.Logger
	campus    *store.CampusStore
	interiors *store.InteriorStore
	nav       *Navigator

	mu  sync.Mutex
	doc *models.CampusDocument
}

func NewEditor(doc *models.CampusDocument, campus *store.CampusStore, interiors *store.InteriorStore, nav *Navigator, log *zap.Logger) *Editor {
	return &Editor{
		log:       log,
		campus:    campus,
		interiors: interiors,
		nav:       nav,
		doc:       doc,
	}
}

func (e *Editor) apply(mutate func(doc *models.CampusDocument) error) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	next := e.doc.Clone()
	if err := mutate(next); err != nil {
		return err
	}
	if err := e.campus.Save(next); err != nil {
		return fmt.Errorf("persist campus config: %w", err)
	}
	e.doc = next
	e.nav.Swap(next)
	return nil
}

func (e *Editor) bounds(doc *models.CampusDocument) store.Bounds {
	return store.NewBounds(doc.MapSettings.CenterCoordinates, doc.MapSettings.MapBoundsKm)
}

// MapBounds exposes the configured bounds box for the admin UI.
func (e *Editor) MapBounds() (center [2]float64, sideKm float64, box store.Bounds) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.doc.MapSettings.CenterCoordinates,
		e.doc.MapSettings.MapBoundsKm,
		e.bounds(e.doc)
}

func parseCoordinates(coords []float64) ([2]float64, error) {
	if len(coords) != 2 {
		return [2]float64{}, fmt.Errorf("coordinates must be a [lat, lon] pair: %w", models.ErrInvalidInput)
	}
	return [2]float64{coords[0], coords[1]}, nil
}

// UpsertBuilding adds a new building or replaces an existing one.
func (e *Editor) UpsertBuilding(req models.BuildingRequest) (models.Building, error) {
	if req.ID == "" || req.Name == "" {
		return models.Building{}, fmt.Errorf("building id and name are required: %w", models.ErrInvalidInput)
	}
	coords, err := parseCoordinates(req.Coordinates)
	if err != nil {
		return models.Building{}, err
	}

	buildingType := req.Type
	if buildingType == "" {
		buildingType = "general"
	}
	building := models.Building{
		Name:        req.Name,
		Coordinates: coords,
		Description: req.Description,
		Type:        buildingType,
	}

	err = e.apply(func(doc *models.CampusDocument) error {
		if !e.bounds(doc).Contains(coords[0], coords[1]) {
			return fmt.Errorf("building %s at (%f, %f): %w", req.ID, coords[0], coords[1], models.ErrOutOfBounds)
		}
		doc.Buildings[req.ID] = building
		return nil
	})
	if err != nil {
		return models.Building{}, err
	}
	e.log.Info("building saved", zap.String("id", req.ID), zap.String("name", req.Name))
	return building, nil
}

// DeleteBuilding removes a building record. Paths referencing it stay in the
// document and are dropped by the graph builder until edited away.
func (e *Editor) DeleteBuilding(id string) (string, error) {
	var name string
	err := e.apply(func(doc *models.CampusDocument) error {
		b, ok := doc.Buildings[id]
		if !ok {
			return fmt.Errorf("building %s: %w", id, models.ErrNotFound)
		}
		name = b.Name
		delete(doc.Buildings, id)
		return nil
	})
	if err != nil {
		return "", err
	}
	e.log.Info("building deleted", zap.String("id", id))
	return name, nil
}

// Intersections lists all intersection records.
func (e *Editor) Intersections() []models.IntersectionInfo {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]models.IntersectionInfo, 0, len(e.doc.Intersections))
	for id, coords := range e.doc.Intersections {
		out = append(out, models.IntersectionInfo{ID: id, Name: id, Coordinates: coords})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (e *Editor) AddIntersection(req models.IntersectionRequest) error {
	if req.ID == "" {
		return fmt.Errorf("intersection id is required: %w", models.ErrInvalidInput)
	}
	coords, err := parseCoordinates(req.Coordinates)
	if err != nil {
		return err
	}

	err = e.apply(func(doc *models.CampusDocument) error {
		if !e.bounds(doc).Contains(coords[0], coords[1]) {
			return fmt.Errorf("intersection %s at (%f, %f): %w", req.ID, coords[0], coords[1], models.ErrOutOfBounds)
		}
		doc.Intersections[req.ID] = coords
		return nil
	})
	if err != nil {
		return err
	}
	e.log.Info("intersection added", zap.String("id", req.ID))
	return nil
}

// DeleteIntersection removes an intersection and every path that references
// it, then rebuilds the graph.
func (e *Editor) DeleteIntersection(id string) error {
	err := e.apply(func(doc *models.CampusDocument) error {
		if _, ok := doc.Intersections[id]; !ok {
			return fmt.Errorf("intersection %s: %w", id, models.ErrNotFound)
		}
		delete(doc.Intersections, id)

		kept := doc.CampusPaths[:0]
		for _, p := range doc.CampusPaths {
			if !p.Touches(id) {
				kept = append(kept, p)
			}
		}
		doc.CampusPaths = kept
		return nil
	})
	if err != nil {
		return err
	}
	e.log.Info("intersection deleted", zap.String("id", id))
	return nil
}

func (e *Editor) nodeName(doc *models.CampusDocument, id string) string {
	if b, ok := doc.Buildings[id]; ok {
		return b.Name
	}
	return id
}

// Paths lists all configured paths with resolved names and effective
// distances.
func (e *Editor) Paths() []models.PathInfo {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]models.PathInfo, 0, len(e.doc.CampusPaths))
	for i, p := range e.doc.CampusPaths {
		info := models.PathInfo{
			ID:        i,
			Node1:     p.Node1,
			Node2:     p.Node2,
			Node1Name: e.nodeName(e.doc, p.Node1),
			Node2Name: e.nodeName(e.doc, p.Node2),
		}
		if p.Distance != nil {
			info.Distance = *p.Distance
		} else if a, aok := e.nodeCoordinates(e.doc, p.Node1); aok {
			if b, bok := e.nodeCoordinates(e.doc, p.Node2); bok {
				info.Distance = math.Round(routing.Haversine(a, b)*10) / 10
			}
		}
		out = append(out, info)
	}
	return out
}

func (e *Editor) nodeCoordinates(doc *models.CampusDocument, id string) ([2]float64, bool) {
	if b, ok := doc.Buildings[id]; ok {
		return b.Coordinates, true
	}
	if c, ok := doc.Intersections[id]; ok {
		return c, true
	}
	return [2]float64{}, false
}

// AddPath creates a path between two existing nodes. Duplicates in either
// direction and self-loops are rejected; an omitted distance is computed from
// the endpoint coordinates and rounded to 0.1 m before being stored.
func (e *Editor) AddPath(req models.PathRequest) (models.PathInfo, error) {
	if req.Node1 == "" || req.Node2 == "" {
		return models.PathInfo{}, fmt.Errorf("both path nodes are required: %w", models.ErrInvalidInput)
	}
	if req.Node1 == req.Node2 {
		return models.PathInfo{}, fmt.Errorf("cannot create path from node to itself: %w", models.ErrInvalidInput)
	}

	var info models.PathInfo
	err := e.apply(func(doc *models.CampusDocument) error {
		coord1, ok := e.nodeCoordinates(doc, req.Node1)
		if !ok {
			return fmt.Errorf("node %s: %w", req.Node1, models.ErrNotFound)
		}
		coord2, ok := e.nodeCoordinates(doc, req.Node2)
		if !ok {
			return fmt.Errorf("node %s: %w", req.Node2, models.ErrNotFound)
		}
		for _, p := range doc.CampusPaths {
			if p.Connects(req.Node1, req.Node2) {
				return fmt.Errorf("%s-%s: %w", req.Node1, req.Node2, models.ErrDuplicatePath)
			}
		}

		distance := 0.0
		if req.Distance != nil {
			distance = *req.Distance
		} else {
			distance = routing.Haversine(coord1, coord2)
		}
		distance = math.Round(distance*10) / 10

		doc.CampusPaths = append(doc.CampusPaths, models.PathEntry{
			Node1:    req.Node1,
			Node2:    req.Node2,
			Distance: &distance,
		})
		info = models.PathInfo{
			ID:        len(doc.CampusPaths) - 1,
			Node1:     req.Node1,
			Node2:     req.Node2,
			Node1Name: e.nodeName(doc, req.Node1),
			Node2Name: e.nodeName(doc, req.Node2),
			Distance:  distance,
		}
		return nil
	})
	if err != nil {
		return models.PathInfo{}, err
	}
	e.log.Info("path added", zap.String("node1", req.Node1), zap.String("node2", req.Node2))
	return info, nil
}

// DeletePath removes the path at the given index in the campus document.
func (e *Editor) DeletePath(index int) error {
	err := e.apply(func(doc *models.CampusDocument) error {
		if index < 0 || index >= len(doc.CampusPaths) {
			return fmt.Errorf("path %d: %w", index, models.ErrNotFound)
		}
		doc.CampusPaths = append(doc.CampusPaths[:index], doc.CampusPaths[index+1:]...)
		return nil
	})
	if err != nil {
		return err
	}
	e.log.Info("path deleted", zap.Int("index", index))
	return nil
}

// UpdateInterior validates and persists a building's interior document, then
// evicts that building's cached interior graph so the next query rebuilds it.
func (e *Editor) UpdateInterior(buildingID string, doc *models.InteriorDocument) error {
	e.mu.Lock()
	building, ok := e.doc.Buildings[buildingID]
	e.mu.Unlock()
	if !ok {
		return fmt.Errorf("building %s: %w", buildingID, models.ErrNotFound)
	}
	if doc == nil || doc.Floors == nil {
		return fmt.Errorf("interior document needs floors: %w", models.ErrInvalidInput)
	}
	if doc.RoomTypes == nil {
		doc.RoomTypes = map[string]models.RoomTypeStyle{}
	}
	doc.BuildingID = buildingID
	doc.BuildingName = building.Name

	if err := e.interiors.Save(buildingID, doc); err != nil {
		return fmt.Errorf("persist interior config: %w", err)
	}
	e.nav.InvalidateInterior(buildingID)
	e.log.Info("interior updated", zap.String("building", buildingID))
	return nil
}
