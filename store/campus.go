package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/y345-git/Campus-Navigation/models"
)

const campusConfigFile = "campus_config.json"

// CampusStore persists the campus document as a single JSON file under the
// data directory.
type CampusStore struct {
	path string
}

func NewCampusStore(dataDir string) *CampusStore {
	return &CampusStore{path: filepath.Join(dataDir, campusConfigFile)}
}

// Load reads the campus document, falling back to the built-in default
// campus when no file exists yet.
func (s *CampusStore) Load() (*models.CampusDocument, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultCampus(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read campus config: %w", err)
	}
	var doc models.CampusDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse campus config: %w", err)
	}
	if doc.Buildings == nil {
		doc.Buildings = map[string]models.Building{}
	}
	if doc.Intersections == nil {
		doc.Intersections = map[string][2]float64{}
	}
	return &doc, nil
}

// Save writes the document atomically: a temp file in the same directory is
// renamed over the target, so a failed write never truncates the config.
func (s *CampusStore) Save(doc *models.CampusDocument) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode campus config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write campus config: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace campus config: %w", err)
	}
	return nil
}

// DefaultCampus is the campus shipped with a fresh install: ten buildings and
// six intersections around a Manhattan-area center, with a path table routed
// through the intersections so the default graph is navigable out of the box.
func DefaultCampus() *models.CampusDocument {
	return &models.CampusDocument{
		MapSettings: models.MapSettings{
			CenterCoordinates: [2]float64{40.7831, -73.9712},
			MapBoundsKm:       2.0,
			ZoomLevel:         16,
		},
		AdminSettings: models.AdminSettings{
			AdminPassword:       "campus_admin_2024",
			SessionTimeoutHours: 24,
		},
		Buildings: map[string]models.Building{
			"Main_Library": {
				Name:        "Main Library",
				Coordinates: [2]float64{40.7831, -73.9712},
				Description: "Central library with study spaces and resources",
				Type:        "academic",
			},
			"Engineering_Building": {
				Name:        "Engineering Building",
				Coordinates: [2]float64{40.7851, -73.9732},
				Description: "Home to all engineering departments",
				Type:        "academic",
			},
			"Student_Center": {
				Name:        "Student Center",
				Coordinates: [2]float64{40.7811, -73.9692},
				Description: "Dining, events, and student activities",
				Type:        "student_services",
			},
			"Science_Building": {
				Name:        "Science Building",
				Coordinates: [2]float64{40.7871, -73.9752},
				Description: "Physics, Chemistry, and Biology labs",
				Type:        "academic",
			},
			"Business_School": {
				Name:        "Business School",
				Coordinates: [2]float64{40.7791, -73.9672},
				Description: "Business administration and economics",
				Type:        "academic",
			},
			"Arts_Building": {
				Name:        "Arts Building",
				Coordinates: [2]float64{40.7801, -73.9722},
				Description: "Fine arts, theater, and music departments",
				Type:        "academic",
			},
			"Dormitory_A": {
				Name:        "Dormitory A",
				Coordinates: [2]float64{40.7821, -73.9682},
				Description: "First-year student housing",
				Type:        "residential",
			},
			"Dormitory_B": {
				Name:        "Dormitory B",
				Coordinates: [2]float64{40.7841, -73.9702},
				Description: "Upper-class student housing",
				Type:        "residential",
			},
			"Cafeteria": {
				Name:        "Main Cafeteria",
				Coordinates: [2]float64{40.7821, -73.9712},
				Description: "Main dining facility",
				Type:        "dining",
			},
			"Gym": {
				Name:        "Recreation Center",
				Coordinates: [2]float64{40.7861, -73.9682},
				Description: "Fitness center and sports facilities",
				Type:        "recreation",
			},
		},
		Intersections: map[string][2]float64{
			"intersection_1": {40.7831, -73.9692},
			"intersection_2": {40.7841, -73.9712},
			"intersection_3": {40.7821, -73.9732},
			"intersection_4": {40.7851, -73.9712},
			"intersection_5": {40.7811, -73.9712},
			"intersection_6": {40.7861, -73.9702},
		},
		CampusPaths: []models.PathEntry{
			{Node1: "Main_Library", Node2: "intersection_1"},
			{Node1: "Main_Library", Node2: "intersection_2"},
			{Node1: "Main_Library", Node2: "intersection_5"},
			{Node1: "Engineering_Building", Node2: "intersection_4"},
			{Node1: "Science_Building", Node2: "intersection_4"},
			{Node1: "Student_Center", Node2: "intersection_1"},
			{Node1: "Business_School", Node2: "intersection_5"},
			{Node1: "Arts_Building", Node2: "intersection_3"},
			{Node1: "Dormitory_A", Node2: "intersection_1"},
			{Node1: "Dormitory_B", Node2: "intersection_2"},
			{Node1: "Cafeteria", Node2: "intersection_5"},
			{Node1: "Gym", Node2: "intersection_6"},
			{Node1: "intersection_1", Node2: "intersection_2"},
			{Node1: "intersection_2", Node2: "intersection_3"},
			{Node1: "intersection_2", Node2: "intersection_4"},
			{Node1: "intersection_1", Node2: "intersection_5"},
			{Node1: "intersection_4", Node2: "intersection_6"},
		},
	}
}
