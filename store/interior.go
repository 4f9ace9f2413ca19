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

// InteriorStore is a key-value document store for building interiors: one
// JSON file per building under <dataDir>/buildings.
type InteriorStore struct {
	dir string
}

func NewInteriorStore(dataDir string) *InteriorStore {
	return &InteriorStore{dir: filepath.Join(dataDir, "buildings")}
}

func (s *InteriorStore) file(buildingID string) string {
	return filepath.Join(s.dir, buildingID+"_interior.json")
}

func (s *InteriorStore) Exists(buildingID string) bool {
	_, err := os.Stat(s.file(buildingID))
	return err == nil
}

// Load reads a building's interior document, falling back to the default
// single-ground-floor layout when none has been saved.
func (s *InteriorStore) Load(buildingID, buildingName string) (*models.InteriorDocument, error) {
	data, err := os.ReadFile(s.file(buildingID))
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultInterior(buildingID, buildingName), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read interior config for %s: %w", buildingID, err)
	}
	var doc models.InteriorDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse interior config for %s: %w", buildingID, err)
	}
	if doc.Floors == nil {
		doc.Floors = map[string]models.Floor{}
	}
	return &doc, nil
}

func (s *InteriorStore) Save(buildingID string, doc *models.InteriorDocument) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create buildings dir: %w", err)
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode interior config for %s: %w", buildingID, err)
	}
	path := s.file(buildingID)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write interior config for %s: %w", buildingID, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace interior config for %s: %w", buildingID, err)
	}
	return nil
}

// DefaultInterior is the minimal valid interior: one empty ground floor with
// a main entrance and the standard room-type palette.
func DefaultInterior(buildingID, buildingName string) *models.InteriorDocument {
	if buildingName == "" {
		buildingName = buildingID
	}
	return &models.InteriorDocument{
		BuildingID:   buildingID,
		BuildingName: buildingName,
		Floors: map[string]models.Floor{
			"ground": {
				Name:      "Ground Floor",
				Level:     0,
				Rooms:     map[string]models.Room{},
				Entrances: []string{"main_entrance"},
				FloorPlan: models.FloorPlan{
					Width:              100,
					Height:             100,
					ScaleMetersPerUnit: 1.0,
				},
			},
		},
		RoomTypes: map[string]models.RoomTypeStyle{
			"classroom": {Icon: "chalkboard-teacher", Color: "blue"},
			"office":    {Icon: "briefcase", Color: "green"},
			"lab":       {Icon: "flask", Color: "purple"},
			"entrance":  {Icon: "door-open", Color: "orange"},
			"stairs":    {Icon: "stairs", Color: "gray"},
			"elevator":  {Icon: "elevator", Color: "gray"},
			"restroom":  {Icon: "restroom", Color: "lightblue"},
			"common":    {Icon: "users", Color: "yellow"},
		},
	}
}
