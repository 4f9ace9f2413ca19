package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/y345-git/Campus-Navigation/models"
	"github.com/y345-git/Campus-Navigation/store"
)

func ptr(v float64) *float64 { return &v }

func testCampus() *models.CampusDocument {
	return &models.CampusDocument{
		MapSettings: models.MapSettings{
			CenterCoordinates: [2]float64{0, 0},
			MapBoundsKm:       10,
		},
		Buildings: map[string]models.Building{
			"Library": {Name: "Main Library", Coordinates: [2]float64{0, 0}, Description: "books"},
			"Gym":     {Name: "Recreation Center", Coordinates: [2]float64{0, 0.002}, Description: "sports"},
			"Remote":  {Name: "Remote Hall", Coordinates: [2]float64{0.01, 0.01}},
		},
		Intersections: map[string][2]float64{
			"gate": {0, 0.001},
		},
		CampusPaths: []models.PathEntry{
			{Node1: "Library", Node2: "gate", Distance: ptr(100)},
			{Node1: "gate", Node2: "Gym", Distance: ptr(120)},
		},
	}
}

func libraryInterior() *models.InteriorDocument {
	return &models.InteriorDocument{
		BuildingID:   "Library",
		BuildingName: "Main Library",
		Floors: map[string]models.Floor{
			"ground": {
				Name:  "Ground Floor",
				Level: 0,
				Rooms: map[string]models.Room{
					"lobby":       {Name: "Lobby", Type: "entrance"},
					"back_door":   {Name: "Back Door", Type: "entrance"},
					"stairs_1":    {Name: "Stairs", Type: "stairs"},
					"reading_101": {Name: "Reading Room", Type: "common"},
				},
				Connections: []models.RoomConnection{
					{Room1: "lobby", Room2: "reading_101", Distance: ptr(30)},
					{Room1: "back_door", Room2: "reading_101", Distance: ptr(5)},
					{Room1: "lobby", Room2: "stairs_1", Distance: ptr(8)},
				},
				Entrances: []string{"lobby", "back_door"},
			},
			"first": {
				Name:  "First Floor",
				Level: 1,
				Rooms: map[string]models.Room{
					"stairs_1": {Name: "Stairs", Type: "stairs"},
					"lab_201":  {Name: "Media Lab", Type: "lab"},
				},
				Connections: []models.RoomConnection{
					{Room1: "stairs_1", Room2: "lab_201", Distance: ptr(6)},
				},
			},
		},
		VerticalConnections: models.VerticalConnections{
			Stairs: []models.VerticalConnection{
				{ID: "1", Floors: []string{"ground", "first"}},
			},
		},
	}
}

func newTestNavigator(t *testing.T) (*Navigator, *store.InteriorStore) {
	t.Helper()
	interiorStore := store.NewInteriorStore(t.TempDir())
	require.NoError(t, interiorStore.Save("Library", libraryInterior()))
	cache := NewInteriorCache(interiorStore, zap.NewNop())
	return NewNavigator(testCampus(), cache, zap.NewNop()), interiorStore
}

func TestNavigatorFindRoute(t *testing.T) {
	nav, _ := newTestNavigator(t)

	route := nav.FindRoute("Library", "Gym")
	require.True(t, route.Success)
	assert.Equal(t, []string{"Library", "gate", "Gym"}, route.Path)
	assert.Equal(t, 220.0, route.TotalDistance)

	route = nav.FindRoute("Library", "Remote")
	assert.False(t, route.Success)
}

func TestNavigatorDestinations(t *testing.T) {
	nav, _ := newTestNavigator(t)

	t.Run("unknown start", func(t *testing.T) {
		_, err := nav.Destinations("Nowhere")
		assert.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("reachable buildings sorted by distance", func(t *testing.T) {
		destinations, err := nav.Destinations("Library")
		require.NoError(t, err)
		// Remote is disconnected and must not appear.
		require.Len(t, destinations, 1)
		assert.Equal(t, "Gym", destinations[0].ID)
		assert.Equal(t, 220.0, destinations[0].Distance)
		assert.Equal(t, 2, destinations[0].WalkTime)
	})
}

func TestNavigatorGraphInfo(t *testing.T) {
	nav, _ := newTestNavigator(t)
	info := nav.GraphInfo()
	assert.Equal(t, 4, info.TotalNodes)
	assert.Equal(t, 2, info.TotalEdges)
	assert.Equal(t, 3, info.BuildingsCount)
	assert.Equal(t, 1, info.IntersectionsCount)
	assert.False(t, info.IsConnected)
}

func TestNavigatorInteriorRoute(t *testing.T) {
	nav, _ := newTestNavigator(t)

	t.Run("unknown building", func(t *testing.T) {
		_, err := nav.FindInteriorRoute("Nowhere", "lobby", "lab_201")
		assert.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("bare room ids resolve", func(t *testing.T) {
		route, err := nav.FindInteriorRoute("Library", "lobby", "lab_201")
		require.NoError(t, err)
		require.True(t, route.Success)
		assert.Equal(t, []string{
			"Library_ground_lobby",
			"Library_ground_stairs_1",
			"Library_first_stairs_1",
			"Library_first_lab_201",
		}, route.Path)
		assert.Equal(t, 29.0, route.TotalDistance) // 8 + 15 + 6
	})

	t.Run("display names resolve case-insensitively", func(t *testing.T) {
		route, err := nav.FindInteriorRoute("Library", "LOBBY", "media lab")
		require.NoError(t, err)
		require.True(t, route.Success)
		assert.Equal(t, "Library_first_lab_201", route.Path[len(route.Path)-1])
	})

	t.Run("unknown room is a structured failure", func(t *testing.T) {
		route, err := nav.FindInteriorRoute("Library", "lobby", "pool")
		require.NoError(t, err)
		assert.False(t, route.Success)
		assert.Contains(t, route.Error, "pool")
		assert.Contains(t, route.Error, "Library")
	})
}

func TestNavigatorBuildingRooms(t *testing.T) {
	nav, _ := newTestNavigator(t)
	rooms, err := nav.BuildingRooms("Library")
	require.NoError(t, err)
	require.Len(t, rooms, 6)
	assert.Equal(t, "Library_first_lab_201", rooms[0].ID)
	assert.Equal(t, "Media Lab", rooms[0].Name)
	assert.Equal(t, "first", rooms[0].Floor)
}

func TestNavigatorCampusToRoomRoute(t *testing.T) {
	nav, _ := newTestNavigator(t)

	t.Run("failed outdoor leg skips the interior leg", func(t *testing.T) {
		result, err := nav.FindCampusToRoomRoute("Gym", "Remote", "anything")
		require.NoError(t, err)
		assert.False(t, result.Success)
		require.NotNil(t, result.CampusRoute)
		assert.False(t, result.CampusRoute.Success)
		assert.Nil(t, result.InteriorRoute)
	})

	t.Run("chooses the nearest entrance", func(t *testing.T) {
		result, err := nav.FindCampusToRoomRoute("Gym", "Library", "reading_101")
		require.NoError(t, err)
		require.True(t, result.Success)

		require.NotNil(t, result.InteriorRoute)
		// back_door is 5m from the reading room, lobby is 30m.
		assert.Equal(t, "Library_ground_back_door", result.InteriorRoute.Path[0])
		assert.Equal(t, 5.0, result.InteriorRoute.TotalDistance)

		assert.Equal(t, 225.0, result.TotalDistance) // 220 outdoor + 5 interior
		assert.Equal(t, result.CampusRoute.EstimatedWalkTime+result.InteriorRoute.EstimatedWalkTime, result.TotalWalkTime)
	})

	t.Run("unknown room fails the composite", func(t *testing.T) {
		result, err := nav.FindCampusToRoomRoute("Gym", "Library", "pool")
		require.NoError(t, err)
		assert.False(t, result.Success)
		require.NotNil(t, result.CampusRoute)
		assert.True(t, result.CampusRoute.Success)
		assert.Contains(t, result.Error, "pool")
		// The outdoor distance is still reported.
		assert.Equal(t, 220.0, result.TotalDistance)
	})

	t.Run("unconfigured interior falls back to the default entrance", func(t *testing.T) {
		// Gym has no saved interior: the default document has a ground floor
		// with a main_entrance entry but no rooms, so the interior leg fails.
		result, err := nav.FindCampusToRoomRoute("Library", "Gym", "weights")
		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.True(t, result.CampusRoute.Success)
		assert.False(t, result.InteriorRoute == nil)
	})
}

func TestInteriorCacheInvalidation(t *testing.T) {
	nav, interiorStore := newTestNavigator(t)

	rooms, err := nav.BuildingRooms("Library")
	require.NoError(t, err)
	before := len(rooms)

	doc := libraryInterior()
	floor := doc.Floors["first"]
	floor.Rooms["lab_202"] = models.Room{Name: "Annex Lab", Type: "lab"}
	doc.Floors["first"] = floor
	require.NoError(t, interiorStore.Save("Library", doc))

	// Still served from cache until invalidated.
	rooms, err = nav.BuildingRooms("Library")
	require.NoError(t, err)
	assert.Len(t, rooms, before)

	nav.InvalidateInterior("Library")
	rooms, err = nav.BuildingRooms("Library")
	require.NoError(t, err)
	assert.Len(t, rooms, before+1)
}
