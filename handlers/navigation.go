package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/y345-git/Campus-Navigation/models"
	"github.com/y345-git/Campus-Navigation/services"
)

// NavigationHandler serves the public route and campus-info endpoints.
type NavigationHandler struct {
	nav *services.Navigator
	log *zap.Logger
}

func NewNavigationHandler(nav *services.Navigator, log *zap.Logger) *NavigationHandler {
	return &NavigationHandler{nav: nav, log: log}
}

func (h *NavigationHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/api/buildings", h.ListBuildings)
	r.POST("/api/route", h.FindRoute)
	r.GET("/api/destinations/:building", h.Destinations)
	r.GET("/api/graph-info", h.GraphInfo)
	r.GET("/api/buildings/:id/interior", h.GetInterior)
	r.GET("/api/buildings/:id/rooms", h.BuildingRooms)
	r.POST("/api/buildings/:id/route", h.InteriorRoute)
	r.POST("/api/route/to-room", h.RouteToRoom)
}

func (h *NavigationHandler) ListBuildings(c *gin.Context) {
	respondOK(c, gin.H{"buildings": h.nav.Buildings()})
}

func (h *NavigationHandler) FindRoute(c *gin.Context) {
	var req models.RouteRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Start == "" || req.End == "" {
		respondError(c, http.StatusBadRequest, "Missing start or end building")
		return
	}
	if !h.nav.HasBuilding(req.Start) {
		respondError(c, http.StatusBadRequest, "Invalid start building: "+req.Start)
		return
	}
	if !h.nav.HasBuilding(req.End) {
		respondError(c, http.StatusBadRequest, "Invalid end building: "+req.End)
		return
	}
	c.JSON(http.StatusOK, h.nav.FindRoute(req.Start, req.End))
}

func (h *NavigationHandler) Destinations(c *gin.Context) {
	destinations, err := h.nav.Destinations(c.Param("building"))
	if err != nil {
		respondFromError(c, err)
		return
	}
	respondOK(c, gin.H{"destinations": destinations})
}

func (h *NavigationHandler) GraphInfo(c *gin.Context) {
	respondOK(c, gin.H{"graph_info": h.nav.GraphInfo()})
}

func (h *NavigationHandler) GetInterior(c *gin.Context) {
	buildingID := c.Param("id")
	doc, err := h.nav.InteriorDocument(buildingID)
	if err != nil {
		respondFromError(c, err)
		return
	}
	respondOK(c, gin.H{"building_id": buildingID, "interior": doc})
}

func (h *NavigationHandler) BuildingRooms(c *gin.Context) {
	buildingID := c.Param("id")
	rooms, err := h.nav.BuildingRooms(buildingID)
	if err != nil {
		respondFromError(c, err)
		return
	}
	name, _ := h.nav.BuildingName(buildingID)
	respondOK(c, gin.H{
		"building_id":   buildingID,
		"building_name": name,
		"rooms":         rooms,
	})
}

func (h *NavigationHandler) InteriorRoute(c *gin.Context) {
	var req models.InteriorRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.StartRoom == "" || req.EndRoom == "" {
		respondError(c, http.StatusBadRequest, "Missing start_room or end_room")
		return
	}
	route, err := h.nav.FindInteriorRoute(c.Param("id"), req.StartRoom, req.EndRoom)
	if err != nil {
		respondFromError(c, err)
		return
	}
	c.JSON(http.StatusOK, route)
}

func (h *NavigationHandler) RouteToRoom(c *gin.Context) {
	var req models.RoomRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil ||
		req.StartBuilding == "" || req.EndBuilding == "" || req.EndRoom == "" {
		respondError(c, http.StatusBadRequest, "Missing start_building, end_building, or end_room")
		return
	}
	if !h.nav.HasBuilding(req.StartBuilding) {
		respondError(c, http.StatusBadRequest, "Invalid start building: "+req.StartBuilding)
		return
	}
	if !h.nav.HasBuilding(req.EndBuilding) {
		respondError(c, http.StatusBadRequest, "Invalid end building: "+req.EndBuilding)
		return
	}
	route, err := h.nav.FindCampusToRoomRoute(req.StartBuilding, req.EndBuilding, req.EndRoom)
	if err != nil {
		respondFromError(c, err)
		return
	}
	c.JSON(http.StatusOK, route)
}
