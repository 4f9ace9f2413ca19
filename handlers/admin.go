package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/y345-git/Campus-Navigation/models"
	"github.com/y345-git/Campus-Navigation/services"
)

// AdminHandler serves the session endpoints and the authenticated campus
// mutation API.
type AdminHandler struct {
	editor   *services.Editor
	sessions *SessionManager
	log      *zap.Logger
}

func NewAdminHandler(editor *services.Editor, sessions *SessionManager, log *zap.Logger) *AdminHandler {
	return &AdminHandler{editor: editor, sessions: sessions, log: log}
}

func (h *AdminHandler) RegisterRoutes(r *gin.Engine) {
	r.POST("/admin/login", h.Login)
	r.POST("/admin/logout", h.Logout)

	admin := r.Group("/api/admin", h.sessions.RequireAuth())
	admin.GET("/map-bounds", h.MapBounds)
	admin.POST("/buildings", h.UpsertBuilding)
	admin.DELETE("/buildings/:id", h.DeleteBuilding)
	admin.GET("/intersections", h.ListIntersections)
	admin.POST("/intersections", h.AddIntersection)
	admin.DELETE("/intersections/:id", h.DeleteIntersection)
	admin.GET("/paths", h.ListPaths)
	admin.POST("/paths", h.AddPath)
	admin.DELETE("/paths/:id", h.DeletePath)

	// Interior writes share the public path prefix but are admin-only.
	r.POST("/api/buildings/:id/interior", h.sessions.RequireAuth(), h.UpdateInterior)
}

func (h *AdminHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Password == "" {
		respondError(c, http.StatusBadRequest, "Password required")
		return
	}
	token, ok := h.sessions.Login(req.Password)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Invalid password")
		return
	}
	h.log.Info("admin login")
	respondOK(c, gin.H{"message": "Login successful", "token": token})
}

func (h *AdminHandler) Logout(c *gin.Context) {
	token := c.GetHeader("Authorization")
	if len(token) > 7 && token[:7] == "Bearer " {
		h.sessions.Logout(token[7:])
	}
	respondOK(c, gin.H{"message": "Logged out successfully"})
}

func (h *AdminHandler) MapBounds(c *gin.Context) {
	center, sideKm, box := h.editor.MapBounds()
	respondOK(c, gin.H{
		"center":    center,
		"bounds_km": sideKm,
		"bounds_coordinates": gin.H{
			"south_west": [2]float64{box.South, box.West},
			"north_east": [2]float64{box.North, box.East},
		},
	})
}

func (h *AdminHandler) UpsertBuilding(c *gin.Context) {
	var req models.BuildingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	building, err := h.editor.UpsertBuilding(req)
	if err != nil {
		respondFromError(c, err)
		return
	}
	respondOK(c, gin.H{
		"message":  "Building " + building.Name + " saved successfully",
		"building": gin.H{"id": req.ID, "name": building.Name, "coordinates": building.Coordinates, "description": building.Description, "type": building.Type},
	})
}

func (h *AdminHandler) DeleteBuilding(c *gin.Context) {
	name, err := h.editor.DeleteBuilding(c.Param("id"))
	if err != nil {
		respondFromError(c, err)
		return
	}
	respondOK(c, gin.H{"message": "Building " + name + " deleted successfully"})
}

func (h *AdminHandler) ListIntersections(c *gin.Context) {
	respondOK(c, gin.H{"intersections": h.editor.Intersections()})
}

func (h *AdminHandler) AddIntersection(c *gin.Context) {
	var req models.IntersectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.editor.AddIntersection(req); err != nil {
		respondFromError(c, err)
		return
	}
	respondOK(c, gin.H{
		"message":      "Intersection " + req.ID + " added successfully",
		"intersection": gin.H{"id": req.ID, "coordinates": req.Coordinates},
	})
}

func (h *AdminHandler) DeleteIntersection(c *gin.Context) {
	id := c.Param("id")
	if err := h.editor.DeleteIntersection(id); err != nil {
		respondFromError(c, err)
		return
	}
	respondOK(c, gin.H{"message": "Intersection " + id + " deleted successfully"})
}

func (h *AdminHandler) ListPaths(c *gin.Context) {
	respondOK(c, gin.H{"paths": h.editor.Paths()})
}

func (h *AdminHandler) AddPath(c *gin.Context) {
	var req models.PathRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	info, err := h.editor.AddPath(req)
	if err != nil {
		respondFromError(c, err)
		return
	}
	respondOK(c, gin.H{
		"message": "Path between " + info.Node1Name + " and " + info.Node2Name + " added successfully",
		"path":    info,
	})
}

func (h *AdminHandler) DeletePath(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid path id")
		return
	}
	if err := h.editor.DeletePath(index); err != nil {
		respondFromError(c, err)
		return
	}
	respondOK(c, gin.H{"message": "Path deleted successfully"})
}

func (h *AdminHandler) UpdateInterior(c *gin.Context) {
	buildingID := c.Param("id")
	var doc models.InteriorDocument
	if err := c.ShouldBindJSON(&doc); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid interior document")
		return
	}
	if err := h.editor.UpdateInterior(buildingID, &doc); err != nil {
		respondFromError(c, err)
		return
	}
	respondOK(c, gin.H{"message": "Building interior updated for " + doc.BuildingName})
}
