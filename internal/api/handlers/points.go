package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/ani/point-check-backend/internal/api/middleware"
	"github.com/ani/point-check-backend/internal/domain"
	"github.com/ani/point-check-backend/internal/service"
)

type PointHandler struct {
	pointService *service.PointService
}

func NewPointHandler(pointService *service.PointService) *PointHandler {
	return &PointHandler{pointService: pointService}
}

// Coordinates are pointers so that absent fields can be told apart from
// zero values.
type CheckPointRequest struct {
	X *float64 `json:"x"`
	Y *float64 `json:"y"`
	R *float64 `json:"r"`
}

func (h *PointHandler) CheckPoint(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Authorization required")
		return
	}

	var req CheckPointRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.X == nil || req.Y == nil || req.R == nil {
		respondError(w, http.StatusBadRequest, "Coordinates cannot be null")
		return
	}
	if *req.Y < -5 || *req.Y > 5 {
		respondError(w, http.StatusBadRequest, "Y coordinate out of range")
		return
	}

	point, err := h.pointService.Check(r.Context(), user, *req.X, *req.Y, *req.R)
	if err != nil {
		log.Printf("ERROR [handlers.CheckPoint] %v", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]*domain.Point{"point": point})
}

func (h *PointHandler) GetPoints(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Authorization required")
		return
	}

	points, err := h.pointService.History(r.Context(), user.ID)
	if err != nil {
		log.Printf("ERROR [handlers.GetPoints] %v", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, map[string][]*domain.Point{"points": points})
}

func (h *PointHandler) Stats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.pointService.Stats())
}
