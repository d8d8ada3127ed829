// Package api serves city state over HTTP and a websocket command stream.
// GET endpoints are public (read-only observation); POST endpoints require
// a bearer token.
package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/mkrellis/gridtown/internal/city"
	"github.com/mkrellis/gridtown/internal/engine"
	"github.com/mkrellis/gridtown/internal/journal"
	"github.com/mkrellis/gridtown/internal/roadnet"
)

// Server serves the city over HTTP.
type Server struct {
	City    *city.City
	Eng     *engine.Engine
	Journal *journal.DB      // optional: /api/v1/events and /stats/history
	Roads   *roadnet.Network // optional: road masks on /api/v1/grid
	Port    int

	// AdminKey is the bearer token for POST endpoints. Empty = POST
	// disabled.
	AdminKey string

	hub hub
}

// Start begins serving in a goroutine.
func (s *Server) Start() {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/v1/status", s.handleStatus)
	mux.HandleFunc("/api/v1/grid", s.handleGrid)
	mux.HandleFunc("/api/v1/missions", s.handleMissions)
	mux.HandleFunc("/api/v1/events", s.handleEvents)
	mux.HandleFunc("/api/v1/stats/history", s.handleStatsHistory)

	mux.HandleFunc("/api/v1/speed", s.adminOnly(s.handleSpeed))

	mux.HandleFunc("/ws", s.handleWS)

	addr := fmt.Sprintf(":%d", s.Port)
	slog.Info("HTTP API starting", "addr", addr, "admin_auth", s.AdminKey != "")

	go func() {
		if err := http.ListenAndServe(addr, mux); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	snap := s.City.Snap()
	writeJSON(w, http.StatusOK, map[string]any{
		"name":       snap.Name,
		"clock":      snap.Clock,
		"treasury":   snap.Treasury,
		"population": snap.Population,
		"level":      snap.Level,
		"finished":   snap.Finished,
		"speed":      s.Eng.Speed(),
	})
}

func (s *Server) handleGrid(w http.ResponseWriter, r *http.Request) {
	snap := s.City.Snap()
	resp := map[string]any{
		"size":  snap.Size,
		"tiles": snap.Tiles,
	}
	if s.Roads != nil {
		masks := make(map[string]uint8)
		for _, t := range snap.Tiles {
			if t.Building == "road" {
				masks[fmt.Sprintf("%d,%d", t.X, t.Y)] = s.Roads.Mask(t.X, t.Y)
			}
		}
		resp["road_masks"] = masks
		resp["road_components"] = s.Roads.Components()
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleMissions(w http.ResponseWriter, r *http.Request) {
	snap := s.City.Snap()
	writeJSON(w, http.StatusOK, map[string]any{
		"level":           snap.Level,
		"mission_counter": snap.MissionCounter,
		"missions":        snap.Missions,
		"finished":        snap.Finished,
	})
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	if s.Journal == nil {
		writeJSON(w, http.StatusOK, []journal.Event{})
		return
	}
	limit := queryInt(r, "limit", 50)
	events, err := s.Journal.RecentEvents(limit)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, events)
}

func (s *Server) handleStatsHistory(w http.ResponseWriter, r *http.Request) {
	if s.Journal == nil {
		writeJSON(w, http.StatusOK, []journal.StatRow{})
		return
	}
	limit := queryInt(r, "limit", 100)
	rows, err := s.Journal.StatsHistory(limit)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func (s *Server) handleSpeed(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "POST only"})
		return
	}
	var body struct {
		Speed float64 `json:"speed"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Speed < 0 || body.Speed > 64 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "speed must be in [0, 64]"})
		return
	}
	s.Eng.SetSpeed(body.Speed)
	slog.Info("speed changed", "speed", body.Speed)
	writeJSON(w, http.StatusOK, map[string]any{"speed": body.Speed})
}

// adminOnly gates a handler behind the bearer token. With no token
// configured the endpoint is disabled outright.
func (s *Server) adminOnly(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.AdminKey == "" {
			writeJSON(w, http.StatusForbidden, map[string]string{"error": "admin endpoints disabled"})
			return
		}
		auth := r.Header.Get("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") || strings.TrimPrefix(auth, "Bearer ") != s.AdminKey {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
			return
		}
		next(w, r)
	}
}

func queryInt(r *http.Request, key string, def int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return def
	}
	return n
}
