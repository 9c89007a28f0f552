package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"sync/atomic"

	"github.com/df07/go-path-tracer/pkg/core"
	"github.com/df07/go-path-tracer/pkg/geometry"
	"github.com/df07/go-path-tracer/pkg/scene"
)

// Limits on what a single request may ask for
const (
	maxWidth   = 1600
	maxSamples = 1000
	maxDepth   = 100
)

// Server handles web requests for the path tracer
type Server struct {
	port        int
	texturePath string
	renderCount atomic.Int64
}

// NewServer creates a new web server. texturePath is passed to textured scenes.
func NewServer(port int, texturePath string) *Server {
	return &Server{port: port, texturePath: texturePath}
}

// RenderRequest represents a render or inspect request from the client
type RenderRequest struct {
	Scene           string `json:"scene"`           // Scene name (e.g., "cornell-box")
	Width           int    `json:"width"`           // Image width; 0 keeps the scene default
	SamplesPerPixel int    `json:"samplesPerPixel"` // 0 keeps the scene default
	MaxDepth        int    `json:"maxDepth"`        // 0 keeps the scene default
	Seed            int64  `json:"seed"`
}

// Stats represents render statistics
type Stats struct {
	Width          int     `json:"width"`
	Height         int     `json:"height"`
	TotalPixels    int     `json:"totalPixels"`
	TotalSamples   int     `json:"totalSamples"`
	AverageSamples float64 `json:"averageSamples"`
	ElapsedMs      int64   `json:"elapsedMs"`
}

// Handler returns the HTTP routes served by s
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/inspect", s.handleInspect)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists the scene catalog
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, scene.ListScenes())
}

// parseRenderRequest reads the common scene parameters from the query string
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	req := &RenderRequest{Scene: query.Get("scene")}
	if req.Scene == "" {
		req.Scene = scene.DefaultSceneName
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 0, 0, maxWidth); err != nil {
		return nil, err
	}
	if req.SamplesPerPixel, err = parseIntParam(query, "spp", 0, 0, maxSamples); err != nil {
		return nil, err
	}
	if req.MaxDepth, err = parseIntParam(query, "depth", 0, 0, maxDepth); err != nil {
		return nil, err
	}
	seed, err := parseIntParam(query, "seed", 1, 0, 1<<31-1)
	if err != nil {
		return nil, err
	}
	req.Seed = int64(seed)

	return req, nil
}

// parseIntParam parses an optional integer parameter bounded by [min, max]
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	str := values.Get(key)
	if str == "" {
		return defaultValue, nil
	}
	val, err := strconv.Atoi(str)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %v", key, err)
	}
	if val < min || val > max {
		return 0, fmt.Errorf("%s must be between %d and %d", key, min, max)
	}
	return val, nil
}

// createScene builds the requested scene and applies the request overrides
func (s *Server) createScene(req *RenderRequest, logger core.Logger) (*scene.Scene, error) {
	sceneObj, err := scene.NewScene(req.Scene, core.NewSeededSampler(req.Seed), scene.Options{
		TexturePath: s.texturePath,
		Camera:      geometry.CameraConfig{Width: req.Width},
		Logger:      logger,
	})
	if err != nil {
		return nil, err
	}

	if req.SamplesPerPixel > 0 {
		sceneObj.SamplingConfig.SamplesPerPixel = req.SamplesPerPixel
	}
	if req.MaxDepth > 0 {
		sceneObj.SamplingConfig.MaxDepth = req.MaxDepth
	}
	return sceneObj, nil
}

// nextRenderID returns a unique identifier used to tag log lines
func (s *Server) nextRenderID() string {
	return fmt.Sprintf("render-%d", s.renderCount.Add(1))
}

// writeJSON encodes v as the response body with the given status
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

// writeError sends a JSON error body
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
