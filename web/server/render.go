package server

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/png"
	"log"
	"net/http"
	"strconv"

	"github.com/df07/go-path-tracer/pkg/renderer"
)

// consoleBufferSize bounds the messages kept for one render response
const consoleBufferSize = 256

// RenderResponse is the JSON form of a finished render
type RenderResponse struct {
	Scene     string           `json:"scene"`
	ImageData string           `json:"imageData"` // Base64 encoded PNG
	Stats     Stats            `json:"stats"`
	Console   []ConsoleMessage `json:"console"`
}

// handleRender renders a scene synchronously. The response is a PNG unless
// format=json asks for a RenderResponse. Closing the connection cancels the render.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	renderID := s.nextRenderID()
	consoleChan := make(chan ConsoleMessage, consoleBufferSize)
	logger := NewWebLogger(renderID, consoleChan)

	sceneObj, err := s.createScene(req, logger)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	raytracer, err := renderer.NewRaytracer(sceneObj, renderer.RenderConfig{
		TileSize: renderer.DefaultTileSize,
		Seed:     req.Seed,
	}, logger)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	img, renderStats, err := raytracer.Render(r.Context())
	if err != nil {
		if r.Context().Err() != nil {
			log.Printf("[%s] cancelled: %v", renderID, err)
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	stats := Stats{
		Width:          sceneObj.SamplingConfig.Width,
		Height:         sceneObj.SamplingConfig.Height,
		TotalPixels:    renderStats.TotalPixels,
		TotalSamples:   renderStats.TotalSamples,
		AverageSamples: renderStats.AverageSamples,
		ElapsedMs:      renderStats.Duration.Milliseconds(),
	}

	if r.URL.Query().Get("format") == "json" {
		imageData, err := imageToBase64PNG(img)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, RenderResponse{
			Scene:     sceneObj.Name,
			ImageData: imageData,
			Stats:     stats,
			Console:   drainConsole(consoleChan),
		})
		return
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("X-Render-Samples", strconv.Itoa(stats.TotalSamples))
	w.Header().Set("X-Render-Elapsed-Ms", strconv.FormatInt(stats.ElapsedMs, 10))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.Printf("[%s] error writing response: %v", renderID, err)
	}
}

// imageToBase64PNG encodes img as a base64 PNG string
func imageToBase64PNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
