package server

import (
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/df07/go-path-tracer/pkg/core"
	"github.com/df07/go-path-tracer/pkg/geometry"
	"github.com/df07/go-path-tracer/pkg/material"
	"github.com/df07/go-path-tracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	MaterialType string                 `json:"materialType"`
	GeometryType string                 `json:"geometryType"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	FrontFace    bool                   `json:"frontFace"`
	Properties   map[string]interface{} `json:"properties"`
}

// InspectResult contains information about the object hit by an inspection ray
type InspectResult struct {
	Hit       bool
	HitRecord *material.SurfaceInteraction
	Shape     geometry.Shape // Top-level shape that was hit, nil if unknown
}

func vecArray(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func hexColor(v core.Vec3) string {
	c := v.Clamp(0, 1)
	return fmt.Sprintf("#%02x%02x%02x", int(c.X*255), int(c.Y*255), int(c.Z*255))
}

// extractColorSourceInfo describes a texture
func extractColorSourceInfo(source material.ColorSource) map[string]interface{} {
	properties := make(map[string]interface{})

	switch cs := source.(type) {
	case *material.SolidColor:
		properties["type"] = "solid"
		properties["value"] = vecArray(cs.Color)
		properties["color"] = hexColor(cs.Color)
	case *material.CheckerTexture:
		properties["type"] = "checker"
		properties["odd"] = extractColorSourceInfo(cs.Odd)
		properties["even"] = extractColorSourceInfo(cs.Even)
	case *material.NoiseTexture:
		properties["type"] = "noise"
		properties["scale"] = cs.Scale
	case *material.ImageTexture:
		properties["type"] = "image"
		properties["width"] = cs.Width
		properties["height"] = cs.Height
	default:
		properties["type"] = "unknown"
	}
	return properties
}

// extractMaterialInfo extracts detailed material information with type assertions
func extractMaterialInfo(mat material.Material) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch m := mat.(type) {
	case nil:
		return "none", properties

	case *material.Lambertian:
		properties["albedo"] = extractColorSourceInfo(m.Albedo)
		return "lambertian", properties

	case *material.Metal:
		properties["albedo"] = vecArray(m.Albedo)
		properties["color"] = hexColor(m.Albedo)
		properties["fuzzness"] = m.Fuzzness
		return "metal", properties

	case *material.Dielectric:
		properties["refractiveIndex"] = m.RefractiveIndex
		properties["color"] = "#ffffff" // Clear glass
		return "dielectric", properties

	case *material.DiffuseLight:
		properties["emission"] = extractColorSourceInfo(m.Emission)
		return "diffuse-light", properties

	case *material.Isotropic:
		properties["albedo"] = extractColorSourceInfo(m.Albedo)
		return "isotropic", properties

	default:
		return "unknown", properties
	}
}

// extractGeometryInfo extracts detailed geometry information
func extractGeometryInfo(shape geometry.Shape) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch geom := shape.(type) {
	case nil:
		return "unknown", properties

	case *geometry.Sphere:
		properties["center"] = vecArray(geom.Center)
		properties["radius"] = geom.Radius
		return "sphere", properties

	case *geometry.MovingSphere:
		properties["center0"] = vecArray(geom.Center0)
		properties["center1"] = vecArray(geom.Center1)
		properties["radius"] = geom.Radius
		return "moving-sphere", properties

	case *geometry.XYRect:
		properties["x"] = [2]float64{geom.A0, geom.A1}
		properties["y"] = [2]float64{geom.B0, geom.B1}
		properties["z"] = geom.K
		return "xy-rect", properties

	case *geometry.XZRect:
		properties["x"] = [2]float64{geom.A0, geom.A1}
		properties["z"] = [2]float64{geom.B0, geom.B1}
		properties["y"] = geom.K
		return "xz-rect", properties

	case *geometry.YZRect:
		properties["y"] = [2]float64{geom.A0, geom.A1}
		properties["z"] = [2]float64{geom.B0, geom.B1}
		properties["x"] = geom.K
		return "yz-rect", properties

	case *geometry.Box:
		properties["min"] = vecArray(geom.Min)
		properties["max"] = vecArray(geom.Max)
		return "box", properties

	case *geometry.Translate:
		innerType, innerProps := extractGeometryInfo(geom.Shape)
		properties["offset"] = vecArray(geom.Offset)
		properties["inner"] = map[string]interface{}{"type": innerType, "properties": innerProps}
		return "translate", properties

	case *geometry.RotateY:
		innerType, innerProps := extractGeometryInfo(geom.Shape)
		properties["angle"] = geom.Angle
		properties["inner"] = map[string]interface{}{"type": innerType, "properties": innerProps}
		return "rotate-y", properties

	case *geometry.ConstantMedium:
		innerType, innerProps := extractGeometryInfo(geom.Boundary)
		properties["density"] = geom.Density
		properties["boundary"] = map[string]interface{}{"type": innerType, "properties": innerProps}
		return "constant-medium", properties

	case *geometry.BVHNode:
		stats := geom.Stats()
		properties["nodes"] = stats.Nodes
		properties["leaves"] = stats.Leaves
		properties["maxDepth"] = stats.MaxDepth
		return "bvh", properties

	case *geometry.HittableList:
		properties["count"] = len(geom.Shapes)
		return "list", properties

	default:
		return "unknown", properties
	}
}

// inspectPixel casts a ray through the center of image pixel (pixelX, pixelY),
// with y = 0 the top row, and reports the first object hit
func inspectPixel(sceneObj *scene.Scene, pixelX, pixelY int) InspectResult {
	width := sceneObj.SamplingConfig.Width
	height := sceneObj.SamplingConfig.Height

	// Fixed seed so lens and shutter samples are repeatable
	sampler := core.NewSeededSampler(0)
	s := (float64(pixelX) + 0.5) / float64(max(1, width-1))
	t := (float64(height-1-pixelY) + 0.5) / float64(max(1, height-1))
	ray := sceneObj.Camera.GetRay(s, t, sampler)

	hit, isHit := sceneObj.World.Hit(ray, 0.001, math.Inf(1), sampler)
	if !isHit {
		return InspectResult{Hit: false}
	}

	// The BVH only returns the hit record; find the top-level shape with the same hit
	for _, shape := range sceneObj.Shapes {
		if shapeHit, ok := shape.Hit(ray, 0.001, hit.T+0.001, core.NewSeededSampler(0)); ok && shapeHit.T == hit.T {
			return InspectResult{Hit: true, HitRecord: hit, Shape: shape}
		}
	}

	return InspectResult{Hit: true, HitRecord: hit}
}

// handleInspect handles ray casting inspection requests
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
		return
	}

	pixelX, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid x coordinate")
		return
	}
	pixelY, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid y coordinate")
		return
	}

	sceneObj, err := s.createScene(req, NewWebLogger(s.nextRenderID(), nil))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if pixelX < 0 || pixelX >= sceneObj.SamplingConfig.Width || pixelY < 0 || pixelY >= sceneObj.SamplingConfig.Height {
		writeError(w, http.StatusBadRequest, "Pixel coordinates out of bounds")
		return
	}

	result := inspectPixel(sceneObj, pixelX, pixelY)
	if !result.Hit {
		writeJSON(w, http.StatusOK, InspectResponse{Hit: false})
		return
	}

	materialType, materialProps := extractMaterialInfo(result.HitRecord.Material)
	geometryType, geometryProps := extractGeometryInfo(result.Shape)

	writeJSON(w, http.StatusOK, InspectResponse{
		Hit:          true,
		MaterialType: materialType,
		GeometryType: geometryType,
		Point:        vecArray(result.HitRecord.Point),
		Normal:       vecArray(result.HitRecord.Normal),
		Distance:     result.HitRecord.T,
		FrontFace:    result.HitRecord.FrontFace,
		Properties: map[string]interface{}{
			"material": materialProps,
			"geometry": geometryProps,
		},
	})
}
