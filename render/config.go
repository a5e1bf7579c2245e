package render

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//The script values selecting what the renderer produces.
const (
	ScriptImg = "img" //a still image of one structure file
	ScriptVid = "vid" //a video sequenced from already-rendered images
)

//Camera projection types.
const (
	CameraOrtho = "ORTHO"
	CameraPersp = "PERSP"
)

// Transparent is the YAML spelling for an unset background color.
const Transparent = "transparent"

// DefaultArtifact is the default path of the transport artifact.
const DefaultArtifact = "temp-config.json.zst"

//Valid values for the enumerated configuration fields.
var (
	ImgFormats  = []string{"PNG", "JPEG", "BMP", "TIFF", "TARGA", "OPEN_EXR"}
	VidFormats  = []string{"AVI_JPEG", "AVI_RAW", "FFMPEG", "H264", "XVID"}
	Scripts     = []string{ScriptImg, ScriptVid}
	CameraTypes = []string{CameraOrtho, CameraPersp}

	ballTypes       = []string{"0", "1", "2"}
	atomRadiusTypes = []string{"0", "1", "2"}
	stickTypes      = []string{"0", "1", "2"}
)

// RGB is a color with components in [0,1].
type RGB [3]float64

// Vec3 is a cartesian 3-vector, serialized as a plain sequence.
type Vec3 [3]float64

// Resolution is a width, height pair in pixels.
type Resolution [2]int

// FallbackColor is the color given to elements that are missing from the
// Colors table: a neutral gray. Lookups never fail; see ColorFor.
var FallbackColor = RGB{0.5, 0.5, 0.5}

// Background is an optional RGB background color. The zero value means
// transparent. In YAML it is null, the string "transparent", or an RGB
// sequence; in the transport artifact it is null or an RGB array.
type Background struct {
	rgb RGB
	set bool
}

// Opaque returns a set background of the given color.
func Opaque(c RGB) Background { return Background{rgb: c, set: true} }

// Transparent reports whether the background is unset.
func (b Background) Transparent() bool { return !b.set }

// Color returns the background color and whether it is set at all.
func (b Background) Color() (RGB, bool) { return b.rgb, b.set }

func (b *Background) UnmarshalYAML(value *yaml.Node) error {
	if value.Tag == "!!null" {
		*b = Background{}
		return nil
	}
	if value.Kind == yaml.ScalarNode {
		var s string
		if err := value.Decode(&s); err == nil {
			if s == Transparent {
				*b = Background{}
				return nil
			}
			return &ConfigError{violations: []string{fmt.Sprintf("background_color: %q is not %q or an RGB sequence", s, Transparent)}}
		}
	}
	var c RGB
	if err := value.Decode(&c); err != nil {
		return err
	}
	*b = Background{rgb: c, set: true}
	return nil
}

func (b Background) MarshalYAML() (interface{}, error) {
	if !b.set {
		return nil, nil
	}
	return b.rgb, nil
}

func (b Background) MarshalJSON() ([]byte, error) {
	if !b.set {
		return []byte("null"), nil
	}
	return json.Marshal(b.rgb)
}

func (b *Background) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*b = Background{}
		return nil
	}
	var c RGB
	if err := json.Unmarshal(data, &c); err != nil {
		return err
	}
	*b = Background{rgb: c, set: true}
	return nil
}

// CameraConfig places the renderer camera. Rotation components are in
// degrees.
type CameraConfig struct {
	Location Vec3    `yaml:"location" json:"location"`
	Rotation Vec3    `yaml:"rotation" json:"rotation"`
	Type     string  `yaml:"type" json:"type"`
	Zoom     float64 `yaml:"zoom" json:"zoom"`
}

// PDBConfig controls how the renderer interprets the structure file and
// draws atoms and bonds. The string enumerations keep the renderer-side
// encoding: ball 0 NURBS, 1 mesh, 2 metaballs; atomradius 0 pre-defined,
// 1 atomic, 2 van der Waals; use_sticks_type 0 dupliverts, 1 skin, 2 normal.
type PDBConfig struct {
	Filepath           string  `yaml:"filepath" json:"filepath"`
	UseCenter          bool    `yaml:"use_center" json:"use_center"`
	UseCamera          bool    `yaml:"use_camera" json:"use_camera"`
	UseLamp            bool    `yaml:"use_lamp" json:"use_lamp"`
	Ball               string  `yaml:"ball" json:"ball"`
	MeshAzimuth        int     `yaml:"mesh_azimuth" json:"mesh_azimuth"`
	MeshZenith         int     `yaml:"mesh_zenith" json:"mesh_zenith"`
	ScaleBallRadius    float64 `yaml:"scale_ballradius" json:"scale_ballradius"`
	ScaleDistances     float64 `yaml:"scale_distances" json:"scale_distances"`
	AtomRadius         string  `yaml:"atomradius" json:"atomradius"`
	UseSticks          bool    `yaml:"use_sticks" json:"use_sticks"`
	SticksType         string  `yaml:"use_sticks_type" json:"use_sticks_type"`
	SticksSubdivView   int     `yaml:"sticks_subdiv_view" json:"sticks_subdiv_view"`
	SticksSubdivRender int     `yaml:"sticks_subdiv_render" json:"sticks_subdiv_render"`
	SticksSectors      int     `yaml:"sticks_sectors" json:"sticks_sectors"`
	SticksRadius       float64 `yaml:"sticks_radius" json:"sticks_radius"`
	SticksUnitLength   float64 `yaml:"sticks_unit_length" json:"sticks_unit_length"`
	UseSticksColor     bool    `yaml:"use_sticks_color" json:"use_sticks_color"`
	UseSticksSmooth    bool    `yaml:"use_sticks_smooth" json:"use_sticks_smooth"`
	UseSticksBonds     bool    `yaml:"use_sticks_bonds" json:"use_sticks_bonds"`
	SticksDist         float64 `yaml:"sticks_dist" json:"sticks_dist"`
	UseSticksOneObject bool    `yaml:"use_sticks_one_object" json:"use_sticks_one_object"`
	SticksOneObjectNr  int     `yaml:"use_sticks_one_object_nr" json:"use_sticks_one_object_nr"`
}

// Config is the full render configuration: one nested record covering the
// output files and formats, the scene (camera, lamps, colors, background),
// the structure-file interpretation (pdb sub-record) and the process
// boundary (pickle, executable). A Config is built by merging overrides
// over DefaultConfig and is not modified once handed to a Blender handle.
type Config struct {
	ImgFile         string            `yaml:"img_file" json:"img_file"`
	ImgFormat       string            `yaml:"img_format" json:"img_format"`
	VidFile         string            `yaml:"vid_file" json:"vid_file"`
	VidFormat       string            `yaml:"vid_format" json:"vid_format"`
	Images          []string          `yaml:"images" json:"images"`
	FPS             int               `yaml:"fps" json:"fps"`
	Script          string            `yaml:"script" json:"script"`
	Render          bool              `yaml:"render" json:"render"`
	Save            string            `yaml:"save" json:"save"`
	BackgroundColor Background        `yaml:"background_color" json:"background_color"`
	Resolution      Resolution        `yaml:"resolution" json:"resolution"`
	Brightness      float64           `yaml:"brightness" json:"brightness"`
	Lamp            float64           `yaml:"lamp" json:"lamp"`
	Verbose         bool              `yaml:"verbose" json:"verbose"`
	Pickle          string            `yaml:"pickle" json:"pickle"`
	Executable      string            `yaml:"executable" json:"executable"`
	Camera          CameraConfig      `yaml:"camera" json:"camera"`
	Colors          map[string]RGB    `yaml:"colors" json:"colors"`
	PDB             PDBConfig         `yaml:"pdb" json:"pdb"`
}

// DefaultConfig returns the built-in defaults: a still PNG render of the
// (yet unset) structure file, full HD, orthographic camera looking down the
// z axis from 10 Angstroms away, and the standard element colors. Pure
// construction; maps and slices are fresh on every call.
func DefaultConfig() *Config {
	return &Config{
		ImgFormat:  "PNG",
		VidFormat:  "AVI_JPEG",
		FPS:        10,
		Script:     ScriptImg,
		Render:     true,
		Resolution: Resolution{1920, 1080},
		Brightness: 1.0,
		Lamp:       2.0,
		Pickle:     DefaultArtifact,
		Executable: "blender",
		Camera: CameraConfig{
			Location: Vec3{0, 0, 10},
			Rotation: Vec3{0, 0, 0},
			Type:     CameraOrtho,
			Zoom:     20,
		},
		Colors: map[string]RGB{
			"Carbon":   {0.05, 0.05, 0.05},
			"Hydrogen": {1.00, 1.00, 1.00},
			"Nitrogen": {0.18, 0.34, 0.95},
			"Oxygen":   {0.70, 0.00, 0.00},
		},
		PDB: PDBConfig{
			UseCenter:          true,
			Ball:               "0",
			MeshAzimuth:        32,
			MeshZenith:         32,
			ScaleBallRadius:    0.5,
			ScaleDistances:     1,
			AtomRadius:         "2",
			UseSticks:          true,
			SticksType:         "0",
			SticksSubdivView:   2,
			SticksSubdivRender: 2,
			SticksSectors:      20,
			SticksRadius:       0.25,
			SticksUnitLength:   0.05,
			UseSticksColor:     true,
			UseSticksSmooth:    true,
			SticksDist:         1.1,
			UseSticksOneObject: true,
			SticksOneObjectNr:  200,
		},
	}
}

// Clone returns a deep copy of the configuration.
func (C *Config) Clone() *Config {
	out := *C
	if C.Images != nil {
		out.Images = make([]string, len(C.Images))
		copy(out.Images, C.Images)
	}
	if C.Colors != nil {
		out.Colors = make(map[string]RGB, len(C.Colors))
		for k, v := range C.Colors {
			out.Colors[k] = v
		}
	}
	return &out
}

// ColorFor returns the configured color for an element (keyed by full name,
// e.g. "Oxygen"). Elements missing from the Colors table get FallbackColor;
// the lookup never fails.
func (C *Config) ColorFor(element string) RGB {
	if c, ok := C.Colors[element]; ok {
		return c
	}
	return FallbackColor
}

//Model presets, applied over the pdb sub-record.
var models = map[string]map[string]any{
	"default":        {},
	"ball_and_stick": {"scale_ballradius": 0.5, "sticks_radius": 0.2},
	"space_filling":  {"scale_ballradius": 1.0, "atomradius": "2", "use_sticks": false},
	"stick":          {"scale_ballradius": 0.0, "sticks_radius": 0.2, "use_sticks_type": "0"},
	"surface":        {"ball": "2", "use_sticks": false},
}

// ModelNames returns the names of the built-in model presets, sorted.
func ModelNames() []string {
	names := make([]string, 0, len(models))
	for n := range models {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// ApplyModel merges one of the built-in molecular representation presets
// over the pdb sub-record, leaving every other setting alone. An unknown
// preset name is a *ConfigError.
func (C *Config) ApplyModel(name string) error {
	m, ok := models[name]
	if !ok {
		return &ConfigError{violations: []string{fmt.Sprintf("model: unknown preset %q (have %s)", name, strings.Join(ModelNames(), ", "))}}
	}
	if len(m) == 0 {
		return nil
	}
	if err := C.Merge(map[string]any{"pdb": m}); err != nil {
		return errDecorate(err, "ApplyModel")
	}
	return nil
}

// CameraView returns the camera placement for one of the six axis-aligned
// view planes (xy, xz, yx, yz, zx, zy), with the camera at the given
// distance from the origin, in orthographic projection at the default zoom.
// Rotations come back in degrees.
func CameraView(plane string, distance float64) (CameraConfig, error) {
	d := distance
	views := map[string]CameraConfig{
		"xy": {Location: Vec3{0, 0, d}, Rotation: Vec3{0, 0, 0}},
		"xz": {Location: Vec3{0, -d, 0}, Rotation: Vec3{90, 0, 0}},
		"yx": {Location: Vec3{0, 0, -d}, Rotation: Vec3{0, 180, -90}},
		"yz": {Location: Vec3{d, 0, 0}, Rotation: Vec3{90, 0, 90}},
		"zx": {Location: Vec3{0, d, 0}, Rotation: Vec3{90, -90, 180}},
		"zy": {Location: Vec3{-d, 0, 0}, Rotation: Vec3{90, -90, -90}},
	}
	v, ok := views[plane]
	if !ok {
		return CameraConfig{}, &ConfigError{violations: []string{fmt.Sprintf("camera view: unknown plane %q (xy, xz, yx, yz, zx or zy)", plane)}}
	}
	v.Type = CameraOrtho
	v.Zoom = 20
	return v, nil
}

//isInString returns true if test is in container, false otherwise.
func isInString(container []string, test string) bool {
	for _, i := range container {
		if test == i {
			return true
		}
	}
	return false
}
