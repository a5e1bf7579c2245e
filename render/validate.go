package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/caiyingchun/angstrom"
)

//Errors

//errDecorate is a helper function for error handling
func errDecorate(err error, caller string) error {
	err2 := err.(angstrom.Error) //every error type in this package implements angstrom.Error
	err2.Decorate(caller)
	return err2
}

// ConfigError reports invalid or unrecognized configuration values. One
// validation pass collects every violation it finds, so the error carries
// a list, not just the first problem.
type ConfigError struct {
	violations []string
	deco       []string
}

func (err *ConfigError) Error() string {
	return fmt.Sprintf("render: invalid configuration: %s", strings.Join(err.violations, "; "))
}

// Violations returns the individual problems, one message per offending key.
func (err *ConfigError) Violations() []string {
	return err.violations
}

// Decorate will add the dec string to the decoration slice of strings of the
// error, and return the resulting slice.
func (err *ConfigError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

func (err *ConfigError) Critical() bool { return true }

// Validate checks every constraint on the configuration: enum memberships,
// positivity of dimensions and intensities, color ranges and the cross-field
// rules tied to the script value. All violations are aggregated into one
// *ConfigError so the caller sees every problem in a single pass; it never
// short-circuits. Soft problems that do not prevent a render come back as
// warnings. Validate does not modify C.
func (C *Config) Validate() (warnings []string, err error) {
	var v []string
	if !isInString(ImgFormats, C.ImgFormat) {
		v = append(v, fmt.Sprintf("img_format: %q is not one of %s", C.ImgFormat, strings.Join(ImgFormats, ", ")))
	}
	if !isInString(VidFormats, C.VidFormat) {
		v = append(v, fmt.Sprintf("vid_format: %q is not one of %s", C.VidFormat, strings.Join(VidFormats, ", ")))
	}
	if !isInString(Scripts, C.Script) {
		v = append(v, fmt.Sprintf("script: %q is not one of %s", C.Script, strings.Join(Scripts, ", ")))
	}
	if C.Script == ScriptVid {
		if len(C.Images) == 0 {
			v = append(v, fmt.Sprintf("images: must not be empty when script is %q (the video is assembled from images at fps)", ScriptVid))
		}
		if C.VidFile == "" {
			v = append(v, fmt.Sprintf("vid_file: must be set when script is %q", ScriptVid))
		}
		if C.FPS <= 0 {
			v = append(v, fmt.Sprintf("fps: must be positive when script is %q, have %d", ScriptVid, C.FPS))
		}
	}
	if C.Script == ScriptImg && len(C.Images) > 0 {
		warnings = append(warnings, fmt.Sprintf("images: %d listed but script is %q, they will be ignored", len(C.Images), ScriptImg))
	}
	if c, set := C.BackgroundColor.Color(); set && !validRGB(c) {
		v = append(v, fmt.Sprintf("background_color: components must lie in [0,1], have %v", c))
	}
	if C.Resolution[0] <= 0 || C.Resolution[1] <= 0 {
		v = append(v, fmt.Sprintf("resolution: dimensions must be positive, have %dx%d", C.Resolution[0], C.Resolution[1]))
	}
	if C.Brightness <= 0 {
		v = append(v, fmt.Sprintf("brightness: must be positive, have %g", C.Brightness))
	}
	if C.Lamp <= 0 {
		v = append(v, fmt.Sprintf("lamp: must be positive, have %g", C.Lamp))
	}
	if !isInString(CameraTypes, C.Camera.Type) {
		v = append(v, fmt.Sprintf("camera.type: %q is not one of %s", C.Camera.Type, strings.Join(CameraTypes, ", ")))
	}
	if C.Camera.Zoom <= 0 {
		v = append(v, fmt.Sprintf("camera.zoom: must be positive, have %g", C.Camera.Zoom))
	}
	elements := make([]string, 0, len(C.Colors))
	for name := range C.Colors {
		elements = append(elements, name)
	}
	sort.Strings(elements)
	for _, name := range elements {
		if c := C.Colors[name]; !validRGB(c) {
			v = append(v, fmt.Sprintf("colors.%s: components must lie in [0,1], have %v", name, c))
		}
	}
	v = append(v, C.PDB.validate()...)
	if len(v) > 0 {
		return warnings, &ConfigError{violations: v}
	}
	return warnings, nil
}

func validRGB(c RGB) bool {
	for _, x := range c {
		if x < 0 || x > 1 {
			return false
		}
	}
	return true
}

func (P *PDBConfig) validate() []string {
	var v []string
	if !isInString(ballTypes, P.Ball) {
		v = append(v, fmt.Sprintf("pdb.ball: %q is not one of %s", P.Ball, strings.Join(ballTypes, ", ")))
	}
	if !isInString(atomRadiusTypes, P.AtomRadius) {
		v = append(v, fmt.Sprintf("pdb.atomradius: %q is not one of %s", P.AtomRadius, strings.Join(atomRadiusTypes, ", ")))
	}
	if !isInString(stickTypes, P.SticksType) {
		v = append(v, fmt.Sprintf("pdb.use_sticks_type: %q is not one of %s", P.SticksType, strings.Join(stickTypes, ", ")))
	}
	if P.MeshAzimuth <= 0 {
		v = append(v, fmt.Sprintf("pdb.mesh_azimuth: must be positive, have %d", P.MeshAzimuth))
	}
	if P.MeshZenith <= 0 {
		v = append(v, fmt.Sprintf("pdb.mesh_zenith: must be positive, have %d", P.MeshZenith))
	}
	if P.ScaleBallRadius < 0 {
		v = append(v, fmt.Sprintf("pdb.scale_ballradius: must not be negative, have %g", P.ScaleBallRadius))
	}
	if P.ScaleDistances <= 0 {
		v = append(v, fmt.Sprintf("pdb.scale_distances: must be positive, have %g", P.ScaleDistances))
	}
	if P.SticksSubdivView <= 0 {
		v = append(v, fmt.Sprintf("pdb.sticks_subdiv_view: must be positive, have %d", P.SticksSubdivView))
	}
	if P.SticksSubdivRender <= 0 {
		v = append(v, fmt.Sprintf("pdb.sticks_subdiv_render: must be positive, have %d", P.SticksSubdivRender))
	}
	if P.SticksSectors <= 0 {
		v = append(v, fmt.Sprintf("pdb.sticks_sectors: must be positive, have %d", P.SticksSectors))
	}
	if P.SticksRadius <= 0 {
		v = append(v, fmt.Sprintf("pdb.sticks_radius: must be positive, have %g", P.SticksRadius))
	}
	if P.SticksUnitLength <= 0 {
		v = append(v, fmt.Sprintf("pdb.sticks_unit_length: must be positive, have %g", P.SticksUnitLength))
	}
	if P.SticksDist < 1 || P.SticksDist > 3 {
		v = append(v, fmt.Sprintf("pdb.sticks_dist: must lie in [1,3], have %g", P.SticksDist))
	}
	if P.SticksOneObjectNr <= 0 {
		v = append(v, fmt.Sprintf("pdb.use_sticks_one_object_nr: must be positive, have %d", P.SticksOneObjectNr))
	}
	return v
}
