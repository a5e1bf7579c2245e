package render

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/caiyingchun/angstrom"
	"gopkg.in/yaml.v3"
)

//The recognized configuration keys, per record. The colors table is
//free-form (any element name is a key) so it has no table here.
var (
	configKeys = []string{
		"img_file", "img_format", "vid_file", "vid_format", "images",
		"fps", "script", "render", "save", "background_color",
		"resolution", "brightness", "lamp", "verbose", "pickle",
		"executable", "camera", "colors", "pdb",
	}
	cameraKeys = []string{"location", "rotation", "type", "zoom"}
	pdbKeys    = []string{
		"filepath", "use_center", "use_camera", "use_lamp", "ball",
		"mesh_azimuth", "mesh_zenith", "scale_ballradius",
		"scale_distances", "atomradius", "use_sticks", "use_sticks_type",
		"sticks_subdiv_view", "sticks_subdiv_render", "sticks_sectors",
		"sticks_radius", "sticks_unit_length", "use_sticks_color",
		"use_sticks_smooth", "use_sticks_bonds", "sticks_dist",
		"use_sticks_one_object", "use_sticks_one_object_nr",
	}
)

// Merge applies overrides over the current values of C. Only the keys
// present in the override map change; the camera and pdb records and the
// colors table merge key-wise, everything else keeps its value. Unknown
// keys are rejected by name, qualified by their record ("camera.typ"),
// all of them in one *ConfigError. On error C is left unchanged.
func (C *Config) Merge(overrides map[string]any) error {
	if len(overrides) == 0 {
		return nil
	}
	if bad := unknownKeys(overrides); len(bad) > 0 {
		return &ConfigError{violations: bad}
	}
	raw, err := yaml.Marshal(overrides)
	if err != nil {
		panic(angstrom.PanicMsg(fmt.Sprintf("angstrom/render.Merge: overrides not serializable: %v", err)))
	}
	tmp := C.Clone()
	if err := applyYAML(tmp, bytes.NewReader(raw)); err != nil {
		return errDecorate(err, "Merge")
	}
	*C = *tmp
	return nil
}

// MergeYAML reads one YAML document from r and merges it over C, with the
// same semantics as Merge. An empty document changes nothing.
func (C *Config) MergeYAML(r io.Reader) error {
	var overrides map[string]any
	if err := yaml.NewDecoder(r).Decode(&overrides); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return yamlError(err)
	}
	if err := C.Merge(overrides); err != nil {
		return errDecorate(err, "MergeYAML")
	}
	return nil
}

// ConfigRead builds a configuration from a YAML file: the built-in
// defaults with the file's settings merged on top.
func ConfigRead(filename string) (*Config, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, &Error{message: UnableToOpen, filename: filename, critical: true}
	}
	defer f.Close()
	C := DefaultConfig()
	if err := C.MergeYAML(f); err != nil {
		return nil, errDecorate(err, "ConfigRead "+filename)
	}
	return C, nil
}

//applyYAML strict-decodes one YAML document over the already populated dst,
//so fields absent from the document keep their values.
func applyYAML(dst *Config, r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return yamlError(err)
	}
	return nil
}

//yamlError shapes a yaml decoding failure into a *ConfigError.
func yamlError(err error) error {
	var conf *ConfigError
	if errors.As(err, &conf) {
		return conf
	}
	var terr *yaml.TypeError
	if errors.As(err, &terr) {
		return &ConfigError{violations: terr.Errors}
	}
	return &ConfigError{violations: []string{err.Error()}}
}

//unknownKeys collects the override keys that no configuration record has,
//sorted. Non-map values for camera or pdb are left to the decoder, which
//reports the type mismatch.
func unknownKeys(overrides map[string]any) []string {
	var bad []string
	for k, v := range overrides {
		if !isInString(configKeys, k) {
			bad = append(bad, fmt.Sprintf("unrecognized configuration key %q", k))
			continue
		}
		switch k {
		case "camera":
			bad = append(bad, unknownNested("camera", v, cameraKeys)...)
		case "pdb":
			bad = append(bad, unknownNested("pdb", v, pdbKeys)...)
		}
	}
	sort.Strings(bad)
	return bad
}

func unknownNested(record string, v any, known []string) []string {
	m, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	var bad []string
	for k := range m {
		if !isInString(known, k) {
			bad = append(bad, fmt.Sprintf("unrecognized configuration key %q", record+"."+k))
		}
	}
	return bad
}
