/*
 * main.go, part of Angstrom.
 *
 * Copyright 2026 The Angstrom developers
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//angstrom-render renders molecular structure files to images or videos
//through an external renderer (Blender by default).
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/caiyingchun/angstrom/render"
)

var flags struct {
	config     string
	exe        string
	model      string
	zoom       float64
	view       string
	distance   float64
	cameraType string
	brightness float64
	lamp       float64
	resolution string
	bcolor     string
	noRender   bool
	noCenter   bool
	save       string
	imgOut     string
	vidOut     string
	fps        int
	workers    int
	video      bool
	images     string
	frames     string
	verbose    bool
}

var rootCmd = &cobra.Command{
	Use:   "angstrom-render [flags] [structure-file]",
	Short: "Render molecular structure files through an external renderer",
	Long: `angstrom-render drives an external renderer (Blender by default) to turn
molecular structure files into still images, or to sequence rendered
images into a video.

A still image:
    angstrom-render --model ball_and_stick --view xz molecule.pdb
A video from already-rendered images:
    angstrom-render --video --images 'frames/*.png' --vid-out mol.avi
A video rendered frame by frame from structure files:
    angstrom-render --video --frames 'frames/*.pdb' --vid-out mol.avi`,
	Args: cobra.MaximumNArgs(1),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging()
	},
	SilenceUsage: true,
	RunE:         run,
}

func setupLogging() {
	level := slog.LevelInfo
	if flags.verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

func init() {
	f := rootCmd.Flags()
	f.StringVarP(&flags.config, "config", "c", "", "YAML configuration file merged over the defaults")
	f.StringVar(&flags.exe, "exe", "", "renderer executable name or path")
	f.StringVarP(&flags.model, "model", "m", "", "molecular representation preset: "+strings.Join(render.ModelNames(), ", "))
	f.Float64Var(&flags.zoom, "zoom", 0, "camera zoom")
	f.StringVar(&flags.view, "view", "", "camera view plane: xy, xz, yx, yz, zx or zy")
	f.Float64Var(&flags.distance, "distance", 10, "camera distance used with --view")
	f.StringVar(&flags.cameraType, "camera-type", "", "camera projection: ORTHO or PERSP")
	f.Float64Var(&flags.brightness, "brightness", 0, "scene brightness multiplier")
	f.Float64Var(&flags.lamp, "lamp", 0, "lamp intensity multiplier")
	f.StringVarP(&flags.resolution, "resolution", "r", "", "image resolution as WIDTHxHEIGHT")
	f.StringVar(&flags.bcolor, "bcolor", "", "background color as R,G,B in [0,1], or \"transparent\"")
	f.BoolVar(&flags.noRender, "no-render", false, "set up the scene but do not render")
	f.BoolVar(&flags.noCenter, "no-center", false, "do not center the structure before rendering")
	f.StringVar(&flags.save, "save", "", "persist the scene file at this path")
	f.StringVarP(&flags.imgOut, "img-out", "o", "", "output image path")
	f.StringVar(&flags.vidOut, "vid-out", "", "output video path (with --video)")
	f.IntVar(&flags.fps, "fps", 0, "video frames per second")
	f.IntVarP(&flags.workers, "workers", "w", 0, "max parallel renderer processes for --frames (0 = GOMAXPROCS)")
	f.BoolVar(&flags.video, "video", false, "produce a video instead of a still image")
	f.StringVar(&flags.images, "images", "", "glob of already-rendered images to sequence (with --video)")
	f.StringVar(&flags.frames, "frames", "", "glob of structure files to render frame by frame (with --video)")
	f.BoolVarP(&flags.verbose, "verbose", "v", false, "verbose logging, keeps the transport artifact")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	C, err := baseConfig()
	if err != nil {
		return err
	}
	if flags.video {
		return runVideo(C)
	}
	if len(args) == 0 {
		return fmt.Errorf("a structure file is needed unless --video is given")
	}
	return runStill(C, args[0])
}

//baseConfig builds the configuration shared by the still and video paths:
//defaults, then the --config file, then the individual flags, each layer
//merged over the previous one.
func baseConfig() (*render.Config, error) {
	var C *render.Config
	var err error
	if flags.config != "" {
		C, err = render.ConfigRead(flags.config)
		if err != nil {
			return nil, err
		}
	} else {
		C = render.DefaultConfig()
	}
	overrides, err := flagOverrides()
	if err != nil {
		return nil, err
	}
	if err := C.Merge(overrides); err != nil {
		return nil, err
	}
	if flags.model != "" {
		if err := C.ApplyModel(flags.model); err != nil {
			return nil, err
		}
	}
	if flags.view != "" {
		cam, err := render.CameraView(flags.view, flags.distance)
		if err != nil {
			return nil, err
		}
		if flags.cameraType != "" {
			cam.Type = flags.cameraType
		}
		if flags.zoom != 0 {
			cam.Zoom = flags.zoom
		}
		C.Camera = cam
	}
	return C, nil
}

//flagOverrides turns the explicitly set flags into an override map, so the
//flag values go through the same strict merge as a configuration file.
func flagOverrides() (map[string]any, error) {
	o := map[string]any{}
	camera := map[string]any{}
	if flags.exe != "" {
		o["executable"] = flags.exe
	}
	if flags.brightness != 0 {
		o["brightness"] = flags.brightness
	}
	if flags.lamp != 0 {
		o["lamp"] = flags.lamp
	}
	if flags.resolution != "" {
		res, err := parseResolution(flags.resolution)
		if err != nil {
			return nil, err
		}
		o["resolution"] = res
	}
	if flags.bcolor != "" {
		bc, err := parseBackground(flags.bcolor)
		if err != nil {
			return nil, err
		}
		o["background_color"] = bc
	}
	if flags.noRender {
		o["render"] = false
	}
	if flags.noCenter {
		o["pdb"] = map[string]any{"use_center": false}
	}
	if flags.save != "" {
		o["save"] = flags.save
	}
	if flags.imgOut != "" {
		o["img_file"] = flags.imgOut
	}
	if flags.vidOut != "" {
		o["vid_file"] = flags.vidOut
	}
	if flags.fps != 0 {
		o["fps"] = flags.fps
	}
	if flags.verbose {
		o["verbose"] = true
	}
	if flags.view == "" {
		if flags.cameraType != "" {
			camera["type"] = flags.cameraType
		}
		if flags.zoom != 0 {
			camera["zoom"] = flags.zoom
		}
		if len(camera) > 0 {
			o["camera"] = camera
		}
	}
	return o, nil
}

func parseResolution(s string) ([]int, error) {
	parts := strings.Split(s, "x")
	if len(parts) != 2 {
		return nil, fmt.Errorf("resolution must be WIDTHxHEIGHT, not %q", s)
	}
	w, err := strconv.Atoi(parts[0])
	if err != nil {
		return nil, fmt.Errorf("resolution width %q: %v", parts[0], err)
	}
	h, err := strconv.Atoi(parts[1])
	if err != nil {
		return nil, fmt.Errorf("resolution height %q: %v", parts[1], err)
	}
	return []int{w, h}, nil
}

func parseBackground(s string) (any, error) {
	if s == render.Transparent {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return nil, fmt.Errorf("background color must be R,G,B or %q, not %q", render.Transparent, s)
	}
	rgb := make([]float64, 3)
	for i, p := range parts {
		c, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("background color component %q: %v", p, err)
		}
		rgb[i] = c
	}
	return rgb, nil
}

func runStill(C *render.Config, structure string) error {
	if err := C.Merge(map[string]any{
		"script": render.ScriptImg,
		"pdb":    map[string]any{"filepath": structure},
	}); err != nil {
		return err
	}
	if C.ImgFile == "" {
		base := strings.TrimSuffix(structure, filepath.Ext(structure))
		if err := C.Merge(map[string]any{"img_file": base + ".png"}); err != nil {
			return err
		}
	}
	B := render.NewBlender()
	B.SetConfig(C)
	if err := B.Run(); err != nil {
		return err
	}
	slog.Info("rendered", "image", C.ImgFile)
	return nil
}

func runVideo(C *render.Config) error {
	if flags.vidOut == "" {
		return fmt.Errorf("--video needs --vid-out")
	}
	if (flags.images == "") == (flags.frames == "") {
		return fmt.Errorf("--video needs exactly one of --images or --frames")
	}
	images := []string{}
	if flags.frames != "" {
		structures, err := filepath.Glob(flags.frames)
		if err != nil || len(structures) == 0 {
			return fmt.Errorf("no structure files match %q", flags.frames)
		}
		outdir := filepath.Dir(flags.vidOut)
		slog.Info("rendering frames", "count", len(structures), "outdir", outdir)
		images, err = render.RenderFrames(C, structures, outdir, flags.workers)
		if err != nil {
			return err
		}
	} else {
		var err error
		images, err = filepath.Glob(flags.images)
		if err != nil || len(images) == 0 {
			return fmt.Errorf("no images match %q", flags.images)
		}
	}
	V := render.VideoConfig(images, flags.vidOut, C.FPS)
	V.Executable = C.Executable
	V.Verbose = C.Verbose
	V.Pickle = C.Pickle
	B := render.NewBlender()
	B.SetConfig(V)
	if err := B.Run(); err != nil {
		return err
	}
	slog.Info("video assembled", "video", flags.vidOut, "images", len(images), "fps", V.FPS)
	return nil
}
