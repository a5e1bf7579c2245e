package render

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/caiyingchun/angstrom"
	"golang.org/x/sync/errgroup"
)

//File extensions for the supported still-image formats.
var imgExtensions = map[string]string{
	"PNG":      ".png",
	"JPEG":     ".jpg",
	"BMP":      ".bmp",
	"TIFF":     ".tif",
	"TARGA":    ".tga",
	"OPEN_EXR": ".exr",
}

// VideoConfig returns a configuration that sequences already-rendered
// images into a video at vidFile, at fps frames per second. Everything else
// keeps its default value; validate and run it through a Blender handle as
// usual.
func VideoConfig(images []string, vidFile string, fps int) *Config {
	C := DefaultConfig()
	C.Script = ScriptVid
	C.Images = make([]string, len(images))
	copy(C.Images, images)
	C.VidFile = vidFile
	C.FPS = fps
	return C
}

// RenderFrames renders one still image per structure file in frames, into
// outdir, running at most workers renderer processes at a time (GOMAXPROCS
// if workers <= 0). Each frame gets its own clone of base and its own
// transport artifact under outdir, so parallel invocations share no state.
// The rendered image paths come back in frame order. The first failing
// frame makes the whole batch fail; frames already running are finished,
// not killed, since no cancellation is defined at this layer.
func RenderFrames(base *Config, frames []string, outdir string, workers int) ([]string, error) {
	if base == nil {
		panic(angstrom.PanicMsg("angstrom/render.RenderFrames: nil base configuration"))
	}
	if len(frames) == 0 {
		return nil, &ConfigError{violations: []string{"frames: no structure files given"}}
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	ext, ok := imgExtensions[base.ImgFormat]
	if !ok {
		ext = ".png" //a bad img_format fails validation inside Run anyway
	}
	images := make([]string, len(frames))
	var g errgroup.Group
	g.SetLimit(workers)
	for i, frame := range frames {
		i, frame := i, frame
		g.Go(func() error {
			C := base.Clone()
			C.Script = ScriptImg
			C.Images = nil
			C.PDB.Filepath = frame
			C.ImgFile = filepath.Join(outdir, imgName(frame, i, ext))
			C.Pickle = filepath.Join(outdir, fmt.Sprintf("angstrom-frame-%04d.json.zst", i))
			B := NewBlender()
			B.SetConfig(C)
			if err := B.Run(); err != nil {
				return errDecorate(err, fmt.Sprintf("RenderFrames frame %d", i))
			}
			images[i] = C.ImgFile
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return images, nil
}

func imgName(frame string, i int, ext string) string {
	name := strings.TrimSuffix(filepath.Base(frame), filepath.Ext(frame))
	return fmt.Sprintf("%s-%04d%s", name, i, ext)
}
