/*
 * blender_test.go, part of Angstrom.
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

package render

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

//a configuration that renders the benzene fixture through a do-nothing
//"renderer", so Run can be exercised without Blender installed.
func fakeRenderConfig(Te *testing.T, exe string) *Config {
	C := DefaultConfig()
	err := C.Merge(map[string]any{
		"executable": exe,
		"img_file":   filepath.Join(Te.TempDir(), "benzene.png"),
		"pickle":     filepath.Join(Te.TempDir(), "artifact.json.zst"),
		"pdb":        map[string]any{"filepath": "test/benzene.pdb"},
	})
	if err != nil {
		Te.Fatal(err)
	}
	return C
}

func TestRunValidatesFirst(Te *testing.T) {
	B := NewBlender()
	C := fakeRenderConfig(Te, "no-such-renderer-at-all")
	C.Camera.Type = "SPHERICAL"
	B.SetConfig(C)
	err := B.Run()
	var conf *ConfigError
	if !errors.As(err, &conf) {
		Te.Fatalf("an invalid configuration must fail before the process launch, got %T: %v", err, err)
	}
	fmt.Println("validation ran before the renderer:", err)
	if _, err := os.Stat(C.Pickle); err == nil {
		Te.Error("no artifact should be written for an invalid configuration")
	}
}

func TestRunNeedsStructureFile(Te *testing.T) {
	B := NewBlender()
	C := fakeRenderConfig(Te, "true")
	C.PDB.Filepath = ""
	B.SetConfig(C)
	if err := B.Run(); err == nil {
		Te.Error("expected an error for a still render with no structure file")
	}
	C.PDB.Filepath = "test/no-such-structure.pdb"
	B.SetConfig(C)
	err := B.Run()
	var ferr Error
	if !errors.As(err, &ferr) {
		Te.Fatalf("expected a file Error, got %T: %v", err, err)
	}
	if ferr.FileName() != "test/no-such-structure.pdb" {
		Te.Errorf("the error should carry the structure file path, got %q", ferr.FileName())
	}
}

func TestRunSuccess(Te *testing.T) {
	//"true" takes the artifact path and exits 0, like a well-behaved renderer.
	C := fakeRenderConfig(Te, "true")
	B := NewBlender()
	B.SetConfig(C)
	if err := B.Run(); err != nil {
		Te.Fatal(err)
	}
	if _, err := os.Stat(C.Pickle); err == nil {
		Te.Error("the artifact should be removed after a successful run")
	}
	//with verbose set the artifact stays behind for debugging.
	C2 := fakeRenderConfig(Te, "true")
	C2.Verbose = true
	B.SetConfig(C2)
	if err := B.Run(); err != nil {
		Te.Fatal(err)
	}
	if _, err := os.Stat(C2.Pickle); err != nil {
		Te.Error("a verbose run should keep the artifact:", err)
	}
}

func TestRunProcessFailure(Te *testing.T) {
	C := fakeRenderConfig(Te, "false")
	B := NewBlender()
	B.SetConfig(C)
	err := B.Run()
	var perr *ProcessError
	if !errors.As(err, &perr) {
		Te.Fatalf("expected a *ProcessError, got %T: %v", err, err)
	}
	fmt.Println("renderer failure surfaced:", perr)
	if perr.ExitCode() != 1 {
		Te.Errorf("expected exit code 1 from false, got %d", perr.ExitCode())
	}
	if _, err := os.Stat(C.Pickle); err != nil {
		Te.Error("the artifact should stay behind after a failed run for reproduction")
	}
	//an executable that cannot be located never gets an exit code.
	C2 := fakeRenderConfig(Te, "angstrom-no-such-renderer")
	B.SetConfig(C2)
	err = B.Run()
	if !errors.As(err, &perr) {
		Te.Fatalf("expected a *ProcessError, got %T: %v", err, err)
	}
	if perr.ExitCode() != -1 {
		Te.Errorf("expected exit code -1 for a renderer that never started, got %d", perr.ExitCode())
	}
}

func TestVideoConfig(Te *testing.T) {
	images := []string{"f0.png", "f1.png"}
	C := VideoConfig(images, "mol.avi", 24)
	if C.Script != ScriptVid || C.VidFile != "mol.avi" || C.FPS != 24 {
		Te.Errorf("video settings wrong: %+v", C)
	}
	images[0] = "changed.png"
	if C.Images[0] != "f0.png" {
		Te.Error("VideoConfig must copy the image list")
	}
	if _, err := C.Validate(); err != nil {
		Te.Error(err)
	}
}

func TestRenderFrames(Te *testing.T) {
	outdir := Te.TempDir()
	base := DefaultConfig()
	base.Executable = "true"
	frames := []string{"test/benzene.pdb", "test/benzene.pdb", "test/benzene.pdb"}
	images, err := RenderFrames(base, frames, outdir, 2)
	if err != nil {
		Te.Fatal(err)
	}
	if len(images) != 3 {
		Te.Fatalf("expected 3 image paths, got %d", len(images))
	}
	fmt.Println("frame images:", images)
	for i, img := range images {
		want := filepath.Join(outdir, fmt.Sprintf("benzene-%04d.png", i))
		if img != want {
			Te.Errorf("frame %d: expected %q, got %q", i, want, img)
		}
	}
	//base must not be touched by the per-frame clones.
	if base.PDB.Filepath != "" || base.ImgFile != "" {
		Te.Error("RenderFrames modified its base configuration")
	}
	if _, err := RenderFrames(base, nil, outdir, 2); err == nil {
		Te.Error("expected an error for an empty frame list")
	}
	base.Executable = "false"
	if _, err := RenderFrames(base, frames, outdir, 2); err == nil {
		Te.Error("expected the batch to fail when the renderer fails")
	}
}
