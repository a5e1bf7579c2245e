package render

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"

	"github.com/caiyingchun/angstrom"
)

// ProcessError reports a renderer process that exited non-zero or could not
// be started at all. It carries the exit code (-1 if the process never ran)
// and the combined stdout/stderr captured from it, since the renderer has no
// structured error channel.
type ProcessError struct {
	program string
	code    int
	output  string
	message string
	deco    []string
}

func (err *ProcessError) Error() string {
	return fmt.Sprintf("render process %s error: %s", err.program, err.message)
}

// ExitCode returns the exit code of the renderer, or -1 if it never started.
func (err *ProcessError) ExitCode() int { return err.code }

// Output returns the combined stdout and stderr of the renderer.
func (err *ProcessError) Output() string { return err.output }

//Decorate Adds new information to the error
func (err *ProcessError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

func (err *ProcessError) Critical() bool { return true }

// Blender drives one render through an external renderer process. The only
// state shared with that process is the transport artifact, so the handle is
// a narrow boundary: configuration in, exit code and output files out.
// Blender the program is the default renderer, but any executable that takes
// the artifact path as its single argument will do.
type Blender struct {
	config *Config
}

// NewBlender returns a handle loaded with the default configuration.
func NewBlender() *Blender {
	return &Blender{config: DefaultConfig()}
}

// Config returns the handle's current configuration.
func (B *Blender) Config() *Config { return B.config }

// SetConfig replaces the handle's configuration.
func (B *Blender) SetConfig(C *Config) { B.config = C }

// Run performs one render request, synchronously: it validates the
// configuration, checks that the structure file is there (for still images),
// writes the transport artifact to the pickle path and launches
// `executable <artifact-path>`, waiting for it to finish. Validation
// problems surface before anything is written or launched. On success the
// artifact is removed, unless verbose is set, in which case it is kept for
// debugging; on a process failure it is also kept, and the returned
// *ProcessError carries the exit code and the captured output. Run does not
// retry: a failed render may have partially written output files. Timeout
// and cancellation policy belongs to the caller.
func (B *Blender) Run() error {
	if B.config == nil {
		panic(angstrom.PanicMsg("angstrom/render.Run: nil configuration"))
	}
	c := B.config
	warnings, err := c.Validate()
	if err != nil {
		return errDecorate(err, "Run")
	}
	for _, w := range warnings {
		slog.Warn(w)
	}
	if c.Script == ScriptImg {
		if c.PDB.Filepath == "" {
			return Error{NoStructureFile, "", []string{"Run"}, true}
		}
		if _, err := os.Stat(c.PDB.Filepath); err != nil {
			return Error{UnableToOpen + ": " + err.Error(), c.PDB.Filepath, []string{"Run"}, true}
		}
	}
	if err := c.WriteArtifact(c.Pickle); err != nil {
		return errDecorate(err, "Run")
	}
	cmd := exec.Command(c.Executable, c.Pickle)
	var output bytes.Buffer
	cmd.Stdout = &output
	cmd.Stderr = &output
	if err := cmd.Run(); err != nil {
		code := -1
		var exit *exec.ExitError
		if errors.As(err, &exit) {
			code = exit.ExitCode()
		}
		//the artifact stays behind so the failure can be reproduced by hand
		return &ProcessError{program: c.Executable, code: code, output: output.String(), message: err.Error(), deco: []string{"Run"}}
	}
	if c.Verbose {
		slog.Debug("renderer finished", "executable", c.Executable, "output", output.String())
		slog.Debug("transport artifact kept", "path", c.Pickle)
		return nil
	}
	if err := os.Remove(c.Pickle); err != nil {
		return Error{err.Error(), c.Pickle, []string{"Run"}, false}
	}
	return nil
}
