package render

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/klauspost/compress/zstd"
)

//Error is the general structure for file errors in this package: the
//transport artifact, the configuration file and the structure file.
//It fulfills angstrom.Error.
type Error struct {
	message  string
	filename string //the file that has problems, or empty string if none.
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("render file %s error: %s", err.filename, err.message)
}

//Decorate Adds new information to the error
func (E Error) Decorate(deco string) []string {
	//E.deco is a slice, and hence a pointer itself, so appending
	//through a value receiver still reaches the shared backing array.
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

//FileName returns the file associated to the error
func (err Error) FileName() string { return err.filename }

//Critical returns true if the error is critical, false otherwise
func (err Error) Critical() bool { return err.critical }

const (
	UnableToOpen    = "Unable to open file"
	UnableToCreate  = "Unable to create file"
	UnableToRead    = "Unable to read file"
	WrongArtifact   = "Wrong format in the transport artifact"
	NoStructureFile = "No structure file given"
)

// WriteArtifact serializes the configuration as zstd-compressed JSON to the
// file named by path (callers normally pass C.Pickle). The artifact is the
// only state that crosses the process boundary to the renderer. The file
// handle is released on every exit path.
func (C *Config) WriteArtifact(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return Error{UnableToCreate + ": " + err.Error(), path, []string{"WriteArtifact"}, true}
	}
	zw, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		f.Close()
		return Error{err.Error(), path, []string{"WriteArtifact"}, true}
	}
	err = json.NewEncoder(zw).Encode(C)
	if err2 := zw.Close(); err == nil {
		err = err2
	}
	if err2 := f.Close(); err == nil {
		err = err2
	}
	if err != nil {
		return Error{err.Error(), path, []string{"WriteArtifact"}, true}
	}
	return nil
}

// ReadArtifact reads back a transport artifact written by WriteArtifact.
// The returned configuration is field-for-field equal to the one that was
// serialized.
func ReadArtifact(filename string) (*Config, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, Error{UnableToOpen, filename, []string{"ReadArtifact"}, true}
	}
	defer f.Close()
	zr, err := zstd.NewReader(f)
	if err != nil {
		return nil, Error{WrongArtifact + ": " + err.Error(), filename, []string{"ReadArtifact"}, true}
	}
	defer zr.Close()
	C := new(Config)
	if err := json.NewDecoder(zr).Decode(C); err != nil {
		return nil, Error{WrongArtifact + ": " + err.Error(), filename, []string{"ReadArtifact"}, true}
	}
	return C, nil
}
