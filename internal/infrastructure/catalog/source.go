package catalog

import (
	_ "embed"
	"fmt"
	"os"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

// Source supplies raw catalog YAML.
type Source interface {
	// Name identifies the source in logs and errors.
	Name() string
	Read() ([]byte, error)
}

type embeddedSource struct{}

// Embedded returns the catalog compiled into the binary.
func Embedded() Source { return embeddedSource{} }

func (embeddedSource) Name() string { return "embedded" }

func (embeddedSource) Read() ([]byte, error) {
	return append([]byte(nil), embeddedCatalog...), nil
}

type fileSource struct{ path string }

// File returns a source that reads path on every Read.
func File(path string) Source { return fileSource{path: path} }

func (s fileSource) Name() string { return "file:" + s.path }

func (s fileSource) Read() ([]byte, error) {
	return os.ReadFile(s.path)
}

type bytesSource struct {
	name string
	data []byte
}

// Bytes returns a source backed by data.
func Bytes(name string, data []byte) Source {
	return bytesSource{name: name, data: append([]byte(nil), data...)}
}

func (s bytesSource) Name() string { return fmt.Sprintf("bytes:%s", s.name) }

func (s bytesSource) Read() ([]byte, error) {
	return append([]byte(nil), s.data...), nil
}

// SourceFor maps a configured path to a Source.  An empty path selects the
// embedded catalog.
func SourceFor(path string) Source {
	if path == "" {
		return Embedded()
	}
	return File(path)
}
