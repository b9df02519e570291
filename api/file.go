package api

import (
	"io"
	"os"
)

// StdStream is the path that stands for standard output.
const StdStream = "-"

// FileSource reads an image from disk.
type FileSource struct {
	Path string
}

func (s FileSource) Name() string {
	return s.Path
}

func (s FileSource) Load() ([]byte, error) {
	return os.ReadFile(s.Path)
}

// FileSink writes the listing to a file, or to Stdout when Path is
// StdStream.
type FileSink struct {
	Path   string
	Stdout io.Writer
}

func (s FileSink) Name() string {
	if s.Path == StdStream {
		return "stdout"
	}
	return s.Path
}

func (s FileSink) Store(listing []byte) error {
	if s.Path != StdStream {
		return os.WriteFile(s.Path, listing, 0o644)
	}

	w := s.Stdout
	if w == nil {
		w = os.Stdout
	}

	_, err := w.Write(listing)
	return err
}
