package emit

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// ZstdSuffix marks output paths that are written zstd-compressed.
const ZstdSuffix = ".zst"

// outputPerm is the mode of files created by WriteFile.
const outputPerm = 0o644

// NewCompressor wraps w in a zstd encoder. Close flushes the frame but does
// not close w.
func NewCompressor(w io.Writer) (io.WriteCloser, error) {
	enc, err := zstd.NewWriter(w)
	if err != nil {
		return nil, fmt.Errorf("emit: zstd: %w", err)
	}

	return enc, nil
}

// NewDecompressor reads a zstd stream produced by NewCompressor.
func NewDecompressor(r io.Reader) (io.ReadCloser, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("emit: zstd: %w", err)
	}

	return dec.IOReadCloser(), nil
}

// WriteFile renders doc to path in format f. The file is written to a
// temporary sibling and renamed into place only after every byte is flushed;
// on error nothing is left at path. A ".zst" suffix enables compression.
func WriteFile(path string, f Format, doc Document) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("emit: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = tmp.Chmod(outputPerm); err != nil {
		return fmt.Errorf("emit: %w", err)
	}

	var sink io.Writer = tmp
	var comp io.WriteCloser
	if strings.HasSuffix(path, ZstdSuffix) {
		if comp, err = NewCompressor(tmp); err != nil {
			return err
		}
		sink = comp
	}
	if err = Write(sink, f, doc); err != nil {
		return fmt.Errorf("emit: %s: %w", path, err)
	}
	if comp != nil {
		if err = comp.Close(); err != nil {
			return fmt.Errorf("emit: %s: zstd: %w", path, err)
		}
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("emit: %s: %w", path, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("emit: %w", err)
	}

	return nil
}
