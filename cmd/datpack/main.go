// Command datpack decompresses container pack files and bare core streams.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/huffdat/datpack/archive"
	"github.com/huffdat/datpack/container"
	"github.com/huffdat/datpack/dat"
	"github.com/huffdat/datpack/pkg/fileio"
)

var (
	inputFile = flag.String("i", "", "input file path (required)")
	entryName = flag.String("entry", "", "pack file name inside an archive (auto-detect if omitted)")
	outDir    = flag.String("o", "", "output directory (required)")
	capFlag   = flag.Int("cap", 0, "override the decoded buffer's allocation size (0 uses the stream's declared size)")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s -i <path> -o <dir> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Decompresses container pack files and bare core streams.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -i assets.dat -o out/\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -i bundle.zip -entry assets.dat -o out/\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -i assets.dat -o out/ -cap 1048576\n", os.Args[0])
	}
	flag.Parse()

	if *inputFile == "" || *outDir == "" {
		fmt.Fprintf(os.Stderr, "Error: input path (-i) and output directory (-o) are required\n")
		flag.Usage()
		os.Exit(1)
	}

	data, err := loadInput(*inputFile, *entryName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	if err := unpack(data, *outDir, *capFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error unpacking: %v\n", err)
		os.Exit(1)
	}
}

// loadInput resolves -i to a byte slice, following an archive-embedded path
// when one is present and falling back to a plain (optionally gzipped) file
// otherwise.
func loadInput(path, entry string) ([]byte, error) {
	archivePath, err := archive.ParsePath(path)
	if err != nil {
		return nil, fmt.Errorf("parse path: %w", err)
	}
	if archivePath != nil {
		return loadFromArchive(archivePath.ArchivePath, archivePath.InternalPath, entry)
	}

	if archive.IsArchivePath(path) {
		return loadFromArchive(path, "", entry)
	}

	if err := fileio.CheckExists(path); err != nil {
		return nil, err
	}
	r, err := fileio.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = r.Close() }()

	return fileio.ReadAll(r)
}

func loadFromArchive(archivePath, internalPath, entry string) ([]byte, error) {
	arc, err := archive.Open(archivePath)
	if err != nil {
		return nil, fmt.Errorf("open archive %s: %w", archivePath, err)
	}
	defer func() { _ = arc.Close() }()

	switch {
	case entry != "":
		internalPath = entry
	case internalPath == "":
		internalPath, err = archive.DetectPackFile(arc)
		if err != nil {
			return nil, fmt.Errorf("detect pack file in %s: %w", archivePath, err)
		}
	}

	reader, _, err := arc.Open(internalPath)
	if err != nil {
		return nil, fmt.Errorf("open %s in archive: %w", internalPath, err)
	}
	defer func() { _ = reader.Close() }()

	return io.ReadAll(reader)
}

// unpack decompresses data, which is either a container pack file (multiple
// hunks dispatched through the codec registry) or a bare core stream, and
// writes the recovered payload to outDir.
func unpack(data []byte, outDir string, customCap int) error {
	c, err := container.Open(bytes.NewReader(data))
	switch {
	case err == nil:
		return unpackContainer(c, outDir)
	case errors.Is(err, container.ErrInvalidMagic):
		return unpackCoreStream(data, outDir, customCap)
	default:
		return fmt.Errorf("open container: %w", err)
	}
}

func unpackContainer(c *container.Container, outDir string) error {
	payload, err := c.ReadAll()
	if err != nil {
		return fmt.Errorf("read hunks: %w", err)
	}
	return os.WriteFile(filepath.Join(outDir, "payload.bin"), payload, 0o644)
}

func unpackCoreStream(data []byte, outDir string, customCap int) error {
	result, err := dat.Decompress(data, 0, customCap)
	if err != nil {
		return fmt.Errorf("decompress core stream: %w", err)
	}
	return os.WriteFile(filepath.Join(outDir, "payload.bin"), result.Bytes[:result.Length], 0o644)
}
