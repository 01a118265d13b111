package manifest

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// manifestExts are the manifest file extensions in priority order. When a
// folder holds more than one, the first wins.
var manifestExts = []string{".yaml", ".yml", ".json"}

// FileNames returns the candidate manifest file names for base name, in
// priority order.
func FileNames(name string) []string {
	if name == "" {
		name = DefaultName
	}
	names := make([]string, len(manifestExts))
	for i, ext := range manifestExts {
		names[i] = name + ext
	}
	return names
}

// Discover walks root and returns the manifest file of every folder that has
// one, in lexical order. Hidden directories are skipped.
func Discover(fsys afero.Fs, root, name string) ([]string, error) {
	info, err := fsys.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("reading content root %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("content root %s is not a directory", root)
	}

	candidates := FileNames(name)
	var found []string
	err = afero.Walk(fsys, root, func(path string, info fs.FileInfo, err error) error {
		if err != nil || !info.IsDir() {
			return nil // skip inaccessible entries and plain files
		}
		if path != root && strings.HasPrefix(info.Name(), ".") {
			return filepath.SkipDir
		}
		for _, c := range candidates {
			file := filepath.Join(path, c)
			if fi, err := fsys.Stat(file); err == nil && !fi.IsDir() {
				found = append(found, file)
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking content root %s: %w", root, err)
	}
	return found, nil
}

// LoadAll discovers and reads every manifest under root. It stops at the
// first manifest that cannot be read, parsed or validated.
func LoadAll(fsys afero.Fs, root, name string) ([]Descriptor, error) {
	files, err := Discover(fsys, root, name)
	if err != nil {
		return nil, err
	}

	descriptors := make([]Descriptor, 0, len(files))
	for _, file := range files {
		d, err := ReadFile(fsys, file)
		if err != nil {
			return nil, err
		}
		descriptors = append(descriptors, d)
	}
	return descriptors, nil
}

// Found is a manifest read successfully by Scan.
type Found struct {
	File       string
	Descriptor Descriptor
}

// ScanResult holds the outcome of Scan.
type ScanResult struct {
	Manifests []Found
	Problems  []*ParseError
}

// Descriptors returns the descriptors of every usable manifest.
func (r *ScanResult) Descriptors() []Descriptor {
	out := make([]Descriptor, len(r.Manifests))
	for i, m := range r.Manifests {
		out[i] = m.Descriptor
	}
	return out
}

// Find returns the manifest with the given id.
func (r *ScanResult) Find(id string) (Found, bool) {
	for _, m := range r.Manifests {
		if m.Descriptor.ID == id {
			return m, true
		}
	}
	return Found{}, false
}

// Scan is LoadAll for authoring tools: manifests that cannot be used are
// recorded in Problems and the walk continues. Two manifests sharing an id
// are reported too; the first one is kept.
func Scan(fsys afero.Fs, root, name string) (*ScanResult, error) {
	files, err := Discover(fsys, root, name)
	if err != nil {
		return nil, err
	}

	result := &ScanResult{}
	seen := make(map[string]string)
	for _, file := range files {
		d, err := ReadFile(fsys, file)
		if err != nil {
			var pe *ParseError
			if !errors.As(err, &pe) {
				pe = &ParseError{Source: file, Err: err}
			}
			result.Problems = append(result.Problems, pe)
			continue
		}
		if prev, dup := seen[d.ID]; dup {
			result.Problems = append(result.Problems, &ParseError{
				Source: file,
				Err:    fmt.Errorf("manifest id %q already declared by %s", d.ID, prev),
			})
			continue
		}
		seen[d.ID] = file
		result.Manifests = append(result.Manifests, Found{File: file, Descriptor: d})
	}
	return result, nil
}
