package scaffold

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"

	"github.com/agentx-labs/contentx/internal/loader"
	"github.com/agentx-labs/contentx/internal/manifest"
	"github.com/agentx-labs/contentx/internal/resource"
	"github.com/spf13/afero"
	"go.yaml.in/yaml/v3"
)

//go:embed templates
var templateFS embed.FS

var manifestTemplate = template.Must(
	template.New("manifest.yaml.tmpl").
		Funcs(template.FuncMap{"quote": strconv.Quote}).
		ParseFS(templateFS, "templates/manifest.yaml.tmpl"),
)

// ErrExists is returned when a scaffold would overwrite an existing file or
// entry.
var ErrExists = errors.New("already exists")

// Result holds the outcome of a scaffold operation.
type Result struct {
	Dir      string
	Files    []string
	Warnings []string
}

// Scaffolder writes into a content root.
type Scaffolder struct {
	fs      afero.Fs
	root    string
	name    string
	loaders *loader.Registry
}

// New returns a Scaffolder for the content root at root. name is the manifest
// base name; loaders resolves the loader named by new entries.
func New(fsys afero.Fs, root, name string, loaders *loader.Registry) *Scaffolder {
	if name == "" {
		name = manifest.DefaultName
	}
	return &Scaffolder{fs: fsys, root: root, name: name, loaders: loaders}
}

// CreateFolder creates the folder path under the content root with an empty
// manifest called id. JSON manifests are serialized directly; YAML ones are
// rendered from the embedded template.
func (s *Scaffolder) CreateFolder(id, path string, format resource.Format) (*Result, error) {
	path = filepath.ToSlash(filepath.Clean(path))
	if path == "." {
		path = ""
	}
	if strings.HasPrefix(path, "../") || path == ".." || strings.HasPrefix(path, "/") {
		return nil, fmt.Errorf("folder path %q leaves the content root", path)
	}

	if existing, err := manifest.Scan(s.fs, s.root, s.name); err == nil {
		if found, ok := existing.Find(id); ok {
			return nil, fmt.Errorf("manifest %q %w in %s", id, ErrExists, found.File)
		}
	}

	var (
		file string
		data []byte
	)
	switch format {
	case resource.FormatJSON:
		file = s.name + ".json"
		text, err := manifest.Serialize(manifest.Descriptor{ID: id, Path: path}, resource.FormatJSON)
		if err != nil {
			return nil, err
		}
		data = []byte(text)
	case resource.FormatYAML, "":
		file = s.name + ".yaml"
		var buf bytes.Buffer
		if err := manifestTemplate.Execute(&buf, manifest.Descriptor{ID: id, Path: path}); err != nil {
			return nil, fmt.Errorf("executing manifest template: %w", err)
		}
		data = buf.Bytes()
	default:
		return nil, fmt.Errorf("manifests cannot be written as %s", format)
	}

	dir := filepath.Join(s.root, filepath.FromSlash(path))
	for _, candidate := range manifest.FileNames(s.name) {
		if ok, _ := afero.Exists(s.fs, filepath.Join(dir, candidate)); ok {
			return nil, fmt.Errorf("manifest %s %w", filepath.Join(dir, candidate), ErrExists)
		}
	}
	if err := s.fs.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating directory %s: %w", dir, err)
	}

	outPath := filepath.Join(dir, file)
	if err := afero.WriteFile(s.fs, outPath, data, 0644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", outPath, err)
	}

	result := &Result{Dir: dir, Files: []string{file}}
	result.validate(s.fs, outPath)
	return result, nil
}

// AddEntry adds an entry named key to the manifest called manifestID and
// writes its data file: an empty object of the loader's content type whose
// id is key.
func (s *Scaffolder) AddEntry(manifestID, key, loaderID string, format resource.Format) (*Result, error) {
	if key == "" || key == "." || key == ".." || strings.ContainsAny(key, `/\`) {
		return nil, fmt.Errorf("invalid entry key %q", key)
	}
	if s.loaders == nil {
		return nil, fmt.Errorf("no loader registry")
	}
	if format == "" {
		format = resource.FormatYAML
	}

	scan, err := manifest.Scan(s.fs, s.root, s.name)
	if err != nil {
		return nil, err
	}
	found, ok := scan.Find(manifestID)
	if !ok {
		return nil, fmt.Errorf("manifest %q not found under %s", manifestID, s.root)
	}
	d := found.Descriptor
	if _, exists := d.Entry(key); exists {
		return nil, fmt.Errorf("entry %q %w in manifest %q", key, ErrExists, manifestID)
	}

	typ, err := s.loaders.ContentTypeOf(loaderID)
	if err != nil {
		return nil, err
	}
	blank, err := s.loaders.Blank(loaderID)
	if err != nil {
		return nil, err
	}

	provider := resource.NewFileProvider(s.fs, s.root)
	name := loader.LoadContext{RootPath: d.Path, DataName: key}.ResourceName()
	if provider.Exists(name) {
		return nil, fmt.Errorf("data file for %s %w", name, ErrExists)
	}

	text, err := encodeWithID(blank, key, format)
	if err != nil {
		return nil, fmt.Errorf("encoding new %s: %w", typ, err)
	}
	dir := filepath.Dir(found.File)
	dataFile := key + "." + string(format)
	if err := s.fs.MkdirAll(filepath.Join(s.root, filepath.FromSlash(d.Path)), 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	dataPath := filepath.Join(s.root, filepath.FromSlash(d.Path), dataFile)
	if err := afero.WriteFile(s.fs, dataPath, []byte(text), 0644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", dataPath, err)
	}

	d.Data = append(d.Data, manifest.Entry{Key: key, Loader: loaderID})
	if err := manifest.WriteFile(s.fs, found.File, d); err != nil {
		// The data file is only valid alongside its entry.
		_ = s.fs.Remove(dataPath)
		return nil, err
	}

	result := &Result{Dir: dir, Files: []string{filepath.Base(found.File), dataFile}}
	result.validate(s.fs, found.File)

	// Read the new file back through the loader it was written for.
	l, err := s.loaders.Resolve(loaderID)
	if err != nil {
		return nil, err
	}
	obj, err := l.LoadObject(loader.LoadContext{RootPath: d.Path, DataName: key})
	switch {
	case err != nil:
		result.Warnings = append(result.Warnings, fmt.Sprintf("Could not load new entry: %v", err))
	case obj.ContentID() != key:
		result.Warnings = append(result.Warnings, fmt.Sprintf("New %s has id %q, want %q", typ, obj.ContentID(), key))
	}
	return result, nil
}

// encodeWithID sets obj's "id" field to id and serializes it in format.
func encodeWithID(obj any, id string, format resource.Format) (string, error) {
	codec, err := resource.CodecFor(format)
	if err != nil {
		return "", err
	}
	if err := yaml.Unmarshal([]byte("id: "+strconv.Quote(id)), obj); err != nil {
		return "", fmt.Errorf("setting id: %w", err)
	}
	return codec.Marshal(obj)
}

// validate appends schema issues for the manifest at file as warnings.
func (r *Result) validate(fsys afero.Fs, file string) {
	valResult, err := manifest.ValidateFile(fsys, file)
	if err != nil {
		r.Warnings = append(r.Warnings, fmt.Sprintf("Could not validate manifest: %v", err))
		return
	}
	for _, issue := range valResult.Issues {
		msg := issue.Message
		if issue.Path != "" {
			msg = issue.Path + ": " + msg
		}
		r.Warnings = append(r.Warnings, msg)
	}
}
