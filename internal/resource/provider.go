package resource

import (
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// Provider supplies raw text for a composed resource name.
type Provider interface {
	// ReadText returns the text of the named resource. A missing resource is
	// reported as a *LoadError wrapping ErrNotExist.
	ReadText(name string) (string, error)
	// Exists reports whether the named resource can be read.
	Exists(name string) bool
}

// Formatter is implemented by providers that know the serialization format of
// a resource, usually from its file extension.
type Formatter interface {
	FormatOf(name string) Format
}

// FormatOf asks p for the format of name, defaulting to YAML.
func FormatOf(p Provider, name string) Format {
	if f, ok := p.(Formatter); ok {
		return f.FormatOf(name)
	}
	return FormatYAML
}

// FileProvider resolves resources as files under a root directory of an
// afero file system. A resource name carries no extension; the first file
// matching one of Extensions wins, then the bare name itself.
type FileProvider struct {
	fs   afero.Fs
	root string
}

// NewFileProvider returns a provider reading from root within fsys.
func NewFileProvider(fsys afero.Fs, root string) *FileProvider {
	return &FileProvider{fs: fsys, root: root}
}

// NewOSProvider returns a provider over the operating system file system.
func NewOSProvider(root string) *FileProvider {
	return NewFileProvider(afero.NewOsFs(), root)
}

// NewEmbedded returns a read-only provider over an io/fs tree such as an
// embed.FS.
func NewEmbedded(fsys fs.FS, root string) *FileProvider {
	return NewFileProvider(afero.FromIOFS{FS: fsys}, root)
}

// Fs returns the underlying file system.
func (p *FileProvider) Fs() afero.Fs { return p.fs }

// Root returns the content root directory.
func (p *FileProvider) Root() string { return p.root }

// ReadText implements Provider.
func (p *FileProvider) ReadText(name string) (string, error) {
	file, ok := p.locate(name)
	if !ok {
		return "", &LoadError{Resource: name, Err: ErrNotExist}
	}
	data, err := afero.ReadFile(p.fs, file)
	if err != nil {
		return "", &LoadError{Resource: name, Err: err}
	}
	return string(data), nil
}

// Exists implements Provider.
func (p *FileProvider) Exists(name string) bool {
	_, ok := p.locate(name)
	return ok
}

// FormatOf implements Formatter.
func (p *FileProvider) FormatOf(name string) Format {
	file, ok := p.locate(name)
	if !ok {
		return FormatYAML
	}
	return FormatOfExt(filepath.Ext(file))
}

func (p *FileProvider) locate(name string) (string, bool) {
	name = path.Clean(strings.TrimPrefix(filepath.ToSlash(name), "/"))
	if name == "." || name == ".." || strings.HasPrefix(name, "../") {
		return "", false
	}
	base := filepath.Join(p.root, filepath.FromSlash(name))

	for _, ext := range Extensions {
		if p.isFile(base + ext) {
			return base + ext, true
		}
	}
	if p.isFile(base) {
		return base, true
	}
	return "", false
}

func (p *FileProvider) isFile(name string) bool {
	info, err := p.fs.Stat(name)
	return err == nil && !info.IsDir()
}
