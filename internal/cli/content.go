package cli

import (
	"github.com/agentx-labs/contentx/internal/catalog"
	"github.com/agentx-labs/contentx/internal/config"
	"github.com/agentx-labs/contentx/internal/loader"
	"github.com/agentx-labs/contentx/internal/pipeline"
	"github.com/agentx-labs/contentx/internal/resource"
	"github.com/spf13/afero"
)

// osFs is the file system for on-disk content roots. Tests swap it out.
var osFs = afero.NewOsFs()

// contentSource returns the provider for the content root to work on.
func contentSource() *resource.FileProvider {
	if useBuiltin {
		return catalog.Builtin()
	}
	return resource.NewFileProvider(osFs, config.Get(config.KeyContentRoot))
}

// newLoaders returns the built-in loader registry reading data from src.
func newLoaders(src *resource.FileProvider) *loader.Registry {
	return catalog.NewRegistry(src)
}

// loadContent runs the pipeline against the configured content root.
func loadContent() (*pipeline.Result, error) {
	src := contentSource()
	p := pipeline.New(newLoaders(src), logger)
	return p.Load(src.Fs(), src.Root(), config.Get(config.KeyManifestName))
}
