package catalog

import (
	"embed"

	"github.com/agentx-labs/contentx/internal/content"
	"github.com/agentx-labs/contentx/internal/loader"
	"github.com/agentx-labs/contentx/internal/resource"
)

//go:embed content
var builtin embed.FS

// BuiltinRoot is the content root inside the embedded file system.
const BuiltinRoot = "content"

// Register adds the built-in loaders to r.
func Register(r *loader.Registry) {
	r.MustRegister("RifleLoader", "1.2.0", func(res resource.Provider) any {
		return &RifleLoader{loader.NewDecoder(WeaponKind, res)}
	})
	r.MustRegister("SniperRifleLoader", "1.0.0", func(res resource.Provider) any {
		return &SniperRifleLoader{RifleLoader{loader.NewDecoder(WeaponKind, res)}}
	})
	r.MustRegister("PistolLoader", "1.1.0", func(res resource.Provider) any {
		return &PistolLoader{loader.NewDecoder(WeaponKind, res)}
	})
	r.MustRegister("ArmorLoader", "1.0.0", func(res resource.Provider) any {
		return &ArmorLoader{loader.NewDecoder(ArmorKind, res)}
	})
}

// Kinds returns the content types the built-in loaders produce.
func Kinds() []content.Type {
	return []content.Type{WeaponType, ArmorType}
}

// Builtin returns a read-only provider over the embedded sample content.
// Its file system holds the manifests under BuiltinRoot.
func Builtin() *resource.FileProvider {
	return resource.NewEmbedded(builtin, BuiltinRoot)
}

// NewRegistry returns a registry holding the built-in loaders, reading data
// from res.
func NewRegistry(res resource.Provider) *loader.Registry {
	r := loader.NewRegistry(res)
	Register(r)
	return r
}
