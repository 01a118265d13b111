package catalog

import (
	"github.com/agentx-labs/contentx/internal/content"
	"github.com/agentx-labs/contentx/internal/loader"
)

// WeaponType is the content type token for weapons.
const WeaponType content.Type = "weapon"

// WeaponData describes a weapon.
type WeaponData struct {
	ID           string  `yaml:"id" json:"id" toml:"id"`
	Name         string  `yaml:"name,omitempty" json:"name,omitempty" toml:"name,omitempty"`
	Damage       int     `yaml:"damage" json:"damage" toml:"damage"`
	ClipCapacity int     `yaml:"clip_capacity" json:"clip_capacity" toml:"clip_capacity"`
	FireRate     float64 `yaml:"fire_rate" json:"fire_rate" toml:"fire_rate"`
}

func (w *WeaponData) ContentID() string         { return w.ID }
func (w *WeaponData) ContentType() content.Type { return WeaponType }

// WeaponKind binds WeaponType to *WeaponData.
var WeaponKind = content.NewKind(WeaponType, func() *WeaponData { return &WeaponData{} })

// RifleLoader loads rifles.
type RifleLoader struct {
	loader.Decoder[*WeaponData]
}

// SniperRifleLoader is a RifleLoader specialization.
type SniperRifleLoader struct {
	RifleLoader
}

// PistolLoader loads sidearms. Pistols without a clip capacity get a
// default one.
type PistolLoader struct {
	loader.Decoder[*WeaponData]
}

// DefaultPistolClip is the clip capacity given to pistols that omit one.
const DefaultPistolClip = 12

// Load implements loader.Typed.
func (l PistolLoader) Load(ctx loader.LoadContext) (*WeaponData, error) {
	w, err := l.Decoder.Load(ctx)
	if err != nil {
		return nil, err
	}
	if w.ClipCapacity == 0 {
		w.ClipCapacity = DefaultPistolClip
	}
	return w, nil
}

// LoadObject implements loader.Loader.
func (l PistolLoader) LoadObject(ctx loader.LoadContext) (content.Object, error) {
	w, err := l.Load(ctx)
	if err != nil {
		return nil, err
	}
	return w, nil
}
