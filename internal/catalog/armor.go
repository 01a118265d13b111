package catalog

import (
	"github.com/agentx-labs/contentx/internal/content"
	"github.com/agentx-labs/contentx/internal/loader"
)

// ArmorType is the content type token for armor.
const ArmorType content.Type = "armor"

// ArmorData describes a piece of armor.
type ArmorData struct {
	ID         string  `yaml:"id" json:"id" toml:"id"`
	Name       string  `yaml:"name,omitempty" json:"name,omitempty" toml:"name,omitempty"`
	Protection int     `yaml:"protection" json:"protection" toml:"protection"`
	Weight     float64 `yaml:"weight" json:"weight" toml:"weight"`
}

func (a *ArmorData) ContentID() string         { return a.ID }
func (a *ArmorData) ContentType() content.Type { return ArmorType }

// ArmorKind binds ArmorType to *ArmorData.
var ArmorKind = content.NewKind(ArmorType, func() *ArmorData { return &ArmorData{} })

// ArmorLoader loads armor.
type ArmorLoader struct {
	loader.Decoder[*ArmorData]
}
