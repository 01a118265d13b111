package manifest

// DefaultName is the base name of manifest files when none is configured.
const DefaultName = "manifest"

// Descriptor is one content folder's manifest.
type Descriptor struct {
	ID   string  `yaml:"id" json:"id" toml:"id"`
	Path string  `yaml:"path" json:"path" toml:"path"`
	Data []Entry `yaml:"data" json:"data" toml:"data"`
}

// Entry pairs a data file key with a loader identifier. The key only locates
// the data file; the loaded object's own id is what gets indexed.
type Entry struct {
	Key    string `yaml:"key" json:"key" toml:"key"`
	Loader string `yaml:"loader" json:"loader" toml:"loader"`
}

// Entry returns the entry for key, if present.
func (d *Descriptor) Entry(key string) (Entry, bool) {
	for _, e := range d.Data {
		if e.Key == key {
			return e, true
		}
	}
	return Entry{}, false
}
