// Package manifest reads, validates and writes content manifests. A manifest
// names a content folder and lists its entries, each pairing a data file key
// with the loader that decodes it. Manifests are YAML or JSON and are checked
// against an embedded JSON Schema before use.
package manifest
