// Package resource supplies raw serialized text to loaders and decodes it.
// A Provider locates a resource by its extension-less name ("Weapons/rifle")
// under a content root; codecs turn the text into Go values for the YAML,
// JSON and TOML formats.
package resource
