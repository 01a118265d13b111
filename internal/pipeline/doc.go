// Package pipeline turns parsed manifests into a populated content
// collection. Every entry's loader is resolved before any data is read, so a
// manifest naming an unknown loader leaves nothing registered.
package pipeline
