// Package catalog provides the built-in content kinds, their loaders, and a
// small embedded content root to run them against.
package catalog
