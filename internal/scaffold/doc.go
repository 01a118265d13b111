// Package scaffold creates content folders and data files. It powers the
// "contentx create" command: new folders get a manifest rendered from an
// embedded template, and new entries get a data file holding an empty object
// of the kind their loader produces.
package scaffold
