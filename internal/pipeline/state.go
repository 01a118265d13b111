package pipeline

import "fmt"

// State is a step of a pipeline run.
type State int

const (
	// Start is the state before manifests are read.
	Start State = iota
	// ManifestsDiscovered means the manifests are parsed and entries are
	// being resolved to loaders.
	ManifestsDiscovered
	// EntriesResolved means every entry has a loader and objects are
	// being loaded and registered.
	EntriesResolved
	// ObjectsRegistered means every loaded object was added or rejected.
	ObjectsRegistered
	// Done means the result is ready.
	Done
	// Aborted means the run stopped on an error and produced no result.
	Aborted
)

var stateNames = [...]string{
	Start:               "start",
	ManifestsDiscovered: "manifests-discovered",
	EntriesResolved:     "entries-resolved",
	ObjectsRegistered:   "objects-registered",
	Done:                "done",
	Aborted:             "aborted",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("state(%d)", int(s))
	}
	return stateNames[s]
}
