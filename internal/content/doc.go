// Package content defines the loaded content model and the Collection that
// indexes it. Objects are partitioned by a stable Type token and then keyed by
// their own id; typed accessors (Get, FirstOf, AllOf) perform the single
// downcast from the stored Object to the caller's concrete type.
//
// A Collection has no internal locking. Populate it once, then share it with
// any number of readers.
package content
