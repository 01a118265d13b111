// Package loader defines the content loader contract and the registry that
// maps loader identifiers from manifests to loader implementations.
//
// The contract has two levels. The pipeline only ever calls the type-erased
// Loader.LoadObject. Each content kind implements the narrower Typed[T].Load,
// and Adapter (or an embedded Decoder) bridges the two. The content type a
// loader produces is declared through Producer, found by walking struct
// embedding and Unwrap decorator chains.
//
// Loaders are registered explicitly at startup under a stable name and a
// semver version; nothing is discovered by scanning compiled code.
package loader
