// Package theme holds design token trees and the merge rules used to layer a
// configuration's tokens onto the built-in defaults.
//
// # Merge law
//
// Merge recurses only where both sides hold a subtree. Everywhere else the
// extension wins, so an extension can add tokens next to unrelated defaults
// and can still replace a whole subtree by supplying a scalar at its key:
//
//	defaults  {a: {x: 1, y: 2}}
//	extension {a: {y: 9, z: 3}}
//	result    {a: {x: 1, y: 9, z: 3}}
//
//	defaults  {a: {x: 1}}
//	extension {a: "linear-gradient(...)"}
//	result    {a: "linear-gradient(...)"}
//
// # Defaults
//
// The built-in tokens live in defaults.toml, embedded at build time and parsed
// once during package initialization. Defaults returns a fresh copy on every
// call, so the shared tree is never mutated.
package theme
