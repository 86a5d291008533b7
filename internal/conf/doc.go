// Package conf loads and resolves the stylesheet generator configuration.
//
// # Usage
//
// Resolve turns an in-memory RawConfig into a ResolvedConfig:
//
//	darkMode := "selector"
//	resolved, err := conf.Resolve(conf.RawConfig{
//	    Content:  []string{"./src/**/*.{rs,html,css}"},
//	    DarkMode: &darkMode,
//	})
//
// To load the document from disk, use ConfigSource:
//
//	cs := &conf.ConfigSource{
//	    Path:      "styleconf.toml",
//	    DropInDir: "styleconf.toml.d",
//	}
//	resolved, err := cs.Load()
//
// # Load Order
//
// Documents are applied in layers:
//
//  1. Main config file (TOML, YAML or JSON, chosen by extension)
//  2. Drop-in files in DropInDir, in lexicographic order
//
// A later layer replaces content and darkMode when it sets them, and its
// theme section is deep-merged into the theme collected so far.
//
// # Resolution
//
// Resolve compiles the content patterns (package glob), resolves the dark
// mode strategy (package mode) and applies the theme document to the built-in
// tokens (package theme). The three steps are independent and run
// concurrently. Any failure aborts resolution; there is no partial result.
//
// # Internal Architecture
//
//   - configDTO: internal struct with pointer fields for decoding.
//     Pointers allow distinguishing "not set" (nil) from "set to zero value".
//
//   - RawConfig: the merged document. Has Update() method to apply DTO values.
//
//   - ConfigSource: orchestrates loading from multiple sources and manages
//     their merging.
//
//   - ResolvedConfig: immutable result with accessor methods only.
package conf
