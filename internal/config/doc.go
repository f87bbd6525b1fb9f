// Package config loads and validates fxpipe configuration.
//
// Settings live in a TOML file (fxpipe.toml by default) with one section per
// tool: [pairing] for the pair connector defaults, [encode] for the review
// movie encoder and [log] for logging. A missing file yields defaults. Values
// that depend on the workstation, such as the artist name or tool locations,
// may come from the environment or a .env file instead.
package config
