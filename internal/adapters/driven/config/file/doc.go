// Package file provides the TOML-backed implementation of the
// ConfigStore driven port. Settings live in a single config.toml inside
// the sos-licitacoes config directory.
package file
