// Package domain contains the core model for irpal: palettes, their
// category mapping, identifier derivation, configuration and error kinds.
//
// The domain does not depend on YAML parsing, process execution or the
// filesystem. Infra adapters map into/from these types.
package domain
