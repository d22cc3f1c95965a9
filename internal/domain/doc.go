// Package domain contains the core domain model for Toolbelt.
//
// The domain is UI- and persistence-agnostic: it does not depend on the TUI,
// cobra, or the filesystem. Infra/adapters map into/from these types.
package domain
