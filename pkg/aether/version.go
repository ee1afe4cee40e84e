// Package aether carries module-level metadata for the aether property bag.
package aether

// Version is the current release of the aether module and CLI.
const Version = "0.1.0"
