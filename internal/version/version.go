// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - Synchronous moons follow the Keplerian mean motion, per-orbit motion constants
// 0.2.0 - YAML configs, validate/orbit/frames commands, phase readout
// 0.1.0 - Initial release: Kepler solver, body tree, TUI system view, headless summary
