// Package version contains information on the current version of the
// program. It is split out for easy use from multiple binaries.
package version

// Current is the string representing the current version of the
// recognizer and supporting libraries.
const Current = "0.1.0"

// ServerCurrent is the string representing the current version of the
// HTTP server binary, tracked separately from the recognizer itself.
const ServerCurrent = "0.1.0"
