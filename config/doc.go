// Package config loads a complete logging setup from a TOML file and
// applies it to a dispatcher.
//
// A minimal file:
//
//	level = "debug"
//
//	[writer]
//	async = true
//
//	[console]
//	enabled = true
//	detail = true
//
//	[file]
//	enabled = true
//	path = "/var/log/app.log"
//
// Load parses the file, Apply registers the configured channels and
// writer on a logger.Logger, and Watch keeps the severity floor in
// sync with later edits to the file.
package config
