// Package app wires roster together: it is the composition root behind every
// command.
//
// setup loads the TOML config, applies flag overrides (results, seed, debug),
// opens the zap file logger, and builds the randomuser client. The commands
// then differ only in which directory.Sink drives the controller:
//
//	Run     Bubble Tea UI (ui.Run), live search and modal detail
//	List    textSink, prints the gallery once, optionally one detail
//	Export  textSink for state, then export.Write on the filtered view
//	Logs    logtail over the configured log file, no network
//
// Load errors are rendered through the sink and also returned, so the CLI
// can exit non-zero after printing "Failed to load users.".
package app
