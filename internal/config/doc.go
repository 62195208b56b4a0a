// Package config loads roster's TOML configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/roster/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Config file: ~/.config/roster/config.toml
//   - API URL: https://randomuser.me/api/
//   - Batch: 12 records, nationality "us", no seed
//   - Request timeout: 10s
//   - Log directory: ~/.local/state/roster (log file roster.log)
//   - Export directory: current working directory
//
// # TOML Format
//
//	api_url = "https://randomuser.me/api/"
//	results = 12
//	nationality = "us"
//	seed = "staff"
//	timeout = "10s"
//	log_dir = "~/.local/state/roster"
//	log_level = "info"
//	export_dir = "~/Documents/cards"
//
// Every field is optional. Tilde expansion is performed for log_dir and
// export_dir. A malformed file or timeout is an error; a missing file is not.
package config
