// Package config loads ladle's settings.
//
// Settings live in ~/.config/ladle/config.toml with two keys:
//
//	server_url = "http://127.0.0.1:8080"
//	log_dir    = "~/.local/state/ladle"
//
// A missing file is not an error; defaults apply. The server URL can be
// overridden with the LADLE_SERVER_URL environment variable, and a .env
// file in the working directory is loaded first so local setups can keep
// the override next to the project. Paths support ~ expansion and are
// returned absolute.
package config
