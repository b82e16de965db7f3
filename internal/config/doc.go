// Package config loads apod98's TOML configuration.
//
// # Resolution Order
//
//  1. A .env file in the working directory is loaded (existing environment
//     variables win over it)
//  2. The config file: the explicit path, else ~/.config/apod98/config.toml
//  3. A missing file means defaults; empty fields also mean defaults
//  4. NASA_API_KEY, APOD_ENDPOINT and APOD_LANG override the file
//
// # Default Values
//
//   - API key: DEMO_KEY (rate limited; get a personal key at api.nasa.gov)
//   - Endpoint: https://api.nasa.gov/planetary/apod
//   - Timeout: 10s
//   - Language: en
//   - Log file: ~/.local/state/apod98/apod98.log
//   - Log level: info
//
// # TOML Format
//
//	api_key = "your-key"
//	endpoint = "https://api.nasa.gov/planetary/apod"
//	timeout = "10s"
//	language = "pt"
//	log_file = "~/.local/state/apod98/apod98.log"
//	log_level = "debug"
//
// Invalid TOML or a timeout that is not a positive Go duration is reported
// as a "parse config" error; apod98 refuses to start rather than guessing.
package config
