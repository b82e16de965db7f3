// Package app provides the orchestration layer for the apod98 application.
//
// # Overview
//
// This package wires together configuration, logging, the APOD client, the
// query state and the UI. It is the composition root where all dependencies
// are initialized and connected.
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()     Read ~/.config/apod98/config.toml, .env, env
//	       ├─────> logging.New()     slog text handler on the log file
//	       ├─────> apod.NewClient()  HTTP client for the APOD endpoint
//	       ├─────> state.Store{}     Shared query state
//	       ├─────> query.New()       Controller driving the store
//	       └─────> ui.Run()          Start TUI (blocks)
//
//	Per query:
//	┌─────────────────────────────────────────┐
//	│ ui key press ──> controller.Submit()    │
//	│   ├─> dates.Validate()  (sync)          │
//	│   ├─> store.Begin()     Loading         │
//	│   └─> goroutine: client.Fetch()         │
//	│         └─> store.Succeed()/Fail()      │
//	│               └─> ui stateMsg           │
//	└─────────────────────────────────────────┘
//
// # Error Handling
//
// Fatal errors (returned from Run and Fetch):
//   - Invalid config file or unparsable timeout
//   - Invalid endpoint URL
//   - Terminal failures from Bubble Tea
//
// Everything that can go wrong with a query becomes Failure state, never an
// error from Run. Fetch, which has no screen to show it on, turns a Failure
// into a *QueryError. A log file that cannot be opened only disables logging.
//
// # Shutdown
//
// When the UI exits, Run cancels the context handed to the controller and
// waits for in-flight fetches to return before closing the log.
package app
