// Package ui renders the apod98 window with Bubble Tea.
//
// The model is a pure observer of state.Store: it subscribes once, and a
// command blocks on the subscription channel and hands each snapshot to
// Update as a stateMsg. Key presses never change query state directly; they
// call Submit or Reset on a Querier (the query controller) and wait for the
// resulting snapshot like any other observer.
//
// # Layout
//
//	┌───────────────────────────────────────────────┐
//	│ ▣ NASA APOD Explorer 98               _ □ ×   │  title bar
//	│ File   View   Tools   Help                    │  menu bar
//	│ Search by date: [YYYY-MM-DD] [Search]         │
//	│ ┌───────────────────────────────────────────┐ │
//	│ │ spinner, record or empty text (viewport)  │ │  sunken panel
//	│ └───────────────────────────────────────────┘ │
//	│               [☼ Today's Image]               │
//	│ [NASA APOD v1.0]  Success      enter Search … │  status bar
//	└───────────────────────────────────────────────┘
//
// A failure opens an alert dialog above the panel. Validation failures
// keep the previous record in the panel beneath it.
//
// # Triggers
//
// Enter submits the typed text as is; ctrl+t clears the field and asks for
// today. Both are ignored while a query is loading, and every accepted
// trigger shakes the window horizontally for a few frames.
//
// # Files
//
//   - app.go: Model, Update loop, store subscription, shake effect
//   - window.go: window chrome, content panel, alert dialog
//   - activity.go: log tail overlay
//   - help.go: keyboard shortcut overlay
//   - keys.go, theme.go, labels.go: bindings, palettes, wording
package ui
