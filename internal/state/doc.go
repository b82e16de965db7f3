// Package state holds the single query state of apod98 and publishes it to observers.
//
// # Overview
//
// The Store is the coordination point between the query controller, which
// drives transitions, and presenters (the TUI, the one-shot CLI), which only
// observe them. There is exactly one Store per process.
//
// # Phases
//
//	Idle ──Begin──→ Loading ──Succeed──→ Success
//	                   │                    │
//	                   └──────Fail──────→ Failure
//
//	Success/Failure ──Begin──→ Loading
//	any ──Reject──→ Failure (validation, no I/O)
//
// There is no terminal phase. Record is present only in Success and
// ErrorMessage only in Failure; they are never set together.
//
// # Generations
//
// Begin and Reject each advance Snapshot.Generation. Succeed and Fail take
// the generation returned by Begin and are ignored (returning false) unless
// it is still the latest and the store is still Loading. This gives
// last-call-wins without cancelling the transport: a stale result simply
// never lands.
//
// # Validation Failures
//
// Reject does not clear what is on screen. The record that was displayed
// moves to Snapshot.Previous, so presenters can keep drawing it beneath the
// alert while Record stays nil. Use Snapshot.Displayed to pick whichever is
// set.
//
// # Subscriptions
//
// Subscribe hands out a single-slot channel per observer. Each publish
// replaces any unread value, so observers always read the newest snapshot
// and never block the writer:
//
//	updates, cancel := store.Subscribe()
//	defer cancel()
//	for snap := range updates {
//		render(snap)
//	}
//
// Assignment and publication happen under the same mutex, so an observer can
// never see Record set while Phase is still Loading.
//
// # Copying
//
// Snapshot values carry record pointers; every read and every publish hands
// out fresh copies, so presenters may hold on to them freely.
//
// The zero Store is ready to use and reports PhaseIdle.
package state
