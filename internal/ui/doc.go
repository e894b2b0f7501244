// Package ui provides the terminal user interface for ladle.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program: a single Model value holds all state,
// Update folds messages into it, and View renders the whole screen from
// scratch each frame. Presentation code never mutates anything; user
// intents arrive as key messages and network completions arrive as typed
// messages produced by commands.
//
// # Views
//
// Three full-screen views form a small state machine:
//
//   - List (initial): searchable recipe list. 'a' opens an empty form,
//     'e' opens the form seeded from the selection, enter opens detail.
//   - Form: add/edit draft with title, ingredients (one per line), and
//     instructions. ctrl+s submits, esc cancels; both return to the list
//     on success/cancel while a failed save stays put with the draft
//     intact.
//   - Detail: full recipe. 'e' edits, 'd' deletes, esc returns.
//
// Deleting always passes through a confirmation gate: only an explicit
// 'y' issues the request, any other key cancels.
//
// # Data Flow
//
//	key msg → handle*Key → command (network call in a goroutine)
//	       → completion msg → store mutation + banner → re-render
//
// The store is only mutated from Update and only after a successful
// remote call; failed writes leave both the store and the draft alone.
//
// # In-Flight Requests
//
// The model keeps a loading flag and a request generation counter. While
// loading, all input except quit is ignored, which rules out overlapping
// writes. The generation is bumped on every view transition and stamped
// into each command; completions carrying a stale generation are dropped
// instead of mutating state, so a response that outlives the view that
// asked for it cannot clobber anything.
//
// # File Layout
//
//   - app.go: Model, Update routing, view transitions, Run
//   - commands.go: tea.Cmd wrappers around the recipes client + messages
//   - list.go: list view, search input, selection movement
//   - form.go: draft inputs, submit protocol, ingredient splitting
//   - detail.go: detail view
//   - header.go: status bar, banner, command bar
//   - theme.go: named color themes, cycled with 'T' and persisted
//   - help.go: help overlay
package ui
