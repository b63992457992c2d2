// Package termview renders a bound domain tree in the terminal.
//
// Model is a bubbletea model that doubles as the binding.View the binding
// layer drives: the binding creates and destroys rows, termview lays them
// out and handles keyboard navigation. The bubbletea event loop goroutine is
// the designated execution context: the observe.Scheduler posts its drains
// into it as messages, so every model notification is applied between key
// events, never concurrently with them.
package termview
