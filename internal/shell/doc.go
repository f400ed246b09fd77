// Package shell holds the application context shared by every window: the
// settings store, the translator, the window registry, the event bus and the
// worker pool. Windows never reference each other; they emit named events on
// the bus and the handlers wired in the deferred binding step route them.
package shell
