// Package testutil contains spy components and fakes used across tests to
// reduce boilerplate when composing robots (counting resettables, failing
// safe-stateables, scripted commands, a manual clock and a recording logger).
// They are not intended for production usage.
package testutil
