/*
Package session holds the state of one client interaction with the machine.

A Session tracks the chosen payment currency, the accumulated balance (always
converted to dollars, the pricing currency) and the selected item. Every
method is a pure validating step: invalid input yields a recoverable error and
leaves the session unchanged, so interactive callers can simply ask again.
*/
package session
