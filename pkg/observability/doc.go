/*
Package observability provides lifecycle hooks for monitoring the vending machine.

It includes structured logging of every purchase and maintenance event,
prometheus counters for sales, underfunded attempts and refills, and a bridge
that writes completed transactions to a ports.Journal audit trail.
Hook sets are combined with domain.MergeHooks.
*/
package observability
