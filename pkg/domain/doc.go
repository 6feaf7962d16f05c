/*
Package domain contains the core domain models of the vending machine.

It defines the catalog entities, the payment currencies, the purchase outcome
union and the sentinel errors shared by every other package. This package is
kept pure and free of I/O or persistence concerns.

# Key Entities

  - ItemKey: Normalized item identifier (lowercase, collapsed whitespace).
  - Item: Quantity and unit price of one catalog entry.
  - Currency: Payment currency (dollars is the pricing currency).
  - Outcome: Result of a purchase attempt (Sale, Unavailable, Underfunded, Directive).
  - Entry: A line of the transaction journal.
*/
package domain
