/*
Package ports defines the driven ports (interfaces) of the vending machine.

These interfaces decouple the purchase logic from the terminal and from the
audit storage backend.

# Key Interfaces

  - Prompter: Line-oriented conversation with the operator (text, markdown, tests).
  - Journal: Append-only audit trail of sales, refunds and inventory changes.
*/
package ports
