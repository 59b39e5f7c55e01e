// Package query compiles a QuerySpec into a reusable document predicate.
//
// A compiled query holds one whitespace-tolerant matcher for the primary
// literal and one per member of each OR-group. Compilation happens once
// per query, independent of how many documents are evaluated, which
// amortizes regex construction across a whole batch. The compiled form is
// immutable and safe to share across concurrent workers without locking.
package query
