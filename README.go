/*

Package trx is a small collection of generic sequence utilities.

Every utility here is a stateless function over caller supplied values:
a best-element search driven by a qualifying predicate and a better-than
comparator, a variadic maximum over same-typed arguments, an in-place sort
that dispatches on the container's reordering capability, and a variadic
boolean conjunction.

The root package only declares the shared abstractions:
the Iterator interface that represents a forward traversable sequence,
and the Error type for const declared sentinel errors.
The behavior lives in the subpackages (booleans, comparisons, search,
iterators, containers).

None of the utilities hold state between calls, spawn goroutines or touch
the outside world. The only mutation is the sort's in-place reordering of
the container the caller handed in, so sharing one container between
concurrently sorting goroutines needs the same external synchronization as
any other concurrent mutation would.

*/
package trx
