// Package kernel contains shared value objects used across the domain model:
// UUID identifiers and Money amounts. Both are immutable and validated at
// construction time, so aggregates can rely on their invariants without
// re-checking them on every use.
package kernel
