// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

// CancelFunc stops a live subscription. Implementations must be idempotent:
// calling it more than once must not fail, and after the first call no
// further snapshot callbacks are delivered.
//
// Cancellation is a cooperative contract. Whoever opens a subscription is
// responsible for cancelling it before its context is torn down.
type CancelFunc func()

// Every Watch operation below follows the same snapshot contract: the
// callback is invoked promptly after subscribing with the complete current
// matching set (possibly empty), and again with the complete set every time
// it changes. Callbacks always carry a full replacement snapshot, never a
// diff, and run on the subscription's own goroutine.
