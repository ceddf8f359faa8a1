// Package lock implements the double-checked locking idiom keyed on object
// identity.
//
// The predicate is evaluated once without the lock and, when it holds, again
// under the lock before the action runs. Two calls with the same locker
// pointer are mutually exclusive; calls with different lockers are not.
// The lock is not reentrant: the action must not call DoubleChecked on the
// same locker.
package lock
