package lock

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/ib-77/fluff/pkg/fluff"
)

// DoubleChecked runs lockedAction(locker) when isLocked(locker) holds both
// before and after taking the lock for locker. isLocked is called without
// synchronization, so it must be safe to call concurrently and twice.
func DoubleChecked[T any](locker *T, isLocked func(*T) bool, lockedAction func(*T)) {
	DoubleCheckedIn(defaultRegistry, locker, isLocked, lockedAction)
}

// DoubleCheckedIn is DoubleChecked with an explicit registry
func DoubleCheckedIn[T any](r *Registry, locker *T, isLocked func(*T) bool, lockedAction func(*T)) {
	fluff.MustNotBeNil("registry", r)
	fluff.MustNotBeNil("locker", locker)
	fluff.MustNotBeNil("isLocked", isLocked)
	fluff.MustNotBeNil("lockedAction", lockedAction)

	if !isLocked(locker) {
		return
	}

	l := lockerFor(r, locker)
	l.Lock()
	defer l.Unlock()

	if !isLocked(locker) {
		r.log.WithFields(logrus.Fields{
			"locker": fmt.Sprintf("%p", locker),
		}).Debug("condition cleared while waiting for lock, skipping action")
		return
	}

	lockedAction(locker)
}
