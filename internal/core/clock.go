package core

import "time"

// Clock supplies the engine's notion of now. The engine never calls
// time.Now directly so expiry behavior stays controllable in tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns the wall-clock implementation used in production.
func SystemClock() Clock { return systemClock{} }
