package service

import "time"

type systemClock struct{}

// SystemClock returns the wall clock.
func SystemClock() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

func (systemClock) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}
