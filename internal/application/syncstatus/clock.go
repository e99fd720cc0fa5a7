package syncstatus

import "time"

// Timer temporizador cancelable.
type Timer interface {
	Stop() bool
}

// Clock fuente de temporizadores; se sustituye en tests.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realClock struct{}

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// RealClock reloj del sistema.
func RealClock() Clock {
	return realClock{}
}
