package syncstatus

import (
	"sync"
	"time"
)

// DefaultGrace tiempo que el indicador sigue visible tras terminar la sincronización.
const DefaultGrace = time.Second

// Indicator estado {oculto, visible} derivado del Flag:
//   - flag a true: visible de inmediato, cancelando cualquier ocultamiento pendiente.
//   - flag a false: sigue visible durante grace y luego se oculta.
type Indicator struct {
	clock Clock
	grace time.Duration
	stop  func()

	mu      sync.Mutex
	visible bool
	pending Timer
	gen     uint64 // invalida temporizadores que disparen tarde
	closed  bool
}

// NewIndicator observa flag. clock nil = reloj del sistema.
func NewIndicator(flag *Flag, grace time.Duration, clock Clock) *Indicator {
	if clock == nil {
		clock = RealClock()
	}
	i := &Indicator{clock: clock, grace: grace}
	i.stop = flag.Watch(i.onChange)
	return i
}

// Visible informa si el indicador debe mostrarse.
func (i *Indicator) Visible() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.visible
}

// Close deja de observar el flag y cancela el ocultamiento pendiente.
func (i *Indicator) Close() {
	i.stop() // fuera de i.mu: el Flag llama a onChange con su propio lock tomado

	i.mu.Lock()
	defer i.mu.Unlock()
	i.closed = true
	i.cancelPending()
}

func (i *Indicator) onChange(inProgress bool) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.closed {
		return
	}
	if inProgress {
		i.cancelPending()
		i.visible = true
		return
	}
	if !i.visible || i.pending != nil {
		return
	}
	if i.grace <= 0 {
		i.visible = false
		return
	}
	i.gen++
	gen := i.gen
	i.pending = i.clock.AfterFunc(i.grace, func() { i.hide(gen) })
}

func (i *Indicator) hide(gen uint64) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.closed || gen != i.gen {
		return
	}
	i.visible = false
	i.pending = nil
}

func (i *Indicator) cancelPending() {
	if i.pending != nil {
		i.pending.Stop()
		i.pending = nil
	}
	i.gen++
}
