// Package syncstatus refleja el flag compartido "sincronización en curso" como un indicador
// visible/oculto con histéresis.
package syncstatus

import "sync"

// Flag flag de sincronización compartido por el proceso.
// Admite sincronizaciones solapadas: sigue activo mientras quede alguna sin terminar.
// Los observadores se invocan con el lock tomado, en el orden de las transiciones,
// y no deben llamar de vuelta al Flag.
type Flag struct {
	mu     sync.Mutex
	active int
	subs   map[int]func(inProgress bool)
	next   int
}

// NewFlag crea un flag inactivo.
func NewFlag() *Flag {
	return &Flag{subs: make(map[int]func(bool))}
}

// Begin marca el inicio de una sincronización.
func (f *Flag) Begin() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.active++
	if f.active == 1 {
		f.notify(true)
	}
}

// End marca el fin de una sincronización. Un End sin Begin se ignora.
func (f *Flag) End() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.active == 0 {
		return
	}
	f.active--
	if f.active == 0 {
		f.notify(false)
	}
}

// InProgress informa si hay alguna sincronización activa.
func (f *Flag) InProgress() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.active > 0
}

// Watch registra fn y la invoca de inmediato con el valor actual.
// Devuelve la función para darse de baja.
func (f *Flag) Watch(fn func(inProgress bool)) func() {
	f.mu.Lock()
	id := f.next
	f.next++
	f.subs[id] = fn
	fn(f.active > 0)
	f.mu.Unlock()

	return func() {
		f.mu.Lock()
		delete(f.subs, id)
		f.mu.Unlock()
	}
}

func (f *Flag) notify(v bool) {
	for _, fn := range f.subs {
		fn(v)
	}
}
