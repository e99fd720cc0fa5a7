// Package session mantiene el AuthState de un cliente y controla sus transiciones.
//
// El Store es el único dueño del estado: los consumidores leen copias con Snapshot
// y solo pueden mutarlo mediante CheckAuth/TriggerCheck, Login y Logout.
package session

import (
	"context"
	"sync"

	"github.com/jhoicas/Inversiones-api/internal/domain/entity"
)

// Authenticator resuelve la identidad de la sesión actual.
// Devuelve (nil, nil) si no hay sesión y error si la credencial es inválida.
type Authenticator interface {
	Authenticate(ctx context.Context) (*entity.User, error)
}

// AuthenticatorFunc adapta una función a Authenticator.
type AuthenticatorFunc func(ctx context.Context) (*entity.User, error)

// Authenticate implementa Authenticator.
func (f AuthenticatorFunc) Authenticate(ctx context.Context) (*entity.User, error) {
	return f(ctx)
}

// Store estado de sesión con verificación idempotente.
type Store struct {
	authn Authenticator

	mu    sync.Mutex
	state entity.AuthState
	done  *waiter // se libera al resolver la verificación en curso
	subs  map[int]func(entity.AuthState)
	next  int
}

// NewStore crea un Store en estado "no autenticado, sin cargar".
func NewStore(authn Authenticator) *Store {
	return &Store{authn: authn, subs: make(map[int]func(entity.AuthState))}
}

// Snapshot devuelve una copia del estado actual.
func (s *Store) Snapshot() entity.AuthState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyState(s.state)
}

// CheckAuth verifica la sesión y bloquea hasta resolverla.
// Si ya hay una verificación en curso o la sesión está autenticada no hace nada y devuelve false.
func (s *Store) CheckAuth(ctx context.Context) bool {
	if !s.begin() {
		return false
	}
	s.resolve(ctx)
	return true
}

// TriggerCheck igual que CheckAuth pero resuelve en segundo plano.
// El paso a "cargando" es síncrono, así que un segundo disparo inmediato se ignora.
func (s *Store) TriggerCheck(ctx context.Context) bool {
	if !s.begin() {
		return false
	}
	go s.resolve(context.WithoutCancel(ctx))
	return true
}

// Wait bloquea mientras haya una verificación en curso y devuelve el estado resultante.
func (s *Store) Wait(ctx context.Context) (entity.AuthState, error) {
	s.mu.Lock()
	w := s.done
	if w == nil {
		st := copyState(s.state)
		s.mu.Unlock()
		return st, nil
	}
	s.mu.Unlock()

	select {
	case <-w.ch:
		return s.Snapshot(), nil
	case <-ctx.Done():
		return entity.AuthState{}, ctx.Err()
	}
}

// Login fija la sesión como autenticada con u (tras validar credenciales fuera del Store).
func (s *Store) Login(u *entity.User) {
	if u == nil {
		s.Logout()
		return
	}
	c := *u
	s.set(entity.Authenticated(&c))
}

// Logout vuelve al estado inicial.
func (s *Store) Logout() {
	s.set(entity.AuthState{})
}

// Subscribe registra fn para cada cambio de estado. Devuelve la función para darse de baja.
func (s *Store) Subscribe(fn func(entity.AuthState)) func() {
	s.mu.Lock()
	id := s.next
	s.next++
	s.subs[id] = fn
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *Store) begin() bool {
	s.mu.Lock()
	if s.state.IsLoading || s.state.IsAuthenticated {
		s.mu.Unlock()
		return false
	}
	s.state = entity.AuthState{IsLoading: true}
	s.done = &waiter{ch: make(chan struct{})}
	st, subs := copyState(s.state), s.subscribers()
	s.mu.Unlock()

	notify(subs, st)
	return true
}

func (s *Store) resolve(ctx context.Context) {
	var next entity.AuthState
	user, err := s.authn.Authenticate(ctx)
	switch {
	case err != nil:
		next = entity.Unauthenticated(err.Error())
	case user == nil:
		next = entity.Unauthenticated("")
	default:
		next = entity.Authenticated(user)
	}
	s.set(next)
}

// set publica el nuevo estado. Quien espera en Wait se libera después de notificar a los suscriptores.
func (s *Store) set(next entity.AuthState) {
	s.mu.Lock()
	s.state = next
	w := s.done
	st, subs := copyState(s.state), s.subscribers()
	s.mu.Unlock()

	notify(subs, st)

	if w == nil {
		return
	}
	s.mu.Lock()
	if s.done == w {
		s.done = nil
	}
	s.mu.Unlock()
	w.release()
}

func (s *Store) subscribers() []func(entity.AuthState) {
	out := make([]func(entity.AuthState), 0, len(s.subs))
	for _, fn := range s.subs {
		out = append(out, fn)
	}
	return out
}

func notify(subs []func(entity.AuthState), st entity.AuthState) {
	for _, fn := range subs {
		fn(st)
	}
}

func copyState(st entity.AuthState) entity.AuthState {
	if st.User != nil {
		u := *st.User
		st.User = &u
	}
	return st
}

type waiter struct {
	ch   chan struct{}
	once sync.Once
}

func (w *waiter) release() {
	w.once.Do(func() { close(w.ch) })
}
