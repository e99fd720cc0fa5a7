package entity

// AuthState estado de sesión visto por los consumidores (guard, handlers).
// En estado estable nunca están IsLoading e IsAuthenticated a la vez.
type AuthState struct {
	User            *User
	IsAuthenticated bool
	IsLoading       bool
	Error           string
}

// Authenticated devuelve el estado "autenticado con usuario".
func Authenticated(u *User) AuthState {
	return AuthState{User: u, IsAuthenticated: true}
}

// Unauthenticated devuelve el estado "no autenticado", opcionalmente con mensaje de error.
func Unauthenticated(errMsg string) AuthState {
	return AuthState{Error: errMsg}
}
