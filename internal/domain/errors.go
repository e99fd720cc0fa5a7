package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrUserNotFound    = errors.New("usuario no encontrado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrInvalidRole     = errors.New("rol inválido")
	ErrUnauthorized    = errors.New("no autorizado")
	ErrSessionExpired  = errors.New("sesión inválida o expirada")
	ErrSyncInProgress  = errors.New("ya hay una sincronización en curso")
	ErrSyncStopped     = errors.New("la sincronización está detenida")
	ErrNoReferralLevel = errors.New("no hay niveles de referido configurados")
)
