package cache

import "time"

// SetNow reemplaza el reloj de la caché en memoria para los tests.
func (m *Memory) SetNow(now func() time.Time) { m.now = now }
