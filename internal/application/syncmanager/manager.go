// Package syncmanager ejecuta la sincronización de snapshots (manual o periódica con cron)
// y publica su estado en el flag compartido de syncstatus.
package syncmanager

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jhoicas/Inversiones-api/internal/application/syncstatus"
	"github.com/jhoicas/Inversiones-api/internal/domain"
	"github.com/jhoicas/Inversiones-api/pkg/logger"
)

// Job trabajo de sincronización; lo implementa analytics.DashboardUseCase.
type Job interface {
	Refresh(ctx context.Context) error
}

// Status resultado de la última ejecución.
type Status struct {
	InProgress bool
	LastRun    *time.Time
	LastError  string
}

// Manager serializa las ejecuciones: nunca corre más de una a la vez.
type Manager struct {
	job     Job
	flag    *syncstatus.Flag
	cron    *cron.Cron
	log     *logger.Logger
	timeout time.Duration
	now     func() time.Time

	running atomic.Bool
	async   sync.WaitGroup

	mu      sync.Mutex
	stopped bool
	lastRun *time.Time
	lastErr string
}

// New crea el manager. timeout acota cada ejecución; 0 = sin límite.
func New(job Job, flag *syncstatus.Flag, timeout time.Duration, log *logger.Logger) *Manager {
	if log == nil {
		log = logger.Nop()
	}
	return &Manager{
		job:     job,
		flag:    flag,
		cron:    cron.New(cron.WithSeconds()),
		log:     log.Named("sync"),
		timeout: timeout,
		now:     time.Now,
	}
}

// Start programa la sincronización periódica. expresión vacía = solo disparos manuales.
func (m *Manager) Start(expr string) error {
	if expr == "" {
		return nil
	}
	if _, err := m.cron.AddFunc(expr, m.scheduled); err != nil {
		return err
	}
	m.cron.Start()
	m.log.Info().Str("cron", expr).Msg("sincronización periódica programada")
	return nil
}

// Stop detiene el cron y rechaza nuevos disparos. El contexto devuelto termina cuando acaban
// tanto la ejecución programada en curso como las lanzadas con TriggerAsync.
func (m *Manager) Stop() context.Context {
	m.mu.Lock()
	m.stopped = true
	m.mu.Unlock()

	cronDone := m.cron.Stop()
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-cronDone.Done()
		m.async.Wait()
		cancel()
	}()
	return ctx
}

func (m *Manager) scheduled() {
	if err := m.TriggerNow(context.Background()); err != nil && !errors.Is(err, domain.ErrSyncInProgress) {
		m.log.Error().Err(err).Msg("sincronización programada fallida")
	}
}

// TriggerNow ejecuta una sincronización y espera a que termine.
// Devuelve domain.ErrSyncInProgress si ya hay una en curso.
func (m *Manager) TriggerNow(ctx context.Context) error {
	if !m.acquire() {
		return domain.ErrSyncInProgress
	}
	return m.run(ctx)
}

// TriggerAsync reserva la ejecución de forma síncrona y la corre en segundo plano,
// desligada de la cancelación de ctx.
func (m *Manager) TriggerAsync(ctx context.Context) error {
	m.mu.Lock()
	if m.stopped {
		m.mu.Unlock()
		return domain.ErrSyncStopped
	}
	m.async.Add(1)
	m.mu.Unlock()

	if !m.acquire() {
		m.async.Done()
		return domain.ErrSyncInProgress
	}
	go func() {
		defer m.async.Done()
		if err := m.run(context.WithoutCancel(ctx)); err != nil {
			m.log.Error().Err(err).Msg("sincronización manual fallida")
		}
	}()
	return nil
}

func (m *Manager) acquire() bool {
	if !m.running.CompareAndSwap(false, true) {
		m.log.Debug().Msg("sincronización ignorada: ya hay una en curso")
		return false
	}
	m.flag.Begin()
	return true
}

func (m *Manager) run(ctx context.Context) error {
	defer m.running.Store(false)
	defer m.flag.End()

	if m.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.timeout)
		defer cancel()
	}

	start := m.now()
	err := m.job.Refresh(ctx)

	m.mu.Lock()
	finished := m.now()
	m.lastRun = &finished
	m.lastErr = ""
	if err != nil {
		m.lastErr = err.Error()
	}
	m.mu.Unlock()

	ev := m.log.Info()
	if err != nil {
		ev = m.log.Error().Err(err)
	}
	ev.Dur("duration", finished.Sub(start)).Msg("sincronización terminada")
	return err
}

// Status devuelve una copia del estado actual.
func (m *Manager) Status() Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	st := Status{InProgress: m.flag.InProgress(), LastError: m.lastErr}
	if m.lastRun != nil {
		t := *m.lastRun
		st.LastRun = &t
	}
	return st
}
