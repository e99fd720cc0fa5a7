package syncmanager_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inversiones-api/internal/application/syncmanager"
	"github.com/jhoicas/Inversiones-api/internal/application/syncstatus"
	"github.com/jhoicas/Inversiones-api/internal/domain"
)

type blockingJob struct {
	started chan struct{}
	release chan struct{}
	err     error
}

func (j *blockingJob) Refresh(ctx context.Context) error {
	if j.started != nil {
		j.started <- struct{}{}
	}
	if j.release != nil {
		select {
		case <-j.release:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return j.err
}

func TestTriggerNow_PublicaFlagYEstado(t *testing.T) {
	flag := syncstatus.NewFlag()
	var seen []bool
	stop := flag.Watch(func(v bool) { seen = append(seen, v) })
	defer stop()

	m := syncmanager.New(&blockingJob{}, flag, 0, nil)
	require.NoError(t, m.TriggerNow(context.Background()))

	assert.Equal(t, []bool{false, true, false}, seen)
	st := m.Status()
	assert.False(t, st.InProgress)
	require.NotNil(t, st.LastRun)
	assert.Empty(t, st.LastError)
}

func TestTriggerNow_RechazaDuplicado(t *testing.T) {
	flag := syncstatus.NewFlag()
	job := &blockingJob{started: make(chan struct{}, 1), release: make(chan struct{})}
	m := syncmanager.New(job, flag, 0, nil)

	done := make(chan error, 1)
	go func() { done <- m.TriggerNow(context.Background()) }()
	<-job.started

	assert.True(t, m.Status().InProgress)
	assert.ErrorIs(t, m.TriggerNow(context.Background()), domain.ErrSyncInProgress)

	close(job.release)
	require.NoError(t, <-done)
	assert.False(t, flag.InProgress())
}

func TestTriggerNow_RegistraError(t *testing.T) {
	boom := errors.New("repositorio caído")
	m := syncmanager.New(&blockingJob{err: boom}, syncstatus.NewFlag(), 0, nil)

	err := m.TriggerNow(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "repositorio caído", m.Status().LastError)
}

func TestTriggerNow_Timeout(t *testing.T) {
	job := &blockingJob{release: make(chan struct{})}
	m := syncmanager.New(job, syncstatus.NewFlag(), 20*time.Millisecond, nil)

	err := m.TriggerNow(context.Background())
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestStart_ExpresionInvalida(t *testing.T) {
	m := syncmanager.New(&blockingJob{}, syncstatus.NewFlag(), 0, nil)
	assert.Error(t, m.Start("no es cron"))
	assert.NoError(t, m.Start(""))
	<-m.Stop().Done()
}

func TestTriggerAsync_ReservaDeFormaSincrona(t *testing.T) {
	flag := syncstatus.NewFlag()
	job := &blockingJob{started: make(chan struct{}, 1), release: make(chan struct{})}
	m := syncmanager.New(job, flag, 0, nil)

	require.NoError(t, m.TriggerAsync(context.Background()))
	assert.True(t, flag.InProgress(), "el flag se activa antes de volver")
	assert.ErrorIs(t, m.TriggerAsync(context.Background()), domain.ErrSyncInProgress)

	<-job.started
	close(job.release)
	assert.Eventually(t, func() bool { return !flag.InProgress() }, time.Second, 5*time.Millisecond)
	assert.Eventually(t, func() bool { return m.Status().LastRun != nil }, time.Second, 5*time.Millisecond)
}

func TestStop_EsperaEjecucionesAsincronas(t *testing.T) {
	flag := syncstatus.NewFlag()
	job := &blockingJob{started: make(chan struct{}, 1), release: make(chan struct{})}
	m := syncmanager.New(job, flag, 0, nil)

	require.NoError(t, m.TriggerAsync(context.Background()))
	<-job.started

	stopped := m.Stop()
	select {
	case <-stopped.Done():
		t.Fatal("Stop terminó con una sincronización en curso")
	case <-time.After(30 * time.Millisecond):
	}

	assert.ErrorIs(t, m.TriggerAsync(context.Background()), domain.ErrSyncStopped)

	close(job.release)
	select {
	case <-stopped.Done():
	case <-time.After(time.Second):
		t.Fatal("Stop no terminó tras finalizar la sincronización")
	}
	assert.False(t, flag.InProgress())
	require.NotNil(t, m.Status().LastRun)
}
