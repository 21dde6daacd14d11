package scheduler

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/mcc-manager-api/internal/domain"
	"github.com/vfg2006/mcc-manager-api/internal/usecases/caching"
)

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condição não satisfeita no tempo esperado")
}

func TestCacheSyncServiceStartDesabilitado(t *testing.T) {
	var runs atomic.Int32

	svc := newCacheSyncService("teste", domain.CacheMetaSuspended,
		CacheSyncConfig{CronSchedule: "0 3 * * *", SyncEnabled: false},
		func(_ context.Context) error {
			runs.Add(1)
			return nil
		},
	)

	require.NoError(t, svc.Start(context.Background()))
	assert.Equal(t, int32(0), runs.Load())
}

func TestCacheSyncServiceTriggerManualSync(t *testing.T) {
	var runs atomic.Int32
	done := make(chan struct{}, 1)

	svc := newCacheSyncService("teste", domain.CacheMetaSuspended,
		CacheSyncConfig{CronSchedule: "0 3 * * *", SyncEnabled: true},
		func(_ context.Context) error {
			runs.Add(1)
			done <- struct{}{}
			return nil
		},
	)

	svc.TriggerManualSync()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("sincronização manual não executou")
	}

	waitFor(t, func() bool {
		status := svc.GetStatus()
		return status["sync_running"] == false
	})

	assert.Equal(t, int32(1), runs.Load())
	status := svc.GetStatus()
	assert.Equal(t, "suspended", status["type"])
	assert.Empty(t, status["last_sync_error"])
}

func TestCacheSyncServiceNaoSobrepoeExecucoes(t *testing.T) {
	var runs atomic.Int32
	block := make(chan struct{})
	started := make(chan struct{})
	var once sync.Once

	svc := newCacheSyncService("teste", domain.CacheMetaCampaignCounts,
		CacheSyncConfig{CronSchedule: "0 4 * * *", SyncEnabled: true},
		func(_ context.Context) error {
			runs.Add(1)
			once.Do(func() { close(started) })
			<-block
			return nil
		},
	)

	svc.TriggerManualSync()
	<-started

	// Segundo disparo enquanto o primeiro ainda roda é ignorado
	svc.TriggerManualSync()

	close(block)
	waitFor(t, func() bool {
		return svc.GetStatus()["sync_running"] == false
	})

	assert.Equal(t, int32(1), runs.Load())
}

func TestCacheSyncServiceRegistraErro(t *testing.T) {
	svc := newCacheSyncService("teste", domain.CacheMetaRealOver20,
		CacheSyncConfig{CronSchedule: "0 5 * * *", SyncEnabled: true},
		func(_ context.Context) error {
			return errors.New("quota exceeded")
		},
	)

	svc.runSync(context.Background())

	status := svc.GetStatus()
	assert.Equal(t, "quota exceeded", status["last_sync_error"])
}

func TestCacheSyncServiceIgnoraRefreshJaEmAndamento(t *testing.T) {
	svc := newCacheSyncService("teste", domain.CacheMetaSuspended,
		CacheSyncConfig{CronSchedule: "0 3 * * *", SyncEnabled: true},
		func(_ context.Context) error {
			return caching.NewCacheError(caching.ErrRefreshInProgress, "VAL_001", "suspended")
		},
	)

	svc.runSync(context.Background())

	// Concorrência com uma atualização interativa não conta como falha
	status := svc.GetStatus()
	assert.Empty(t, status["last_sync_error"])
}
