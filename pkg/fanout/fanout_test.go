package fanout

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_ProcessaTodosOsItens(t *testing.T) {
	items := make([]int, 50)
	for i := range items {
		items[i] = i
	}

	results := Run(context.Background(), items, 8, func(_ context.Context, item int) (int, error) {
		return item * 2, nil
	})

	require.Len(t, results, 50)
	for i, result := range results {
		assert.NoError(t, result.Err)
		assert.Equal(t, i, result.Item)
		assert.Equal(t, i*2, result.Value)
	}
}

func TestRun_FalhaDeUmItemNaoInterrompeOsDemais(t *testing.T) {
	items := []string{"a", "b", "c", "d"}
	failed := errors.New("item rejeitado")

	results := Run(context.Background(), items, 2, func(_ context.Context, item string) (string, error) {
		if item == "b" {
			return "", failed
		}
		return item + "!", nil
	})

	require.Len(t, results, 4)
	assert.Equal(t, "a!", results[0].Value)
	assert.ErrorIs(t, results[1].Err, failed)
	assert.Equal(t, "c!", results[2].Value)
	assert.Equal(t, "d!", results[3].Value)
	assert.Len(t, Errors(results), 1)
}

func TestRun_RespeitaLimiteDeConcorrencia(t *testing.T) {
	var current, peak int32
	var mu sync.Mutex

	items := make([]int, 20)
	results := Run(context.Background(), items, 3, func(_ context.Context, _ int) (struct{}, error) {
		running := atomic.AddInt32(&current, 1)
		mu.Lock()
		if running > peak {
			peak = running
		}
		mu.Unlock()

		time.Sleep(5 * time.Millisecond)
		atomic.AddInt32(&current, -1)
		return struct{}{}, nil
	})

	require.Len(t, results, 20)
	assert.LessOrEqual(t, peak, int32(3))
}

func TestRun_PanicViraErroDoItem(t *testing.T) {
	results := Run(context.Background(), []int{1, 2, 3}, 2, func(_ context.Context, item int) (int, error) {
		if item == 2 {
			panic(fmt.Sprintf("item %d", item))
		}
		return item, nil
	})

	require.Len(t, results, 3)
	assert.NoError(t, results[0].Err)
	require.Error(t, results[1].Err)
	assert.Contains(t, results[1].Err.Error(), "panic")
	assert.NoError(t, results[2].Err)
}

func TestRun_ContextoCanceladoMarcaItensRestantes(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := Run(ctx, []int{1, 2, 3}, 1, func(_ context.Context, item int) (int, error) {
		return item, nil
	})

	require.Len(t, results, 3)
	for _, result := range results {
		assert.ErrorIs(t, result.Err, context.Canceled)
	}
}

func TestRun_ListaVazia(t *testing.T) {
	results := Run(context.Background(), nil, 4, func(_ context.Context, _ int) (int, error) {
		return 0, nil
	})

	assert.Empty(t, results)
}
