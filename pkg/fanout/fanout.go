package fanout

import (
	"context"
	"fmt"
	"sync"
)

// Result é o resultado individual de um item processado
type Result[T, R any] struct {
	Item  T
	Value R
	Err   error
}

// Run processa os itens em paralelo com o limite de concorrência informado.
// A falha de um item não interrompe os demais; cada resultado carrega o seu
// próprio erro. Os resultados preservam a ordem dos itens de entrada.
// Um pânico no worker é convertido em erro do item.
func Run[T, R any](ctx context.Context, items []T, concurrency int, worker func(context.Context, T) (R, error)) []Result[T, R] {
	results := make([]Result[T, R], len(items))
	if len(items) == 0 {
		return results
	}

	if concurrency < 1 {
		concurrency = 1
	}
	if concurrency > len(items) {
		concurrency = len(items)
	}

	semaphore := make(chan struct{}, concurrency)
	var wg sync.WaitGroup

	for i, item := range items {
		results[i].Item = item

		if err := ctx.Err(); err != nil {
			results[i].Err = err
			continue
		}

		select {
		case <-ctx.Done():
			results[i].Err = ctx.Err()
			continue
		case semaphore <- struct{}{}:
		}

		wg.Add(1)
		go func(index int, item T) {
			defer wg.Done()
			defer func() { <-semaphore }()
			defer func() {
				if r := recover(); r != nil {
					results[index].Err = fmt.Errorf("panic no worker: %v", r)
				}
			}()

			value, err := worker(ctx, item)
			results[index].Value = value
			results[index].Err = err
		}(i, item)
	}

	wg.Wait()

	return results
}

// Errors retorna apenas os erros não nulos de uma lista de resultados
func Errors[T, R any](results []Result[T, R]) []error {
	errs := make([]error, 0)
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, r.Err)
		}
	}
	return errs
}
