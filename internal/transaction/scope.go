// Package transaction описывает границу транзакции для use case'ов.
package transaction

import "context"

// Scope выполняет функцию внутри транзакции.
// Транзакция фиксируется, если fn вернула nil, и откатывается в противном случае.
// ctx, переданный в fn, несёт транзакцию для репозиториев.
// Вложенный Execute присоединяется к уже открытой транзакции.
type Scope interface {
	Execute(ctx context.Context, fn func(ctx context.Context) error) error
}

// ExecuteWithResult выполняет fn в транзакции и возвращает её результат.
func ExecuteWithResult[T any](ctx context.Context, scope Scope, fn func(ctx context.Context) (T, error)) (T, error) {
	var result T
	err := scope.Execute(ctx, func(ctx context.Context) error {
		var fnErr error
		result, fnErr = fn(ctx)
		return fnErr
	})
	return result, err
}
