package memory

import (
	"context"
	"sync"

	"github.com/vladislavdragonenkov/marketplace/internal/transaction"
)

type journalKey struct{}

// journal накапливает компенсирующие действия изменений внутри транзакции.
type journal struct {
	undo []func()
}

func (j *journal) rollback() {
	for i := len(j.undo) - 1; i >= 0; i-- {
		j.undo[i]()
	}
	j.undo = nil
}

// TxScope эмулирует транзакцию для in-memory репозиториев:
// транзакции выполняются последовательно, при ошибке изменения откатываются в обратном порядке.
type TxScope struct {
	mu sync.Mutex
}

// NewTxScope создаёт in-memory реализацию transaction.Scope.
func NewTxScope() *TxScope {
	return &TxScope{}
}

// Execute выполняет fn; вложенный вызов присоединяется к внешней транзакции.
func (s *TxScope) Execute(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if _, ok := ctx.Value(journalKey{}).(*journal); ok {
		return fn(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	j := &journal{}
	defer func() {
		if p := recover(); p != nil {
			j.rollback()
			panic(p)
		}
		if err != nil {
			j.rollback()
		}
	}()

	return fn(context.WithValue(ctx, journalKey{}, j))
}

// recordUndo регистрирует компенсирующее действие, если ctx несёт транзакцию.
// undo вызывается вне блокировок репозитория и должно брать их самостоятельно.
func recordUndo(ctx context.Context, undo func()) {
	if j, ok := ctx.Value(journalKey{}).(*journal); ok {
		j.undo = append(j.undo, undo)
	}
}

var _ transaction.Scope = (*TxScope)(nil)
