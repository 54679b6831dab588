package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vladislavdragonenkov/marketplace/internal/domain"
)

type productRepository struct {
	db *sql.DB
}

// NewProductRepository создаёт PostgreSQL-реализацию ProductRepository.
func NewProductRepository(store *Store) domain.ProductRepository {
	return &productRepository{db: store.DB()}
}

func (r *productRepository) Create(ctx context.Context, product domain.Product) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	now := time.Now().UTC()
	if product.CreatedAt.IsZero() {
		product.CreatedAt = now
	}

	var stock sql.NullInt32
	if product.Stock != nil {
		stock = sql.NullInt32{Int32: *product.Stock, Valid: true}
	}

	if _, err := conn(ctx, r.db).ExecContext(ctx, `
		INSERT INTO products (id, store_id, name, price_minor, stock, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
	`, product.ID, product.StoreID, product.Name, product.PriceMinor, stock, product.CreatedAt, now); err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

func (r *productRepository) Get(ctx context.Context, id string) (domain.Product, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var (
		product domain.Product
		stock   sql.NullInt32
	)
	err := conn(ctx, r.db).QueryRowContext(ctx, `
		SELECT id, store_id, name, price_minor, stock, created_at, updated_at
		FROM products
		WHERE id = $1
	`, id).Scan(
		&product.ID, &product.StoreID, &product.Name, &product.PriceMinor,
		&stock, &product.CreatedAt, &product.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Product{}, domain.ErrProductNotFound
		}
		return domain.Product{}, fmt.Errorf("select product: %w", err)
	}
	if stock.Valid {
		value := stock.Int32
		product.Stock = &value
	}
	return product, nil
}

// DecrementStock атомарно уменьшает остаток одним UPDATE с условием stock >= qty.
func (r *productRepository) DecrementStock(ctx context.Context, productID string, qty int32) (domain.StockLevel, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	db := conn(ctx, r.db)
	level, err := scanStockLevel(db.QueryRowContext(ctx, `
		UPDATE products
		SET stock = stock - $2,
		    updated_at = NOW()
		WHERE id = $1
		  AND stock IS NOT NULL
		  AND stock >= $2
		RETURNING id, name, store_id, stock
	`, productID, qty))
	if err == nil {
		return level, nil
	}
	if isNumericOverflow(err) {
		return domain.StockLevel{}, domain.ErrStockOverflow
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return domain.StockLevel{}, fmt.Errorf("decrement stock: %w", err)
	}

	return domain.StockLevel{}, r.classifyMiss(ctx, db, productID, domain.ErrInsufficientStock)
}

// IncrementStock атомарно возвращает количество на склад.
func (r *productRepository) IncrementStock(ctx context.Context, productID string, qty int32) (domain.StockLevel, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	db := conn(ctx, r.db)
	level, err := scanStockLevel(db.QueryRowContext(ctx, `
		UPDATE products
		SET stock = stock + $2,
		    updated_at = NOW()
		WHERE id = $1
		  AND stock IS NOT NULL
		RETURNING id, name, store_id, stock
	`, productID, qty))
	if err == nil {
		return level, nil
	}
	if isNumericOverflow(err) {
		return domain.StockLevel{}, domain.ErrStockOverflow
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return domain.StockLevel{}, fmt.Errorf("increment stock: %w", err)
	}

	return domain.StockLevel{}, r.classifyMiss(ctx, db, productID, domain.ErrStockUntracked)
}

// classifyMiss объясняет, почему UPDATE не затронул строку.
func (r *productRepository) classifyMiss(ctx context.Context, db executor, productID string, fallback error) error {
	var stock sql.NullInt32
	err := db.QueryRowContext(ctx, `SELECT stock FROM products WHERE id = $1`, productID).Scan(&stock)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return domain.ErrProductNotFound
	case err != nil:
		return fmt.Errorf("check product stock: %w", err)
	case !stock.Valid:
		return domain.ErrStockUntracked
	default:
		return fallback
	}
}

func scanStockLevel(row rowScanner) (domain.StockLevel, error) {
	var level domain.StockLevel
	if err := row.Scan(&level.ProductID, &level.ProductName, &level.StoreID, &level.Stock); err != nil {
		return domain.StockLevel{}, err
	}
	return level, nil
}

type storeRepository struct {
	db *sql.DB
}

// NewStoreRepository создаёт PostgreSQL-реализацию StoreRepository.
func NewStoreRepository(store *Store) domain.StoreRepository {
	return &storeRepository{db: store.DB()}
}

func (r *storeRepository) Create(ctx context.Context, store domain.Store) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	now := time.Now().UTC()
	if store.CreatedAt.IsZero() {
		store.CreatedAt = now
	}

	if _, err := conn(ctx, r.db).ExecContext(ctx, `
		INSERT INTO stores (id, owner_user_id, name, transactions_count, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6)
	`, store.ID, store.OwnerUserID, store.Name, store.TransactionsCount, store.CreatedAt, now); err != nil {
		return fmt.Errorf("insert store: %w", err)
	}
	return nil
}

func (r *storeRepository) Get(ctx context.Context, id string) (domain.Store, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var store domain.Store
	err := conn(ctx, r.db).QueryRowContext(ctx, `
		SELECT id, owner_user_id, name, transactions_count, created_at, updated_at
		FROM stores
		WHERE id = $1
	`, id).Scan(
		&store.ID, &store.OwnerUserID, &store.Name, &store.TransactionsCount,
		&store.CreatedAt, &store.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Store{}, domain.ErrStoreNotFound
		}
		return domain.Store{}, fmt.Errorf("select store: %w", err)
	}
	return store, nil
}

// RecomputeTransactions пересчитывает счётчик одним UPDATE из COUNT по заказам,
// поэтому повторный вызов не меняет результат.
func (r *storeRepository) RecomputeTransactions(ctx context.Context, storeID string, statuses []domain.OrderStatus) (int64, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	raw := make([]string, 0, len(statuses))
	for _, status := range statuses {
		raw = append(raw, string(status))
	}

	var count int64
	err := conn(ctx, r.db).QueryRowContext(ctx, `
		UPDATE stores
		SET transactions_count = (
		        SELECT COUNT(*)
		        FROM orders
		        WHERE store_id = $1
		          AND status = ANY($2)
		    ),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING transactions_count
	`, storeID, raw).Scan(&count)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, domain.ErrStoreNotFound
		}
		return 0, fmt.Errorf("recompute store transactions: %w", err)
	}
	return count, nil
}

type userRepository struct {
	db *sql.DB
}

// NewUserRepository создаёт PostgreSQL-реализацию UserRepository.
func NewUserRepository(store *Store) domain.UserRepository {
	return &userRepository{db: store.DB()}
}

func (r *userRepository) Create(ctx context.Context, user domain.User) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	if _, err := conn(ctx, r.db).ExecContext(ctx, `
		INSERT INTO users (id, name, email) VALUES ($1,$2,$3)
	`, user.ID, user.Name, user.Email); err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *userRepository) Get(ctx context.Context, id string) (domain.User, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var user domain.User
	err := conn(ctx, r.db).QueryRowContext(ctx, `
		SELECT id, name, email FROM users WHERE id = $1
	`, id).Scan(&user.ID, &user.Name, &user.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, fmt.Errorf("select user: %w", err)
	}
	return user, nil
}

var (
	_ domain.ProductRepository = (*productRepository)(nil)
	_ domain.StoreRepository   = (*storeRepository)(nil)
	_ domain.UserRepository    = (*userRepository)(nil)
)
