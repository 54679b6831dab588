package domain

import "errors"

var (
	// Ошибка отсутствующего идентификатора клиента.
	ErrCustomerRequired = errors.New("customer_id is required")
	// Ошибка отсутствующего идентификатора магазина.
	ErrStoreRequired = errors.New("store_id is required")
	// Ошибка отсутствия хотя бы одного товара в заказе.
	ErrItemsRequired = errors.New("order must contain at least one item")
	// Ошибка отрицательной суммы заказа.
	ErrAmountNegative = errors.New("order amounts must be non-negative")
	// Ошибка при некорректном количестве товара (<= 0).
	ErrItemQtyInvalid = errors.New("item quantity must be greater than zero")
	// Ошибка, если цена позиции отрицательная.
	ErrItemPriceInvalid = errors.New("item price must be non-negative")
	// Ошибка несоответствия суммы заказа и сумм позиций.
	ErrAmountMismatch = errors.New("order subtotal does not match items sum")
	// Ошибка нарушения grand_total = subtotal - discount + shipping.
	ErrGrandTotalMismatch = errors.New("grand total does not match subtotal - discount + shipping")
	// ErrInvalidStatus возвращается для неизвестного статуса заказа.
	ErrInvalidStatus = errors.New("invalid order status")
	// ErrInvalidPaymentStatus возвращается для неизвестного статуса оплаты.
	ErrInvalidPaymentStatus = errors.New("invalid payment status")
	// Ошибка отсутствующего идентификатора заказа.
	ErrOrderIDRequired = errors.New("order_id is required")
	// ErrOrderNotFound возвращается, если заказ не найден в репозитории.
	ErrOrderNotFound = errors.New("order not found")
	// ErrOrderVersionConflict сигнализирует о конфликте версий при сохранении.
	ErrOrderVersionConflict = errors.New("order version conflict")
	// ErrProductNotFound возвращается, если товар удалён или не существовал.
	ErrProductNotFound = errors.New("product not found")
	// Товар принадлежит другому магазину.
	ErrProductStoreMismatch = errors.New("product belongs to another store")
	// По товару не ведётся остаток (услуга).
	ErrStockUntracked    = errors.New("product stock is not tracked")
	ErrInsufficientStock = errors.New("insufficient stock")
	// Остаток после изменения не помещается в int32.
	ErrStockOverflow = errors.New("stock out of range")
	// ErrStoreNotFound возвращается, если магазин не найден.
	ErrStoreNotFound = errors.New("store not found")
	// ErrUserNotFound возвращается, если пользователь не найден.
	ErrUserNotFound = errors.New("user not found")
	// ErrNotificationNotFound возвращается, если уведомление не найдено у получателя.
	ErrNotificationNotFound = errors.New("notification not found")
	ErrOutboxPublish        = errors.New("outbox publish failed")
)

// IsVersionConflict проверяет, является ли ошибка конфликтом версий.
func IsVersionConflict(err error) bool {
	return errors.Is(err, ErrOrderVersionConflict)
}

// IsDataGap сообщает, что ошибка означает отсутствующие данные,
// которые обработчики пропускают без прерывания операции.
func IsDataGap(err error) bool {
	return errors.Is(err, ErrProductNotFound) ||
		errors.Is(err, ErrStockUntracked) ||
		errors.Is(err, ErrStoreNotFound) ||
		errors.Is(err, ErrUserNotFound)
}
