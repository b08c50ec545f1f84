package repository

// StockRepository puerto de acceso al stock de productos con bloqueo de fila.
// Ambas operaciones corren siempre dentro de una transacción ajena (TxRunner):
// este puerto nunca hace Commit ni Rollback por su cuenta.
type StockRepository interface {
	// GetForUpdate lee el stock actual y bloquea la fila del producto
	// (SELECT ... FOR UPDATE) hasta que la transacción termine.
	// Retorna domain.ErrNotFound si el producto no existe.
	GetForUpdate(productID string) (int64, error)

	// Adjust aplica stock = stock + delta (delta negativo para venta,
	// positivo para reversa). Retorna domain.ErrNotFound si el producto no existe.
	Adjust(productID string, delta int64) error
}
