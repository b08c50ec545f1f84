package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrUsernameTaken      = errors.New("el nombre de usuario ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInsufficientStock  = errors.New("stock insuficiente")
)

// StockError detalla un fallo de stock insuficiente indicando el producto afectado.
// errors.Is(err, ErrInsufficientStock) retorna true para este tipo.
type StockError struct {
	ProductID   string
	ProductName string
	Available   int64
	Requested   int64
}

// Error implementa error.
func (e *StockError) Error() string {
	name := e.ProductName
	if name == "" {
		name = e.ProductID
	}
	return fmt.Sprintf("stock insuficiente para el producto %q: disponible %d, solicitado %d",
		name, e.Available, e.Requested)
}

// Is permite detectar el error con errors.Is contra ErrInsufficientStock.
func (e *StockError) Is(target error) bool {
	return target == ErrInsufficientStock
}
