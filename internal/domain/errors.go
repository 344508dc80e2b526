package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound          = errors.New("recurso não encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrConflict          = errors.New("conflito com o estado atual")
	ErrInsufficientStock = errors.New("estoque insuficiente")
	ErrRemoteUnavailable = errors.New("API indisponível")
)

// InsufficientStockError sinaliza saída maior que o saldo, carregando os dois
// valores para exibição.
type InsufficientStockError struct {
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("estoque insuficiente. Disponível: %d, Solicitado: %d", e.Available, e.Requested)
}

// Is permite errors.Is(err, ErrInsufficientStock).
func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}

// ValidationError agrega as violações de campo na ordem em que foram detectadas.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

// Is permite errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// InUseError sinaliza exclusão de categoria/fornecedor ainda referenciado por produtos.
type InUseError struct {
	Entity string
	Count  int
}

func (e *InUseError) Error() string {
	return fmt.Sprintf("%s em uso por %d produto(s)", e.Entity, e.Count)
}

// Is permite errors.Is(err, ErrConflict).
func (e *InUseError) Is(target error) bool {
	return target == ErrConflict
}
