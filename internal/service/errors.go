package service

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Caller-visible engine failures. Handlers map these onto HTTP statuses; the
// engine never papers over them with zero costs or fabricated prices.
var (
	// ErrNotFound — a referenced product, client, or catalog entity id does
	// not exist.
	ErrNotFound = errors.New("registro nao encontrado")

	// ErrDanglingReference — a usage edge points at a deleted catalog row or
	// deleted child product.
	ErrDanglingReference = errors.New("referencia pendente na composicao")

	// ErrCycleDetected — the composition graph revisits a product already on
	// the current recursion path.
	ErrCycleDetected = errors.New("ciclo detectado na composicao")

	// ErrMarginTaxRange — margin plus total tax rate reaches 100%, leaving the
	// pricing formula undefined.
	ErrMarginTaxRange = errors.New("margem somada aos impostos atinge 100%")

	// ErrNegativeInput — a quantity, price, or percentage below zero.
	ErrNegativeInput = errors.New("valor negativo nao permitido")
)

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// notFound converts gorm's record-not-found into the service sentinel so
// callers never match on storage errors.
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
