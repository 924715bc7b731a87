package commands

import (
	"context"

	"gin-booking/internal/domain/transaction"
	"gin-booking/internal/infra"
	"gin-booking/internal/pkg/errs"
	"gin-booking/internal/usecase/shared"
)

type TransactionCommands interface {
	SetStatus(ctx context.Context, id, status string) error
}

type transactionCommandsImpl struct {
	transactions shared.TransactionRepository
}

func NewTransactionCommands(transactions shared.TransactionRepository) TransactionCommands {
	return &transactionCommandsImpl{transactions: transactions}
}

// SetStatus records an admin decision. A decided transaction may be decided again.
func (uc *transactionCommandsImpl) SetStatus(ctx context.Context, id, status string) error {
	decision, err := transaction.NewDecision(status)
	if err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}

	if err := uc.transactions.SetStatus(ctx, id, decision); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrTransactionNotFound
		}
		return err
	}
	return nil
}
