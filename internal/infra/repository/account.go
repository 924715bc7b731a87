package repository

import (
	"context"
	"log/slog"
	"strings"

	"gin-booking/internal/infra"
	"gin-booking/internal/infra/docstore"
	"gin-booking/internal/infra/repository/converter"
)

// Account is a locally managed credential record.
type Account struct {
	UID               string
	Email             string
	PasswordHash      string
	DisplayName       string
	SessionGeneration int64
}

const (
	fieldPasswordHash      = "passwordHash"
	fieldSessionGeneration = "sessionGeneration"
	fieldUID               = "uid"
)

type AccountRepository struct {
	store  docstore.Store
	logger *slog.Logger
}

func NewAccountRepository(store docstore.Store, logger *slog.Logger) *AccountRepository {
	return &AccountRepository{store: store, logger: logger}
}

// Create claims the email first so two registrations cannot share it.
// It returns a KindDuplicateKey repository error when the email is taken.
func (r *AccountRepository) Create(ctx context.Context, acc Account) error {
	email := normalizeEmail(acc.Email)
	if err := r.store.Create(ctx, converter.CollectionAccountEmails, email,
		map[string]any{fieldUID: acc.UID}); err != nil {
		return infra.FromStoreErr(r.logger, "email already registered", err)
	}

	err := r.store.Create(ctx, converter.CollectionAccounts, acc.UID, map[string]any{
		converter.FieldEmail:       email,
		fieldPasswordHash:          acc.PasswordHash,
		converter.FieldDisplayName: acc.DisplayName,
		fieldSessionGeneration:     acc.SessionGeneration,
		converter.FieldCreatedAt:   docstore.ServerTimestamp,
	})
	if err != nil {
		if delErr := r.store.Delete(ctx, converter.CollectionAccountEmails, email); delErr != nil {
			r.logger.Error("failed to release email claim", "email", email, "error", delErr.Error())
		}
		return infra.FromStoreErr(r.logger, "failed to create account", err)
	}
	return nil
}

func (r *AccountRepository) Get(ctx context.Context, uid string) (*Account, error) {
	doc, err := r.store.Get(ctx, converter.CollectionAccounts, uid)
	if err != nil {
		return nil, infra.FromStoreErr(r.logger, "account not found", err)
	}
	return accountFromDocument(doc), nil
}

func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*Account, error) {
	claim, err := r.store.Get(ctx, converter.CollectionAccountEmails, normalizeEmail(email))
	if err != nil {
		return nil, infra.FromStoreErr(r.logger, "account not found", err)
	}
	return r.Get(ctx, claim.Text(fieldUID))
}

// SetPassword replaces the hash and invalidates every session issued so far.
func (r *AccountRepository) SetPassword(ctx context.Context, uid, passwordHash string) error {
	acc, err := r.Get(ctx, uid)
	if err != nil {
		return err
	}
	err = r.store.Update(ctx, converter.CollectionAccounts, uid, map[string]any{
		fieldPasswordHash:      passwordHash,
		fieldSessionGeneration: acc.SessionGeneration + 1,
	})
	return infra.FromStoreErr(r.logger, "failed to update password", err)
}

// BumpGeneration invalidates every session issued so far.
func (r *AccountRepository) BumpGeneration(ctx context.Context, uid string) error {
	acc, err := r.Get(ctx, uid)
	if err != nil {
		return err
	}
	err = r.store.Update(ctx, converter.CollectionAccounts, uid,
		map[string]any{fieldSessionGeneration: acc.SessionGeneration + 1})
	return infra.FromStoreErr(r.logger, "failed to revoke sessions", err)
}

func (r *AccountRepository) SetDisplayName(ctx context.Context, uid, displayName string) error {
	err := r.store.Update(ctx, converter.CollectionAccounts, uid,
		map[string]any{converter.FieldDisplayName: displayName})
	return infra.FromStoreErr(r.logger, "failed to update account name", err)
}

// Delete removes the account and releases its email. A missing account is not an error.
func (r *AccountRepository) Delete(ctx context.Context, uid string) error {
	acc, err := r.Get(ctx, uid)
	if err != nil {
		if IsNotFound(err) {
			return nil
		}
		return err
	}
	if err := r.store.Delete(ctx, converter.CollectionAccounts, uid); err != nil {
		return infra.FromStoreErr(r.logger, "failed to delete account", err)
	}
	if err := r.store.Delete(ctx, converter.CollectionAccountEmails, normalizeEmail(acc.Email)); err != nil {
		return infra.FromStoreErr(r.logger, "failed to release email claim", err)
	}
	return nil
}

func accountFromDocument(doc docstore.Document) *Account {
	return &Account{
		UID:               doc.ID,
		Email:             doc.Text(converter.FieldEmail),
		PasswordHash:      doc.Text(fieldPasswordHash),
		DisplayName:       doc.Text(converter.FieldDisplayName),
		SessionGeneration: doc.Int(fieldSessionGeneration),
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsNotFound reports whether err is a repository not-found error.
func IsNotFound(err error) bool {
	return infra.IsKind(err, infra.KindNotFound)
}

// IsDuplicate reports whether err is a repository duplicate-key error.
func IsDuplicate(err error) bool {
	return infra.IsKind(err, infra.KindDuplicateKey)
}
