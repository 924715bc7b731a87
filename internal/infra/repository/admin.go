package repository

import (
	"context"
	"errors"
	"log/slog"

	"gin-booking/internal/domain/admin"
	"gin-booking/internal/infra"
	"gin-booking/internal/infra/docstore"
	"gin-booking/internal/infra/repository/converter"
)

type AdminRepository struct {
	store  docstore.Store
	logger *slog.Logger
}

func NewAdminRepository(store docstore.Store, logger *slog.Logger) *AdminRepository {
	return &AdminRepository{store: store, logger: logger}
}

func (r *AdminRepository) Exists(ctx context.Context, uid string) (bool, error) {
	_, err := r.store.Get(ctx, converter.CollectionAdmins, uid)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, docstore.ErrNotFound) {
		return false, nil
	}
	return false, infra.FromStoreErr(r.logger, "failed to read admin record", err)
}

func (r *AdminRepository) Get(ctx context.Context, uid string) (*admin.Profile, error) {
	doc, err := r.store.Get(ctx, converter.CollectionAdmins, uid)
	if err != nil {
		return nil, infra.FromStoreErr(r.logger, "admin not found", err)
	}
	return converter.AdminFromDocument(doc), nil
}

func (r *AdminRepository) SetDisplayName(ctx context.Context, uid, displayName string) error {
	err := r.store.Set(ctx, converter.CollectionAdmins, uid,
		map[string]any{converter.FieldDisplayName: displayName}, docstore.Merge)
	return infra.FromStoreErr(r.logger, "failed to update admin profile", err)
}
