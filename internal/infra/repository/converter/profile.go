package converter

import (
	"gin-booking/internal/domain/admin"
	"gin-booking/internal/domain/customer"
	"gin-booking/internal/infra/docstore"
)

func CustomerFromDocument(doc docstore.Document) (*customer.Profile, error) {
	return customer.Reconstruct(
		doc.ID,
		doc.Text(FieldName),
		doc.Text(FieldEmail),
		doc.Time(FieldCreatedAt),
	), nil
}

func AdminFromDocument(doc docstore.Document) *admin.Profile {
	return admin.Reconstruct(doc.ID, doc.Text(FieldDisplayName))
}
