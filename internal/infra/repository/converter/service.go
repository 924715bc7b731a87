package converter

import (
	"gin-booking/internal/domain/service"
	"gin-booking/internal/infra/docstore"
)

func ServiceFromDocument(doc docstore.Document) (*service.Service, error) {
	return service.Reconstruct(
		doc.ID,
		doc.Text(FieldName),
		doc.Text("description"),
		doc.Float("price"),
	), nil
}
