package converter

import (
	"gin-booking/internal/domain/transaction"
	"gin-booking/internal/infra/docstore"
)

func TransactionToFields(t *transaction.Transaction) map[string]any {
	return map[string]any{
		FieldUserID:    t.UserID(),
		"userName":     t.UserName(),
		"userEmail":    t.UserEmail(),
		"serviceId":    t.ServiceID(),
		"serviceName":  t.ServiceName(),
		"price":        t.Price(),
		FieldStatus:    t.Status().String(),
		FieldCreatedAt: docstore.ServerTimestamp,
	}
}

// TransactionFromDocument keeps unknown status values as stored; they are shown, never written.
func TransactionFromDocument(doc docstore.Document) (*transaction.Transaction, error) {
	return transaction.Reconstruct(
		doc.ID,
		doc.Text(FieldUserID),
		doc.Text("userName"),
		doc.Text("userEmail"),
		doc.Text("serviceId"),
		doc.Text("serviceName"),
		doc.Float("price"),
		transaction.Status(doc.Text(FieldStatus)),
		doc.Time(FieldCreatedAt),
	), nil
}
