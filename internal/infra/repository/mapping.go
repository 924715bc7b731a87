package repository

import "gin-booking/internal/infra/docstore"

func mapDocuments[T any](docs []docstore.Document, fn func(docstore.Document) (T, error)) ([]T, error) {
	out := make([]T, 0, len(docs))
	for _, doc := range docs {
		item, err := fn(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}
