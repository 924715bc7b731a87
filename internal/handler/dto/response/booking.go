package response

import (
	"gin-booking/internal/pkg/ptr"
	"gin-booking/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type ServiceResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// TransactionResponse carries created_at as unix seconds; nil while the
// server timestamp is still pending.
type TransactionResponse struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	UserName    string  `json:"user_name"`
	UserEmail   string  `json:"user_email"`
	ServiceID   string  `json:"service_id"`
	ServiceName string  `json:"service_name"`
	Price       float64 `json:"price"`
	Status      string  `json:"status"`
	CreatedAt   *int64  `json:"created_at" copier:"-"`
}

type CustomerResponse struct {
	UID       string `json:"uid"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt *int64 `json:"created_at"`
}

type AdminProfileResponse struct {
	UID         string `json:"uid"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
}

type OrderResponse struct {
	TransactionID string `json:"transaction_id"`
	Status        string `json:"status"`
}

func FromServiceView(v *queries.ServiceView) *ServiceResponse {
	var res ServiceResponse
	_ = copier.Copy(&res, v)
	return &res
}

func FromServiceViews(vs []*queries.ServiceView) []*ServiceResponse {
	return mapAll(vs, FromServiceView)
}

func FromTransactionView(v *queries.TransactionView) *TransactionResponse {
	var res TransactionResponse
	_ = copier.Copy(&res, v)
	res.CreatedAt = ptr.UnixSeconds(v.CreatedAt)
	return &res
}

func FromTransactionViews(vs []*queries.TransactionView) []*TransactionResponse {
	return mapAll(vs, FromTransactionView)
}

func FromCustomerView(v *queries.CustomerView) *CustomerResponse {
	res := &CustomerResponse{UID: v.UID, Name: v.Name, Email: v.Email}
	res.CreatedAt = ptr.UnixSeconds(v.CreatedAt)
	return res
}

func FromCustomerViews(vs []*queries.CustomerView) []*CustomerResponse {
	return mapAll(vs, FromCustomerView)
}

func FromAdminProfileView(v *queries.AdminProfileView) *AdminProfileResponse {
	var res AdminProfileResponse
	_ = copier.Copy(&res, v)
	return &res
}

func mapAll[T, U any](items []T, fn func(T) U) []U {
	out := make([]U, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}
	return out
}
