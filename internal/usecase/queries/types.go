package queries

import (
	"time"

	"gin-booking/internal/domain/admin"
	"gin-booking/internal/domain/customer"
	"gin-booking/internal/domain/service"
	"gin-booking/internal/domain/transaction"
)

type ServiceView struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

type TransactionView struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	UserName    string     `json:"user_name"`
	UserEmail   string     `json:"user_email"`
	ServiceID   string     `json:"service_id"`
	ServiceName string     `json:"service_name"`
	Price       float64    `json:"price"`
	Status      string     `json:"status"`
	CreatedAt   *time.Time `json:"created_at"`
}

type CustomerView struct {
	UID       string     `json:"uid"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	CreatedAt *time.Time `json:"created_at"`
}

type AdminProfileView struct {
	UID         string `json:"uid"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
}

func toServiceView(s *service.Service) *ServiceView {
	return &ServiceView{
		ID:          s.ID(),
		Name:        s.Name().String(),
		Description: s.Description().String(),
		Price:       s.Price().Value(),
	}
}

func toTransactionView(t *transaction.Transaction) *TransactionView {
	return &TransactionView{
		ID:          t.ID(),
		UserID:      t.UserID(),
		UserName:    t.UserName(),
		UserEmail:   t.UserEmail(),
		ServiceID:   t.ServiceID(),
		ServiceName: t.ServiceName(),
		Price:       t.Price(),
		Status:      t.Status().String(),
		CreatedAt:   t.CreatedAt(),
	}
}

func toCustomerView(p *customer.Profile) *CustomerView {
	return &CustomerView{
		UID:       p.UID(),
		Name:      p.Name(),
		Email:     p.Email(),
		CreatedAt: p.CreatedAt(),
	}
}

func toAdminProfileView(p *admin.Profile, email string) *AdminProfileView {
	return &AdminProfileView{
		UID:         p.UID(),
		DisplayName: p.DisplayName(),
		Email:       email,
	}
}

func mapAll[T, U any](items []T, fn func(T) U) []U {
	out := make([]U, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}
	return out
}
