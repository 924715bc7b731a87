//go:build unit || e2e

package builder

import (
	"gin-booking/internal/domain/service"
	reqdto "gin-booking/internal/handler/dto/request"
)

type ServiceBuilder struct {
	Name        string
	Description string
	Price       string
}

func NewServiceBuilder() *ServiceBuilder {
	return &ServiceBuilder{
		Name:        "Haircut",
		Description: "Wash, cut and style",
		Price:       "15.5",
	}
}

func (b *ServiceBuilder) WithName(name string) *ServiceBuilder {
	b.Name = name
	return b
}

func (b *ServiceBuilder) WithPrice(price string) *ServiceBuilder {
	b.Price = price
	return b
}

func (b *ServiceBuilder) WithDescription(description string) *ServiceBuilder {
	b.Description = description
	return b
}

func (b *ServiceBuilder) BuildDomain() (*service.Service, error) {
	return service.NewService(b.Name, b.Description, b.Price)
}

func (b *ServiceBuilder) BuildDTO() reqdto.CreateServiceRequest {
	return reqdto.CreateServiceRequest{
		Name:        b.Name,
		Description: b.Description,
		Price:       reqdto.PriceInput(b.Price),
	}
}
