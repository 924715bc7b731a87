package request

import (
	"bytes"
	"encoding/json"
	"errors"

	"gin-booking/internal/domain/service"
	"gin-booking/internal/usecase/commands"
)

var errPriceFormat = errors.New("price must be a JSON number or string")

// PriceInput accepts 29.99 as well as "29.99"; the text is parsed by the domain.
type PriceInput string

func (p *PriceInput) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*p = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*p = PriceInput(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return errPriceFormat
	}
	*p = PriceInput(n.String())
	return nil
}

type CreateServiceRequest struct {
	Name        string     `json:"name" binding:"max=200"`
	Description string     `json:"description" binding:"max=2000"`
	Price       PriceInput `json:"price"`
}

func (r *CreateServiceRequest) ToCommand() commands.CreateServiceRequest {
	return commands.CreateServiceRequest{
		Name:        r.Name,
		Description: r.Description,
		Price:       string(r.Price),
	}
}

// UpdateServiceRequest writes only the fields present in the body.
type UpdateServiceRequest struct {
	Name        *string     `json:"name" binding:"omitempty,max=200"`
	Description *string     `json:"description" binding:"omitempty,max=2000"`
	Price       *PriceInput `json:"price"`
}

func (r *UpdateServiceRequest) ToPatch() service.Patch {
	p := service.Patch{Name: r.Name, Description: r.Description}
	if r.Price != nil {
		s := string(*r.Price)
		p.Price = &s
	}
	return p
}
