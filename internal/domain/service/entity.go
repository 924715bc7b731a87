package service

import (
	"errors"

	"github.com/hashicorp/go-multierror"
)

var (
	ErrNameRequired        = errors.New("service name is required")
	ErrDescriptionRequired = errors.New("service description is required")
	ErrInvalidPrice        = errors.New("price must be a number")
	ErrNegativePrice       = errors.New("price must not be negative")
	ErrNoChanges           = errors.New("no fields to update")
)

type Service struct {
	id          string
	name        Name
	description Description
	price       Price
}

// NewService validates every field and reports all failures together.
func NewService(name, description, price string) (*Service, error) {
	var result *multierror.Error

	n, err := NewName(name)
	if err != nil {
		result = multierror.Append(result, err)
	}
	d, err := NewDescription(description)
	if err != nil {
		result = multierror.Append(result, err)
	}
	p, err := ParsePrice(price)
	if err != nil {
		result = multierror.Append(result, err)
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}

	return &Service{name: n, description: d, price: p}, nil
}

func Reconstruct(id, name, description string, price float64) *Service {
	return &Service{
		id:          id,
		name:        Name{value: name},
		description: Description{value: description},
		price:       Price{value: price},
	}
}

func (s *Service) ID() string               { return s.id }
func (s *Service) Name() Name               { return s.name }
func (s *Service) Description() Description { return s.description }
func (s *Service) Price() Price             { return s.price }

// Patch carries the raw form values of an update; nil fields are left untouched.
type Patch struct {
	Name        *string
	Description *string
	Price       *string
}

// Changes is a validated patch ready to be written.
type Changes struct {
	Name        *Name
	Description *Description
	Price       *Price
}

func (c Changes) Fields() map[string]any {
	fields := make(map[string]any, 3)
	if c.Name != nil {
		fields["name"] = c.Name.String()
	}
	if c.Description != nil {
		fields["description"] = c.Description.String()
	}
	if c.Price != nil {
		fields["price"] = c.Price.Value()
	}
	return fields
}

func (p Patch) Validate() (Changes, error) {
	if p.Name == nil && p.Description == nil && p.Price == nil {
		return Changes{}, ErrNoChanges
	}

	var (
		result  *multierror.Error
		changes Changes
	)
	if p.Name != nil {
		n, err := NewName(*p.Name)
		if err != nil {
			result = multierror.Append(result, err)
		} else {
			changes.Name = &n
		}
	}
	if p.Description != nil {
		d, err := NewDescription(*p.Description)
		if err != nil {
			result = multierror.Append(result, err)
		} else {
			changes.Description = &d
		}
	}
	if p.Price != nil {
		pr, err := ParsePrice(*p.Price)
		if err != nil {
			result = multierror.Append(result, err)
		} else {
			changes.Price = &pr
		}
	}
	if err := result.ErrorOrNil(); err != nil {
		return Changes{}, err
	}
	return changes, nil
}

// FieldErrors flattens a validation error into its individual causes.
func FieldErrors(err error) []error {
	var merr *multierror.Error
	if errors.As(err, &merr) {
		return merr.WrappedErrors()
	}
	if err == nil {
		return nil
	}
	return []error{err}
}

func (s *Service) Fields() map[string]any {
	return map[string]any{
		"name":        s.name.String(),
		"description": s.description.String(),
		"price":       s.price.Value(),
	}
}
