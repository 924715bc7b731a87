package service

import (
	"math"
	"strconv"
	"strings"
)

type Price struct {
	value float64
}

// ParsePrice accepts the raw form value; the whole string must be a finite number.
func ParsePrice(s string) (Price, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Price{}, ErrInvalidPrice
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return Price{}, ErrInvalidPrice
	}
	return NewPrice(v)
}

func NewPrice(v float64) (Price, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Price{}, ErrInvalidPrice
	}
	if v < 0 {
		return Price{}, ErrNegativePrice
	}
	return Price{value: v}, nil
}

func (p Price) Value() float64 { return p.value }

type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Name{}, ErrNameRequired
	}
	return Name{value: t}, nil
}

func (n Name) String() string { return n.value }

type Description struct {
	value string
}

func NewDescription(s string) (Description, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Description{}, ErrDescriptionRequired
	}
	return Description{value: t}, nil
}

func (d Description) String() string { return d.value }
