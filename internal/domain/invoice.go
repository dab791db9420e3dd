package domain

import "strings"

// Performance is a single staging of a play billed to a customer
type Performance struct {
	PlayID   string `json:"playID" yaml:"playID"`
	Audience int    `json:"audience" yaml:"audience"`
}

// Invoice lists the performances billed to one customer, in statement order
type Invoice struct {
	Customer     string        `json:"customer" yaml:"customer"`
	Performances []Performance `json:"performances" yaml:"performances"`
}

// NewInvoice creates an invoice for the given customer
func NewInvoice(customer string, performances ...Performance) Invoice {
	perfs := make([]Performance, len(performances))
	copy(perfs, performances)
	return Invoice{
		Customer:     strings.TrimSpace(customer),
		Performances: perfs,
	}
}

// Clone returns a copy that shares no memory with the receiver
func (i Invoice) Clone() Invoice {
	return NewInvoice(i.Customer, i.Performances...)
}

// TotalAudience sums the audience over every performance
func (i Invoice) TotalAudience() int {
	total := 0
	for _, p := range i.Performances {
		total += p.Audience
	}
	return total
}
