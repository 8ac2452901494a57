package domain

import "time"

// Transaction is the receipt of a successful rental. It is read-only once
// built by NewTransaction.
type Transaction struct {
	id       string
	customer Customer
	car      Car
	dueDate  time.Time
	amount   string
}

func NewTransaction(id string, customer Customer, car Car, dueDate time.Time, amount string) *Transaction {
	return &Transaction{
		id:       id,
		customer: customer,
		car:      car,
		dueDate:  dueDate,
		amount:   amount,
	}
}

func (t *Transaction) ID() string { return t.id }
func (t *Transaction) Customer() Customer { return t.customer }
func (t *Transaction) Car() Car { return t.car }
func (t *Transaction) DueDate() time.Time { return t.dueDate }

// Amount is the formatted display string, not a number to compute with.
func (t *Transaction) Amount() string { return t.amount }
