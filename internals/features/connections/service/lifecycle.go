package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// ErrAlreadyInactive and ErrPendingBills describe why a deactivation was
// refused.
type ErrAlreadyInactive struct{}

func (ErrAlreadyInactive) Error() string { return "connection is already inactive" }

type ErrPendingBills struct {
	Count int64
}

func (e ErrPendingBills) Error() string {
	return fmt.Sprintf("connection has %d unpaid bill(s), settle them before deactivating", e.Count)
}

// CanDeactivate decides the deactivation guard: the connection must be
// active and the customer must have no unpaid bills.
func CanDeactivate(isActive bool, pendingBills int64) error {
	if !isActive {
		return ErrAlreadyInactive{}
	}
	if pendingBills > 0 {
		return ErrPendingBills{Count: pendingBills}
	}
	return nil
}

// NewMeterNumber generates a meter number like "MET-48210739".
func NewMeterNumber() string {
	n, err := rand.Int(rand.Reader, big.NewInt(100000000))
	if err != nil {
		// crypto/rand failing means the platform RNG is broken
		panic(err)
	}
	return fmt.Sprintf("MET-%08d", n.Int64())
}
