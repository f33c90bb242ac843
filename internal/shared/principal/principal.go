package principal

import "strings"

// ID identifies an authenticated caller. Callers arrive pre-authenticated,
// so the ledger treats the value as opaque and only compares for equality.
type ID string

// Zero is the null principal. Uninitialized owners and rejected balance
// queries use it the way the host chain used the zero address.
const Zero ID = ""

func Parse(raw string) ID {
	return ID(strings.TrimSpace(raw))
}

func (id ID) IsZero() bool {
	return id == Zero
}

func (id ID) String() string {
	return string(id)
}
