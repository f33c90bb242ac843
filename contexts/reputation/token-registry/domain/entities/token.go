package entities

// TokenState is the lifecycle state of a reputation token.
// The zero value means the name was never created; once created the state
// toggles between active and inactive and never returns to the zero value.
type TokenState string

const (
	StateNull     TokenState = ""
	StateActive   TokenState = "active"
	StateInactive TokenState = "inactive"
)

func ParseTokenState(raw string) (TokenState, bool) {
	switch raw {
	case string(StateActive):
		return StateActive, true
	case string(StateInactive):
		return StateInactive, true
	default:
		return StateNull, false
	}
}

func (s TokenState) Created() bool {
	return s == StateActive || s == StateInactive
}

// Token is a named, independently owned reputation scale.
// Oracle order is insertion order and survives removals of other entries.
type Token struct {
	Name    string
	CID     string
	State   TokenState
	Owner   string
	Oracles []string
}

func (t Token) IsOracle(address string) bool {
	for _, oracle := range t.Oracles {
		if oracle == address {
			return true
		}
	}
	return false
}

// GrantsIssuance reports whether the caller may issue or burn this token.
func (t Token) GrantsIssuance(caller string) bool {
	if caller == "" {
		return false
	}
	return caller == t.Owner || t.IsOracle(caller)
}

// CloneOracles returns a defensive copy of the oracle list.
func (t Token) CloneOracles() []string {
	out := make([]string, len(t.Oracles))
	copy(out, t.Oracles)
	return out
}
