package entities

// Contract is an external integration authorized to drive batch updates.
type Contract struct {
	ID         string
	Name       string
	Authorized bool
}
