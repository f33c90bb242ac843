package entities

// Standard is a named, signed reputation delta. A positive RepAmount issues
// reputation, a negative one burns it. Destroyed standards always read back
// with RepAmount zero.
type Standard struct {
	Name      string
	RepAmount int64
	Destroyed bool
}
