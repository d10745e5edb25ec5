package core

// IDGen hands out sequential entity ids. Each encounter owns its own
// generator so ids restart from 1 after a reset.
type IDGen struct {
	next int
}

// Next returns the next unused id
func (g *IDGen) Next() int {
	g.next++
	return g.next
}

// Reset starts the sequence over
func (g *IDGen) Reset() { g.next = 0 }
