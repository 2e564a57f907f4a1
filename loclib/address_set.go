package loclib

import "net"

// AddressSet is a deduplicating set of IP addresses. Identity of the
// address is its string representation as it was found in the log. It
// iterates in order of first appearance.
type AddressSet struct {
	index map[string]net.IP
	order []string
}

// Add adds an address to the set. It returns false if it is already
// known.
func (a *AddressSet) Add(token string, ip net.IP) bool {
	if _, ok := a.index[token]; ok {
		return false
	}

	a.index[token] = ip
	a.order = append(a.order, token)

	return true
}

func (a *AddressSet) Len() int {
	return len(a.order)
}

func (a *AddressSet) Contains(token string) bool {
	_, ok := a.index[token]

	return ok
}

// Each calls a callback for each address of the set. If callback
// returns an error, iteration stops and this error is returned.
func (a *AddressSet) Each(callback func(token string, ip net.IP) error) error {
	for _, v := range a.order {
		if err := callback(v, a.index[v]); err != nil {
			return err
		}
	}

	return nil
}

// Tokens returns a list of addresses in iteration order.
func (a *AddressSet) Tokens() []string {
	rv := make([]string, len(a.order))
	copy(rv, a.order)

	return rv
}

func NewAddressSet() *AddressSet {
	return &AddressSet{
		index: map[string]net.IP{},
	}
}
