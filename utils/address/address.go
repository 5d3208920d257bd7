// Package address builds unspendable addresses: Base58Check strings whose
// payload is spelled out by a human readable label instead of being hashed
// from a public key, so no private key is known for them.
package address

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/mcfx/unspendable/utils/base58check"
)

var ErrUnknownNetwork = errors.New("unknown network")

// SelfCheckError is the panic value raised when a generated address does
// not decode back to the payload it was built from.
type SelfCheckError struct {
	Network Network
	Address string
	Want    []byte
	Got     []byte
}

func (e *SelfCheckError) Error() string {
	return fmt.Sprintf("self check failed for %s address %s: decoded %x, want %x", e.Network, e.Address, e.Got, e.Want)
}

// Networks returns the supported networks in display order.
func Networks() []Network {
	res := make([]Network, len(networkParams))
	for i, p := range networkParams {
		res[i] = p.Name
	}
	return res
}

func Lookup(n Network) (Params, error) {
	for _, p := range networkParams {
		if p.Name == n {
			return p, nil
		}
	}
	return Params{}, fmt.Errorf("%w: %q", ErrUnknownNetwork, string(n))
}

func ParseNetwork(s string) (Network, error) {
	p, err := Lookup(Network(strings.ToLower(strings.TrimSpace(s))))
	if err != nil {
		return "", err
	}
	return p.Name, nil
}

func pad(name string, p Params) string {
	s := string(p.Prefix) + name
	if len(s) < PaddedLen {
		s += strings.Repeat(string(Filler), PaddedLen-len(s))
	}
	return s
}

// Pad returns the network prefix followed by name, right padded with 'X' to
// PaddedLen characters. Longer labels are returned unchanged.
func Pad(name string, n Network) (string, error) {
	p, err := Lookup(n)
	if err != nil {
		return "", err
	}
	return pad(name, p), nil
}

// Generate returns a checksum-valid address for n whose text is, as closely
// as the encoding allows, the network prefix followed by name.
//
// The label must only use base58 characters; otherwise the error wraps
// base58check.ErrInvalidCharacter.
func Generate(name string, n Network) (string, error) {
	p, err := Lookup(n)
	if err != nil {
		return "", err
	}
	// The padded label is not valid Base58Check, but Decode ignores the
	// checksum and Encode computes a fresh one over the same payload.
	data, err := base58check.Decode(pad(name, p), p.Version)
	if err != nil {
		return "", fmt.Errorf("label %q: %w", name, err)
	}
	addr := base58check.Encode(data, p.Version)

	got, err := base58check.Decode(addr, p.Version)
	if err != nil || !bytes.Equal(got, data) {
		panic(&SelfCheckError{Network: n, Address: addr, Want: data, Got: got})
	}
	return addr, nil
}

// Verify checks that addr is a well-formed Base58Check address for n.
func Verify(addr string, n Network) error {
	p, err := Lookup(n)
	if err != nil {
		return err
	}
	_, err = base58check.DecodeCheck(addr, p.Version)
	return err
}
