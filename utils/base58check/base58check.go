// Package base58check implements Base58Check: a version byte and a payload
// encoded in base58 with a four byte double SHA-256 checksum appended.
//
// Decode is deliberately lenient. It recovers the payload bytes of any
// well-formed base58 string without looking at the version byte or the
// checksum, which lets callers repair the checksum of hand-written strings.
// DecodeCheck is the strict counterpart.
package base58check

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/minio/sha256-simd"
	"github.com/mr-tron/base58"
)

var (
	ErrInvalidCharacter = errors.New("invalid base58 character")
	ErrTooShort         = errors.New("base58check payload too short")
	ErrVersionMismatch  = errors.New("base58check version mismatch")
	ErrChecksumMismatch = errors.New("base58check checksum mismatch")
)

// CharError reports the first character of an input outside Alphabet.
type CharError struct {
	Char byte
	Pos  int
}

func (e *CharError) Error() string {
	return fmt.Sprintf("%v: %q at position %d", ErrInvalidCharacter, e.Char, e.Pos)
}

func (e *CharError) Unwrap() error {
	return ErrInvalidCharacter
}

func Checksum(b []byte) ChecksumType {
	h := sha256.Sum256(b)
	h = sha256.Sum256(h[:])
	var res ChecksumType
	copy(res[:], h[:ChecksumLen])
	return res
}

// IsAlphabet reports whether every character of s is a base58 digit.
func IsAlphabet(s string) bool {
	return checkAlphabet(s) == nil
}

func checkAlphabet(s string) error {
	for i := 0; i < len(s); i++ {
		if alphabetIndex[s[i]] < 0 {
			return &CharError{Char: s[i], Pos: i}
		}
	}
	return nil
}

// Encode returns the base58 form of version ++ data ++ checksum. Every
// leading zero byte of that payload becomes a leading '1'.
func Encode(data []byte, version byte) string {
	payload := make([]byte, 0, 1+len(data)+ChecksumLen)
	payload = append(payload, version)
	payload = append(payload, data...)
	ck := Checksum(payload)
	payload = append(payload, ck[:]...)

	zeros := 0
	for zeros < len(payload) && payload[zeros] == 0 {
		zeros++
	}
	digits := bytesToDigits(payload)
	res := make([]byte, zeros+len(digits))
	for i := 0; i < zeros; i++ {
		res[i] = Alphabet[0]
	}
	for i, d := range digits {
		res[zeros+i] = Alphabet[d]
	}
	return string(res)
}

// Decode returns the data between the version byte and the checksum of s.
// Neither the version byte nor the checksum is verified, so version only
// documents which network the caller expects.
//
// Leading '1' characters are restored as zero bytes, except that the final
// character of s is never counted as padding: "1" decodes to an empty
// payload rather than a single zero byte.
func Decode(s string, version byte) ([]byte, error) {
	digits := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		d := alphabetIndex[s[i]]
		if d < 0 {
			return nil, &CharError{Char: s[i], Pos: i}
		}
		digits[i] = byte(d)
	}
	res := digitsToBytes(digits)

	pad := 0
	for pad < len(s)-1 && s[pad] == Alphabet[0] {
		pad++
	}
	// One zero byte per pad unit, the width of the version field.
	k := make([]byte, pad, pad+len(res))
	k = append(k, res...)

	if len(k) <= 1+ChecksumLen {
		return []byte{}, nil
	}
	return k[1 : len(k)-ChecksumLen], nil
}

// DecodeCheck decodes s conventionally (every leading '1' is a zero byte)
// and verifies both the version byte and the checksum.
func DecodeCheck(s string, version byte) ([]byte, error) {
	if err := checkAlphabet(s); err != nil {
		return nil, err
	}
	buf, err := base58.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("base58 decode: %w", err)
	}
	if len(buf) < 1+ChecksumLen {
		return nil, ErrTooShort
	}
	if buf[0] != version {
		return nil, fmt.Errorf("%w: got 0x%02x, want 0x%02x", ErrVersionMismatch, buf[0], version)
	}
	body := buf[:len(buf)-ChecksumLen]
	ck := Checksum(body)
	if !bytes.Equal(ck[:], buf[len(buf)-ChecksumLen:]) {
		return nil, ErrChecksumMismatch
	}
	return append([]byte{}, body[1:]...), nil
}
