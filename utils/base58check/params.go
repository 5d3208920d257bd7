package base58check

const Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"
const Radix = 58
const ChecksumLen = 4

// alphabetIndex maps a byte to its digit value, -1 outside the alphabet.
var alphabetIndex = func() [256]int {
	var t [256]int
	for i := range t {
		t[i] = -1
	}
	for i := 0; i < len(Alphabet); i++ {
		t[Alphabet[i]] = i
	}
	return t
}()

type ChecksumType [ChecksumLen]byte
