package base58check

// Arithmetic on big-endian unsigned integers stored in byte buffers.

// divmod58 divides num in place by 58 and returns the remainder.
func divmod58(num []byte) byte {
	var rem int
	for i, x := range num {
		t := rem<<8 | int(x)
		num[i] = byte(t / Radix)
		rem = t % Radix
	}
	return byte(rem)
}

// mulAdd58 computes num*58 + digit, growing the buffer on carry.
func mulAdd58(num []byte, digit int) []byte {
	carry := digit
	for i := len(num) - 1; i >= 0; i-- {
		t := int(num[i])*Radix + carry
		num[i] = byte(t)
		carry = t >> 8
	}
	for carry > 0 {
		num = append([]byte{byte(carry)}, num...)
		carry >>= 8
	}
	return num
}

func trimLeadingZeros(num []byte) []byte {
	i := 0
	for i < len(num) && num[i] == 0 {
		i++
	}
	return num[i:]
}

// bytesToDigits renders a big-endian integer as base58 digit values, most
// significant first. Zero renders as no digits.
func bytesToDigits(b []byte) []byte {
	num := trimLeadingZeros(append([]byte(nil), b...))
	res := make([]byte, 0, len(num)*138/100+1)
	for len(num) > 0 {
		res = append(res, divmod58(num))
		num = trimLeadingZeros(num)
	}
	for i, j := 0, len(res)-1; i < j; i, j = i+1, j-1 {
		res[i], res[j] = res[j], res[i]
	}
	return res
}

// digitsToBytes is the inverse of bytesToDigits: the minimal big-endian
// encoding of the value, empty for zero.
func digitsToBytes(digits []byte) []byte {
	num := []byte{}
	for _, d := range digits {
		num = mulAdd58(num, int(d))
	}
	return trimLeadingZeros(num)
}
