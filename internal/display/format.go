package display

import "strconv"

// HexWord formats the low nibbles of value, most significant first.
func HexWord(value uint32, nibbles int) string {
	if nibbles < 1 {
		nibbles = 1
	}

	if nibbles > 8 {
		nibbles = 8
	}

	buf := make([]byte, nibbles)
	for i := nibbles - 1; i >= 0; i-- {
		buf[i] = hexDigits[value&0xF]
		value >>= 4
	}

	return string(buf)
}

// DecWord formats value right-aligned in field characters. A value wider
// than the field keeps its low digits.
func DecWord(value uint32, field int, mode DecMode) string {
	digits := strconv.FormatUint(uint64(value), 10)
	if field <= 0 {
		return digits
	}

	if len(digits) > field {
		return digits[len(digits)-field:]
	}

	pad := byte('0')
	if mode == DecLeadingSpaces {
		pad = ' '
	}

	buf := make([]byte, field)
	n := field - len(digits)

	for i := 0; i < n; i++ {
		buf[i] = pad
	}

	copy(buf[n:], digits)

	return string(buf)
}
