// Package conv holds allocation-light number formatting that avoids fmt and
// strconv on MCU builds.
package conv

// AppendUint appends the base-10 representation of n to dst.
func AppendUint(dst []byte, n uint64) []byte {
	var buf [20]byte
	i := len(buf)
	if n == 0 {
		i--
		buf[i] = '0'
	}
	for n > 0 {
		i--
		buf[i] = byte('0' + (n % 10))
		n /= 10
	}
	return append(dst, buf[i:]...)
}

// AppendInt appends the base-10 representation of n to dst.
func AppendInt(dst []byte, n int64) []byte {
	if n < 0 {
		dst = append(dst, '-')
		return AppendUint(dst, uint64(-n))
	}
	return AppendUint(dst, uint64(n))
}

// AppendDeci appends a tenths value with exactly one decimal, e.g. 231 ->
// "23.1", -5 -> "-0.5".
func AppendDeci(dst []byte, deci int64) []byte {
	var u uint64
	if deci < 0 {
		dst = append(dst, '-')
		u = uint64(-deci)
	} else {
		u = uint64(deci)
	}
	dst = AppendUint(dst, u/10)
	dst = append(dst, '.')
	return append(dst, byte('0'+u%10))
}

func Itoa(n int) string { return string(AppendInt(nil, int64(n))) }

func FormatDeci(deci int64) string { return string(AppendDeci(nil, deci)) }

// Hex2 formats a byte as 0xNN.
func Hex2(b uint8) string {
	const digits = "0123456789abcdef"
	return string([]byte{'0', 'x', digits[b>>4], digits[b&0x0f]})
}
