package util

// Ceil computes the ceiling of x/y for x, y being integers
func Ceil(x int, y int) int {
	if x == 0 {
		return 0
	}
	return 1 + ((Abs(x) - 1) / Abs(y))
}

func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// IsPow2 reports whether x is a positive power of two
func IsPow2(x int) bool {
	return x > 0 && x&(x-1) == 0
}

// HexDigits returns how many hex digits are needed to write bits bits
func HexDigits(bits int) int {
	return Ceil(bits, 4)
}
