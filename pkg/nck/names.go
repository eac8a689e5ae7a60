package nck

// PortName converts a zero-based column index to a synthetic port
// name: A..Z, then AA, AB, and so on. This is integer conversion to
// base 26 with no zero digit, so it extends to any index.
func PortName(i int) string {
	name := ""
	for {
		name = string(rune('A'+i%26)) + name
		i = i/26 - 1
		if i < 0 {
			return name
		}
	}
}
