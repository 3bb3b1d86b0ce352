package utils

// WipeBytes zeroes b in place so secrets do not linger in memory longer
// than needed. Safe to call with nil.
func WipeBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
