package srtp

// zeroize overwrites b with zero bytes in place. The compiler recognizes
// this loop shape and lowers it to a single memclr, so it's no slower
// than a library call — see https://github.com/golang/go/issues/5373.
func zeroize(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
