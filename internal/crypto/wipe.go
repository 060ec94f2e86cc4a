package crypto

// Wipe overwrites b with zeros. It is used on derived keys once a note
// operation finishes.
func Wipe(b []byte) {
	clear(b)
}
