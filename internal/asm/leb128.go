package asm

// ULEB128Size returns the encoded byte length of v in unsigned LEB128.
// The assembler performs the actual encoding; block-structured DWARF
// payloads still need the length up front.
func ULEB128Size(v uint64) int {
	n := 1
	for v >= 0x80 {
		v >>= 7
		n++
	}
	return n
}

// SLEB128Size returns the encoded byte length of v in signed LEB128.
func SLEB128Size(v int64) int {
	n := 0
	for {
		c := byte(v & 0x7f)
		sign := (c & 0x40) != 0
		v >>= 7
		n++
		if (v == 0 && !sign) || (v == -1 && sign) {
			return n
		}
	}
}
