package huffman

// packBits splits the concatenation of rem and bits into complete 8-bit runs
// and converts each run into one byte, the first bit of a run becoming the
// most significant bit. It returns the packed bytes and the new remainder of
// fewer than 8 bits. All carry-over between calls is explicit in the
// remainder; packBits holds no state.
func packBits(rem, bits string) ([]byte, string) {
	s := rem + bits
	packed := make([]byte, len(s)/8)
	for i := range packed {
		var b byte
		for j := 0; j < 8; j++ {
			b <<= 1
			if s[8*i+j] == '1' {
				b |= 1
			}
		}
		packed[i] = b
	}
	return packed, s[8*len(packed):]
}

// padByte packs a final remainder of one to seven bits into its trailing
// byte, padded with binary zeros.
func padByte(rem string) byte {
	var b byte
	for i := 0; i < 8; i++ {
		b <<= 1
		if i < len(rem) && rem[i] == '1' {
			b |= 1
		}
	}
	return b
}
