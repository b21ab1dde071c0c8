package hstring

// MurmurHash64B is Austin Appleby's 32-bit-pair variant of MurmurHash2,
// used throughout harry for hash1/hash2/hash_sub. It is deliberately kept
// distinct from MurmurHash3 (spaolacci/murmur3 and friends implement the
// latter) since the two produce different digests and the value cache's
// keys depend on the exact bit pattern.
const (
	murmurM = uint32(0x5bd1e995)
	murmurR = 24
)

// murmurHash64B hashes data with the given seed, mixing two independent
// 32-bit MurmurHash2 lanes the way the original C implementation does.
func murmurHash64B(data []byte, seed uint32) uint64 {
	n := len(data)

	h1 := seed ^ uint32(n)
	h2 := uint32(0)

	i := 0
	for ; i+8 <= n; i += 8 {
		k1 := le32(data[i:])
		k1 *= murmurM
		k1 ^= k1 >> murmurR
		k1 *= murmurM

		h1 *= murmurM
		h1 ^= k1

		k2 := le32(data[i+4:])
		k2 *= murmurM
		k2 ^= k2 >> murmurR
		k2 *= murmurM

		h2 *= murmurM
		h2 ^= k2
	}

	if n-i >= 4 {
		k1 := le32(data[i:])
		k1 *= murmurM
		k1 ^= k1 >> murmurR
		k1 *= murmurM
		h1 *= murmurM
		h1 ^= k1
		i += 4
	}

	switch n - i {
	case 3:
		h2 ^= uint32(data[i+2]) << 16
		fallthrough
	case 2:
		h2 ^= uint32(data[i+1]) << 8
		fallthrough
	case 1:
		h2 ^= uint32(data[i])
		h2 *= murmurM
	}

	h1 ^= h2 >> 18
	h1 *= murmurM

	h2 ^= h1 >> 22
	h2 *= murmurM

	h1 ^= h2 >> 17
	h1 *= murmurM

	h2 ^= h1 >> 19
	h2 *= murmurM

	return uint64(h1)<<32 | uint64(h2)
}

func le32(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

// hashSeed is the fixed seed harry uses for every MurmurHash64B call.
const hashSeed = 0xc0ffee

// natural returns the byte slice over which MurmurHash64B runs for the
// string's granularity: len/8 bytes for Bit, len bytes for Byte, len*8
// bytes for Token (the symbols reinterpreted as little-endian uint64s).
func (s *S) natural() []byte {
	switch s.Granularity {
	case Bit:
		return s.Bytes[:(s.Len+7)/8]
	case Byte:
		return s.Bytes[:s.Len]
	case Token:
		buf := make([]byte, s.Len*8)
		for i, sym := range s.Syms {
			off := i * 8
			buf[off] = byte(sym)
			buf[off+1] = byte(sym >> 8)
			buf[off+2] = byte(sym >> 16)
			buf[off+3] = byte(sym >> 24)
			buf[off+4] = byte(sym >> 32)
			buf[off+5] = byte(sym >> 40)
			buf[off+6] = byte(sym >> 48)
			buf[off+7] = byte(sym >> 56)
		}
		return buf
	default:
		panic("hstring: unknown granularity")
	}
}

// Hash1 computes MurmurHash64B over the string's natural payload.
func (s *S) Hash1() uint64 {
	return murmurHash64B(s.natural(), hashSeed)
}

// Natural exposes the byte encoding MurmurHash64B runs over, for
// measures (like dist_compression) that need the exact same width rule
// applied to a general-purpose byte stream rather than a hash.
func Natural(s *S) []byte {
	return s.natural()
}

// HashSub hashes the substring [i, i+l) of a Byte or Token string.
// Undefined for Bit granularity, matching the original.
func (s *S) HashSub(i, l int) uint64 {
	switch s.Granularity {
	case Byte:
		return murmurHash64B(s.Bytes[i:i+l], hashSeed)
	case Token:
		buf := (&S{Granularity: Token, Syms: s.Syms[i : i+l], Len: l}).natural()
		return murmurHash64B(buf, hashSeed)
	default:
		panic("hstring: HashSub undefined for this granularity")
	}
}

// swap32 exchanges the upper and lower 32-bit halves of v.
func swap32(v uint64) uint64 {
	return v<<32 | v>>32
}

// Hash2 is a symmetric pair hash: Hash2(x, y) == Hash2(y, x). The two
// single-string hashes are ordered before the smaller one has its halves
// swapped, so the argument order does not matter.
func Hash2(x, y *S) uint64 {
	a, b := x.Hash1(), y.Hash1()
	if a > b {
		a, b = b, a
	}
	return swap32(a) ^ b
}
