package utils

// BytesToUint64LE はリトルエンディアンのバイト列を uint64 に変換します。
// 8バイトに満たない分はゼロ埋めし、8バイトを超える分は無視します。
func BytesToUint64LE(b []byte) uint64 {
	var n uint64
	size := len(b)
	if size > 8 {
		size = 8
	}
	for i := 0; i < size; i++ {
		n |= uint64(b[i]) << (uint(i) * 8)
	}
	return n
}

// BytesToUint32LE はリトルエンディアンのバイト列を uint32 に変換します。
// 4バイトに満たない分はゼロ埋めし、4バイトを超える分は無視します。
func BytesToUint32LE(b []byte) uint32 {
	var n uint32
	size := len(b)
	if size > 4 {
		size = 4
	}
	for i := 0; i < size; i++ {
		n |= uint32(b[i]) << (uint(i) * 8)
	}
	return n
}

// Uint32ToBytesLE は uint32 を指定バイト数のリトルエンディアン表現にします。
func Uint32ToBytesLE(n uint32, size int) []byte {
	if size < 1 || size > 4 {
		panic("size must be 1, 2, 3, or 4")
	}
	b := make([]byte, size)
	for i := 0; i < size; i++ {
		b[i] = byte(n >> (uint(i) * 8))
	}
	return b
}
