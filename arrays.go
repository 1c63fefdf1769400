// arrays.go - element generators and byte helpers for test data and
// diagnostics.
package xgxmeta

import (
	"math/rand/v2"

	"fortio.org/safecast"
)

// MaxOf returns the largest value of T.
func MaxOf[T Element]() T {
	var zero T
	if ^zero < zero { // signed
		return ^(T(1) << (8*SizeOf[T]() - 1))
	}
	return ^zero
}

// Range returns n elements where element i is i mod MaxOf[T]().
func Range[T Element](n int) []T {
	out := make([]T, n)
	m := uint64(MaxOf[T]())
	for i := range out {
		out[i] = safecast.MustConv[T](uint64(i) % m)
	}
	return out
}

// RandomArray returns n pseudo-random elements in [0, MaxOf[T]()). The
// sequence depends only on seed.
func RandomArray[T Element](n int, seed uint64) []T {
	out := make([]T, n)
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	m := uint64(MaxOf[T]())
	for i := range out {
		out[i] = safecast.MustConv[T](r.Uint64N(m))
	}
	return out
}

// AppendBytes appends the little-endian bytes of v to dst.
func AppendBytes[T Element](dst []byte, v T) []byte {
	u := uint64(v)
	for i := range SizeOf[T]() {
		dst = append(dst, byte(u>>(8*i)))
	}
	return dst
}

// ToByteArray returns the little-endian bytes of elems in element order.
func ToByteArray[T Element](elems []T) []byte {
	out := make([]byte, 0, len(elems)*SizeOf[T]())
	for _, v := range elems {
		out = AppendBytes(out, v)
	}
	return out
}
