package shaderuid

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/adler32"
	"sync/atomic"
)

var (
	// ErrNotFixedSize is returned when a payload has no fixed-size binary
	// encoding (it contains slices, strings, maps or pointers).
	ErrNotFixedSize = errors.New("shaderuid: payload is not fixed-size plain data")

	// ErrRange is returned when an identity range does not fit the payload.
	ErrRange = errors.New("shaderuid: identity range out of bounds")
)

// Ranger is implemented by payloads whose identity is a sub-range of their
// encoding. The range is in bytes of the little-endian encoding.
type Ranger interface {
	IdentityRange() (offset, length int)
}

// UID is the identity of one generated shader. It is immutable after New
// and safe for concurrent use.
type UID[T any] struct {
	data   T
	enc    []byte
	offset int
	length int

	// hash caches the Adler-32 of the identity range; 0 means not computed.
	hash atomic.Uint32
}

// New encodes data and returns its uid.
func New[T any](data T) (*UID[T], error) {
	size := binary.Size(data)
	if size < 0 {
		return nil, fmt.Errorf("%w: %T", ErrNotFixedSize, data)
	}
	enc, err := binary.Append(make([]byte, 0, size), binary.LittleEndian, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %T: %v", ErrNotFixedSize, data, err)
	}

	offset, length := 0, size
	if r, ok := any(data).(Ranger); ok {
		offset, length = r.IdentityRange()
		if offset < 0 || length < 0 || offset+length > size {
			return nil, fmt.Errorf("%w: [%d, %d) of %d bytes", ErrRange, offset, offset+length, size)
		}
	}

	return &UID[T]{
		data:   data,
		enc:    enc,
		offset: offset,
		length: length,
	}, nil
}

// MustNew is like New but panics on error. It is meant for payload types
// known to be fixed-size at compile time.
func MustNew[T any](data T) *UID[T] {
	u, err := New(data)
	if err != nil {
		panic(err)
	}
	return u
}

// Data returns the payload.
func (u *UID[T]) Data() T {
	return u.data
}

// Bytes returns the full encoding of the payload. The slice must not be
// modified.
func (u *UID[T]) Bytes() []byte {
	return u.enc
}

// Identity returns the bytes equality and hashing are defined over. The
// slice must not be modified.
func (u *UID[T]) Identity() []byte {
	return u.enc[u.offset : u.offset+u.length]
}

// Size returns the length of the full encoding in bytes.
func (u *UID[T]) Size() int {
	return len(u.enc)
}

// Equal reports whether u and other have the same identity bytes.
func (u *UID[T]) Equal(other *UID[T]) bool {
	return bytes.Equal(u.Identity(), other.Identity())
}

// Compare orders uids by their identity bytes. It returns -1, 0 or +1.
func (u *UID[T]) Compare(other *UID[T]) int {
	return bytes.Compare(u.Identity(), other.Identity())
}

// Hash returns the Adler-32 checksum of the identity bytes.
//
// The value is computed on first use. A checksum that happens to be 0 is
// recomputed on every call, which is correct and only costs time.
func (u *UID[T]) Hash() uint32 {
	if h := u.hash.Load(); h != 0 {
		return h
	}
	h := adler32.Checksum(u.Identity())
	u.hash.Store(h)
	return h
}

// Key returns the identity bytes as a string, for use as a map key.
func (u *UID[T]) Key() string {
	return string(u.Identity())
}

// Words returns the full encoding as little-endian 32-bit words, the last
// one zero padded.
func (u *UID[T]) Words() []uint32 {
	words := make([]uint32, (len(u.enc)+3)/4)
	var buf [4]byte
	for i := range words {
		buf = [4]byte{}
		copy(buf[:], u.enc[i*4:])
		words[i] = binary.LittleEndian.Uint32(buf[:])
	}
	return words
}
