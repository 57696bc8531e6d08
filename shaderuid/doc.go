// Package shaderuid provides shader identities and a consistency checker for
// shader caches.
//
// A [UID] wraps the fixed-size parameter block a generator derives its output
// from. Equality, ordering and hashing are defined over a byte range of the
// block's little-endian encoding, so scratch fields appended after the
// meaningful parameters do not split the cache.
//
// A [Checker] remembers the text generated for every uid it has seen. When a
// uid comes back with different text the generator is not a pure function of
// its uid: the checker writes a diagnostic file with both texts and the uid
// payload and logs an error, but keeps going.
//
//	type psUID struct {
//	    Format  uint32
//	    Flags   uint32
//	    Scratch uint32
//	}
//
//	func (psUID) IdentityRange() (int, int) { return 0, 8 }
//
//	checker := shaderuid.NewChecker[psUID]("ps", "ps_", shaderuid.WithDumpDir(dir))
//	uid := shaderuid.MustNew(psUID{Format: 4})
//	checker.Record(uid, source)
package shaderuid
