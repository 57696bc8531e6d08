package shaderuid

import (
	"log/slog"
	"os"
	"sync"
)

// CheckerOption configures a Checker.
type CheckerOption func(*checkerOptions)

type checkerOptions struct {
	dumpDir string
	logger  *slog.Logger
}

// WithDumpDir sets the directory mismatch files are written to. The
// default is os.TempDir().
func WithDumpDir(dir string) CheckerOption {
	return func(o *checkerOptions) {
		o.dumpDir = dir
	}
}

// WithLogger sets the logger mismatches are reported to. The default is the
// package logger at the time of the report.
func WithLogger(l *slog.Logger) CheckerOption {
	return func(o *checkerOptions) {
		o.logger = l
	}
}

// Mismatch describes a uid that was recorded twice with different text.
type Mismatch struct {
	ShaderType string
	// Old is the text recorded first. It stays the canonical text.
	Old string
	// New is the text that disagreed.
	New string
	// Path is the diagnostic file, empty if it could not be written.
	Path string
	// Err is the error writing the diagnostic file, if any.
	Err error
}

// Checker verifies that a shader generator produces the same text whenever
// it is given the same uid. It is safe for concurrent use; the first text
// recorded for a uid wins.
type Checker[T any] struct {
	shaderType string
	dumpPrefix string
	opts       checkerOptions

	mu         sync.Mutex
	uids       []*UID[T]
	code       map[string]string
	mismatches int
}

// NewChecker creates a checker for one kind of shader. shaderType names the
// kind in log records; dumpPrefix starts the name of every diagnostic file.
func NewChecker[T any](shaderType, dumpPrefix string, opts ...CheckerOption) *Checker[T] {
	o := checkerOptions{dumpDir: os.TempDir()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Checker[T]{
		shaderType: shaderType,
		dumpPrefix: dumpPrefix,
		opts:       o,
		code:       make(map[string]string),
	}
}

// Record stores code for uid if the uid is new. If the uid was recorded
// before with different code, Record writes a diagnostic file, logs an
// error and returns the mismatch. It returns nil otherwise. The file is
// written without holding the checker's lock.
func (c *Checker[T]) Record(uid *UID[T], code string) *Mismatch {
	key := uid.Key()

	c.mu.Lock()
	old, ok := c.code[key]
	if !ok {
		c.uids = append(c.uids, uid)
		c.code[key] = code
	}
	mismatch := ok && old != code
	if mismatch {
		c.mismatches++
	}
	c.mu.Unlock()

	if !mismatch {
		return nil
	}

	m := &Mismatch{
		ShaderType: c.shaderType,
		Old:        old,
		New:        code,
	}
	m.Path, m.Err = writeMismatch(c.opts.dumpDir, c.dumpPrefix, old, code, uid.Words())

	log := c.opts.logger
	if log == nil {
		log = Logger()
	}
	if m.Err != nil {
		log.Error("shaderuid: uid mismatch",
			"shader", c.shaderType, "hash", uid.Hash(), "dump_error", m.Err)
	} else {
		log.Error("shaderuid: uid mismatch",
			"shader", c.shaderType, "hash", uid.Hash(), "dump", m.Path)
	}
	return m
}

// Invalidate forgets every recorded uid.
func (c *Checker[T]) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.uids = nil
	c.code = make(map[string]string)
}

// Len returns the number of recorded uids.
func (c *Checker[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.uids)
}

// UIDs returns the recorded uids in insertion order.
func (c *Checker[T]) UIDs() []*UID[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*UID[T](nil), c.uids...)
}

// Code returns the canonical text recorded for uid.
func (c *Checker[T]) Code(uid *UID[T]) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	code, ok := c.code[uid.Key()]
	return code, ok
}

// Mismatches returns the number of mismatches reported since creation.
// Invalidate does not reset it.
func (c *Checker[T]) Mismatches() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mismatches
}
