package texconv

import (
	"fmt"
	"hash/fnv"
	"os"
	"path/filepath"
	"sync"

	"github.com/gogpu/texconv/format"
	"github.com/gogpu/texconv/internal/cache"
	"github.com/gogpu/texconv/shaderuid"
)

// EncodingUID is the identity of an encoding shader. Scratch is excluded
// from the identity; callers may use it to tag requests.
type EncodingUID struct {
	Format     uint32
	RGB5A3Mode uint32
	Scratch    uint32
}

// IdentityRange implements shaderuid.Ranger: Format and RGB5A3Mode.
func (EncodingUID) IdentityRange() (offset, length int) {
	return 0, 8
}

// CacheOption configures a ShaderCache.
type CacheOption func(*cacheOptions)

type cacheOptions struct {
	debug    bool
	debugDir string
	dumpDir  string
	limit    int
}

// WithShaderDebugging makes the cache regenerate every requested shader and
// check it against the text generated first for the same uid. Mismatch
// files are written to dir.
func WithShaderDebugging(dir string) CacheOption {
	return func(o *cacheOptions) {
		o.debug = true
		o.debugDir = dir
	}
}

// WithShaderDump saves every newly generated shader to dir as enc_NNNN.txt.
func WithShaderDump(dir string) CacheOption {
	return func(o *cacheOptions) {
		o.dumpDir = dir
	}
}

// WithCacheLimit bounds the number of cached shaders. The default, 0, keeps
// every shader.
func WithCacheLimit(n int) CacheOption {
	return func(o *cacheOptions) {
		o.limit = n
	}
}

// CacheStats describes the cache activity since creation.
type CacheStats struct {
	Entries int
	Hits    uint64
	Misses  uint64
	// Evictions counts shaders dropped to honor WithCacheLimit.
	Evictions uint64
	// UniqueShaders counts the distinct shader texts generated, by hash.
	UniqueShaders int
	// Mismatches counts uid mismatches found with shader debugging on.
	Mismatches int
}

// ShaderCache caches encoding shaders by format and generator
// configuration. It is safe for concurrent use.
type ShaderCache struct {
	gen     *Generator
	opts    cacheOptions
	shaders *cache.Cache[string, string]
	checker *shaderuid.Checker[EncodingUID]

	mu       sync.Mutex
	last     *shaderuid.UID[EncodingUID]
	lastCode string
	lastHits uint64
	hashes   map[uint32]struct{}
	dumped   int
}

// NewShaderCache creates a cache generating with gen. A nil gen uses a
// generator with default options.
func NewShaderCache(gen *Generator, opts ...CacheOption) *ShaderCache {
	if gen == nil {
		gen = NewGenerator()
	}
	var o cacheOptions
	for _, opt := range opts {
		opt(&o)
	}

	checkerOpts := []shaderuid.CheckerOption{}
	if o.debugDir != "" {
		checkerOpts = append(checkerOpts, shaderuid.WithDumpDir(o.debugDir))
	}
	return &ShaderCache{
		gen:     gen,
		opts:    o,
		shaders: cache.New[string, string](o.limit),
		checker: shaderuid.NewChecker[EncodingUID]("encoding", "enc_", checkerOpts...),
		hashes:  make(map[uint32]struct{}),
	}
}

// Get returns the shader for f, generating it on first use.
func (c *ShaderCache) Get(f format.TextureFormat) (string, error) {
	uid := shaderuid.MustNew(EncodingUID{
		Format:     uint32(f),
		RGB5A3Mode: uint32(c.gen.RGB5A3Mode()),
	})

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.opts.debug && c.last != nil && c.last.Equal(uid) {
		c.lastHits++
		return c.lastCode, nil
	}
	code, cached := c.shaders.Get(uid.Key())
	if c.opts.debug {
		return c.generate(f, uid, cached)
	}
	if cached {
		c.last, c.lastCode = uid, code
		return code, nil
	}
	return c.generate(f, uid, false)
}

// generate runs the generator and stores the result. cached reports whether
// uid was already in the cache. Caller must hold c.mu.
func (c *ShaderCache) generate(f format.TextureFormat, uid *shaderuid.UID[EncodingUID], cached bool) (string, error) {
	code, err := c.gen.GenerateShader(f)
	if err != nil {
		return "", err
	}
	if c.opts.debug {
		c.checker.Record(uid, code)
	}
	c.shaders.Set(uid.Key(), code)
	c.last, c.lastCode = uid, code

	if !cached {
		c.hashes[hashText(code)] = struct{}{}
		if c.opts.dumpDir != "" {
			c.dump(code)
		}
		Logger().Debug("texconv: shader cache miss",
			"format", f.String(), "entries", c.shaders.Len())
	}
	return code, nil
}

func (c *ShaderCache) dump(code string) {
	path := filepath.Join(c.opts.dumpDir, fmt.Sprintf("enc_%04d.txt", c.dumped))
	c.dumped++
	if err := os.MkdirAll(c.opts.dumpDir, 0o755); err != nil {
		Logger().Warn("texconv: shader dump failed", "path", path, "error", err)
		return
	}
	if err := os.WriteFile(path, []byte(code), 0o644); err != nil {
		Logger().Warn("texconv: shader dump failed", "path", path, "error", err)
	}
}

// Invalidate drops every cached shader and every uid known to the checker.
// Call it when something outside the uid changes the generated text.
func (c *ShaderCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.shaders.Clear()
	c.checker.Invalidate()
	c.last, c.lastCode = nil, ""
}

// Stats returns the cache statistics.
func (c *ShaderCache) Stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.shaders.Stats()
	return CacheStats{
		Entries:       s.Len,
		Hits:          s.Hits + c.lastHits,
		Misses:        s.Misses,
		Evictions:     s.Evictions,
		UniqueShaders: len(c.hashes),
		Mismatches:    c.checker.Mismatches(),
	}
}

// hashText returns the FNV-1a hash of a shader's text.
func hashText(code string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(code)) // fnv.Write never returns an error
	return h.Sum32()
}
