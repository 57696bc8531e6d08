package shaderuid

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
)

// dumpCounter numbers diagnostic files across all checkers of the process.
// The first file is numbered 1.
var dumpCounter atomic.Uint32

// maxDumpAttempts bounds the search for an unused file name.
const maxDumpAttempts = 10000

// FormatMismatch renders the diagnostic text for a mismatch: both texts
// followed by the uid words, four per row.
func FormatMismatch(old, code string, words []uint32) string {
	var b strings.Builder
	b.WriteString("Old shader code:\n")
	b.WriteString(old)
	b.WriteString("\n\nNew shader code:\n")
	b.WriteString(code)
	b.WriteString("\n\nShader uid:\n")
	for i := 0; i < len(words); i += 4 {
		end := min(i+4, len(words))
		fmt.Fprintf(&b, "Values %2d - %2d:", i, end-1)
		for _, w := range words[i:end] {
			fmt.Fprintf(&b, " %08x", w)
		}
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	return b.String()
}

// writeMismatch writes the diagnostic file under dir and returns its path.
// Existing files are never overwritten.
func writeMismatch(dir, prefix, old, code string, words []uint32) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("shaderuid: create dump dir: %w", err)
	}
	content := FormatMismatch(old, code, words)

	for range maxDumpAttempts {
		n := dumpCounter.Add(1)
		path := filepath.Join(dir, fmt.Sprintf("%ssuid_mismatch_%04d.txt", prefix, n))
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("shaderuid: write dump: %w", err)
		}
		_, werr := f.WriteString(content)
		cerr := f.Close()
		if werr != nil {
			return "", fmt.Errorf("shaderuid: write dump: %w", werr)
		}
		if cerr != nil {
			return "", fmt.Errorf("shaderuid: write dump: %w", cerr)
		}
		return path, nil
	}
	return "", fmt.Errorf("shaderuid: write dump: no free file name in %s", dir)
}
