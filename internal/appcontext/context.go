// Package appcontext holds the application context generated at build time
// by the frontend tooling. The bootstrap treats a Context as an opaque value;
// only the runtime layer decodes it.
package appcontext

import (
	"crypto/sha256"
	_ "embed"
	"encoding/hex"
)

// generated/context.yaml is rewritten by the web build before packaging.
//
//go:embed generated/context.yaml
var generated []byte

const generatedSource = "generated/context.yaml"

// Context is the immutable generated application context. It is a comparable
// value: copies are equal, and nothing in this package mutates one after
// construction.
type Context struct {
	source string
	raw    string
}

// Generate returns the context embedded at build time.
func Generate() Context {
	return FromBytes(generatedSource, generated)
}

// FromBytes builds a context from a raw document. The bytes are copied.
func FromBytes(source string, raw []byte) Context {
	return Context{source: source, raw: string(raw)}
}

func (c Context) Source() string {
	return c.source
}

// Digest is the hex SHA-256 of the raw document.
func (c Context) Digest() string {
	sum := sha256.Sum256([]byte(c.raw))
	return hex.EncodeToString(sum[:])
}

func (c Context) IsZero() bool {
	return c == Context{}
}
