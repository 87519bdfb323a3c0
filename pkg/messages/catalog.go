package messages

import (
	"strconv"
	"strings"
)

const (
	defaultKeyPrefix = "message_"
	defaultSplit     = "|"
)

// Catalog resolves the human-readable title and text for a message code.
// Templates are keyed "<prefix><code>" and hold "title|text"; a template
// without the separator is treated as text only, with the default title.
// The catalog is populated once at startup and read-only afterwards, so it is
// safe for concurrent use.
type Catalog struct {
	templates map[string]string
	prefix    string
	split     string
}

// CatalogOption customizes template resolution.
type CatalogOption func(*Catalog)

// WithKeyPrefix overrides the template key prefix.
func WithKeyPrefix(prefix string) CatalogOption {
	return func(c *Catalog) { c.prefix = prefix }
}

// WithSplit overrides the title/text separator.
func WithSplit(split string) CatalogOption {
	return func(c *Catalog) { c.split = split }
}

// NewCatalog builds a catalog over the given templates. A nil map yields a
// catalog that always misses, which callers resolve with the fallback texts.
func NewCatalog(templates map[string]string, opts ...CatalogOption) *Catalog {
	c := &Catalog{templates: templates, prefix: defaultKeyPrefix, split: defaultSplit}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Lookup returns the title and text for code. ok is false when no template
// exists, in which case both strings are empty.
func (c *Catalog) Lookup(code int) (title, text string, ok bool) {
	tpl, found := c.templates[c.prefix+strconv.Itoa(code)]
	if !found || tpl == "" {
		return "", "", false
	}
	parts := strings.SplitN(tpl, c.split, 2)
	if len(parts) == 2 {
		return parts[0], parts[1], true
	}
	return DefaultTitle, parts[0], true
}
