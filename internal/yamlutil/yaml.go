// Package yamlutil decodes the small YAML documents coursepdf reads:
// the config file, title tables and lecture front matter.
package yamlutil

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxSize caps a document; config files and title tables are a few KB.
const MaxSize = 256 << 10

var (
	ErrEmpty    = errors.New("yamlutil: empty document")
	ErrTooLarge = errors.New("yamlutil: document too large")
)

// Decode decodes data into v. Keys without a matching field are ignored.
func Decode(data []byte, v any) error {
	return decode(data, v)
}

// DecodeStrict decodes data into v and fails on keys without a matching field.
func DecodeStrict(data []byte, v any) error {
	return decode(data, v, yaml.Strict())
}

func decode(data []byte, v any, opts ...yaml.DecodeOption) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return ErrEmpty
	}
	if len(data) > MaxSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrTooLarge, len(data), MaxSize)
	}
	if err := yaml.UnmarshalWithOptions(data, v, opts...); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}
