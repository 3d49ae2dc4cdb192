package catalog

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// A catalog document lists entries as an array of [[video]] tables, in render order.
type document struct {
	Videos []Entry `toml:"video"`
}

func ParseTOML(r io.Reader) ([]Entry, error) {
	var doc document
	if err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse catalog document: %w", err)
	}
	if doc.Videos == nil {
		return []Entry{}, nil
	}
	return doc.Videos, nil
}

func MarshalTOML(entries []Entry) ([]byte, error) {
	data, err := toml.Marshal(document{Videos: entries})
	if err != nil {
		return nil, fmt.Errorf("encode catalog document: %w", err)
	}
	return data, nil
}

type FileProvider struct {
	Path string
}

func (p *FileProvider) Load(ctx context.Context) ([]Entry, error) {
	file, err := os.Open(p.Path)
	if err != nil {
		return nil, fmt.Errorf("open catalog file: %w", err)
	}
	defer file.Close()
	return ParseTOML(file)
}

type ObjectReader interface {
	ReadObject(ctx context.Context, key string) ([]byte, error)
}

// ObjectProvider reads a TOML catalog document from object storage.
type ObjectProvider struct {
	Store ObjectReader
	Key   string
}

func (p *ObjectProvider) Load(ctx context.Context) ([]Entry, error) {
	data, err := p.Store.ReadObject(ctx, p.Key)
	if err != nil {
		return nil, fmt.Errorf("read catalog object %q: %w", p.Key, err)
	}
	return ParseTOML(bytes.NewReader(data))
}
