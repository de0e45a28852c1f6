package utils

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/golang/snappy"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Formats of value files, named after their extensions.
const (
	FormatLines = ""
	FormatJSON  = ".json"
	FormatYAML  = ".yaml"
)

// FormatOf returns the format of filename after dropping a
// compression suffix: .json, .yaml and .yml name structured formats,
// anything else holds one value per line.
func FormatOf(filename string) string {
	ext := path.Ext(filename)
	if ext == ".gz" || ext == ".sz" {
		ext = path.Ext(strings.TrimSuffix(filename, ext))
	}
	switch ext {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatLines
}

// NewReader returns a reader of the content of f, decompressing it
// if filename ends in .gz (gzip) or .sz (framed snappy).
func NewReader(f io.Reader, filename string) (io.Reader, error) {
	switch path.Ext(filename) {
	case ".gz":
		r, e := gzip.NewReader(f)
		if e != nil {
			return nil, errors.Wrapf(e, "gzip header of %s", filename)
		}
		return r, nil
	case ".sz":
		return snappy.NewReader(f), nil
	}
	return f, nil
}

// NewWriter is the writing counterpart of NewReader.  The returned
// writer must be closed to flush compressed output.
func NewWriter(f io.Writer, filename string) io.WriteCloser {
	switch path.Ext(filename) {
	case ".gz":
		return gzip.NewWriter(f)
	case ".sz":
		return snappy.NewBufferedWriter(f)
	}
	return nopCloser{f}
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// ReadValues decodes the values in r.  JSON input must be an array,
// YAML input a sequence; mappings decode to map[string]any.  Line
// input yields one string per non-blank line, trimmed.
func ReadValues(r io.Reader, format string) ([]any, error) {
	switch format {
	case FormatJSON:
		var vs []any
		if e := json.NewDecoder(r).Decode(&vs); e != nil {
			return nil, errors.Wrap(e, "decoding JSON array")
		}
		return vs, nil
	case FormatYAML:
		b, e := io.ReadAll(r)
		if e != nil {
			return nil, errors.Wrap(e, "reading YAML")
		}
		var vs []any
		if e := yaml.Unmarshal(b, &vs); e != nil {
			return nil, errors.Wrap(e, "decoding YAML sequence")
		}
		for i := range vs {
			vs[i] = stringKeys(vs[i])
		}
		return vs, nil
	case FormatLines:
		vs := make([]any, 0)
		s := bufio.NewScanner(r)
		for s.Scan() {
			if l := strings.TrimSpace(s.Text()); len(l) > 0 {
				vs = append(vs, l)
			}
		}
		if e := s.Err(); e != nil {
			return nil, errors.Wrap(e, "reading lines")
		}
		return vs, nil
	}
	return nil, errors.Errorf("unknown format %q", format)
}

// yaml.v2 decodes mappings with interface keys, which JSON encoders
// refuse.
func stringKeys(v any) any {
	switch x := v.(type) {
	case map[any]any:
		m := make(map[string]any, len(x))
		for k, e := range x {
			m[fmt.Sprint(k)] = stringKeys(e)
		}
		return m
	case []any:
		for i := range x {
			x[i] = stringKeys(x[i])
		}
	}
	return v
}

// LoadValues reads the values in filename, in the format FormatOf
// tells.
func LoadValues(filename string) ([]any, error) {
	f, e := os.Open(filename)
	if e != nil {
		return nil, errors.Wrapf(e, "cannot open %s", filename)
	}
	defer f.Close()

	r, e := NewReader(f, filename)
	if e != nil {
		return nil, e
	}
	vs, e := ReadValues(r, FormatOf(filename))
	if e != nil {
		return nil, errors.Wrapf(e, "loading %s", filename)
	}
	return vs, nil
}
