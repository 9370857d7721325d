package jsonstore

import (
	"os"
	"path/filepath"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"
)

// WriteDocument encodes v and atomically replaces path: the document is
// staged in a pooled buffer, written to a temp file in the target
// directory, then renamed over the destination so a failed run never leaves
// a truncated file behind.
func WriteDocument(path string, v any, indent bool) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	enc := sonic.ConfigDefault.NewEncoder(buf)
	if indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return crerr.Wrapf(err, "encode %s", filepath.Base(path))
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return crerr.Wrap(err, "create output directory")
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return crerr.Wrap(err, "create temp output file")
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(buf.B); err != nil {
		tmp.Close()
		return crerr.Wrapf(err, "write %s", filepath.Base(path))
	}
	if err := tmp.Close(); err != nil {
		return crerr.Wrapf(err, "close %s", filepath.Base(path))
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return crerr.Wrapf(err, "replace %s", filepath.Base(path))
	}

	return nil
}

// ReadDocument decodes a previously written document into v.
func ReadDocument(path string, v any) error {
	f, err := os.Open(path)
	if err != nil {
		return crerr.Wrapf(err, "open %s", filepath.Base(path))
	}
	defer f.Close()

	if err := sonic.ConfigDefault.NewDecoder(f).Decode(v); err != nil {
		return crerr.Wrapf(err, "decode %s", filepath.Base(path))
	}
	return nil
}
