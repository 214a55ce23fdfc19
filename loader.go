package tokentax

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/renameio"
	"github.com/pkg/errors"
)

// Supported book file extensions.
const (
	ExtCSV   = ".csv"
	ExtJSONL = ".jsonl"
)

// Decode reads records in the format given by ext (ExtCSV or ExtJSONL).
func Decode(ext string, r io.Reader) ([]Rec, error) {
	switch ext {
	case ExtCSV:
		return DecodeCSV(r)
	case ExtJSONL:
		return DecodeJSONL(r)
	default:
		return nil, errors.Errorf("unsupported format %q, want %q or %q", ext, ExtCSV, ExtJSONL)
	}
}

// Encode writes records in the format given by ext (ExtCSV or ExtJSONL).
func Encode(ext string, w io.Writer, recs []Rec) error {
	switch ext {
	case ExtCSV:
		return EncodeCSV(w, recs)
	case ExtJSONL:
		return EncodeJSONL(w, recs)
	default:
		return errors.Errorf("unsupported format %q, want %q or %q", ext, ExtCSV, ExtJSONL)
	}
}

// LoadBook opens and decodes a book file, the format is given by the file
// extension. The book is named after the file, without extension.
//
// Like DecodeCSV, rows that fail to decode are reported in a DecodeErrors
// and the book holds the others.
func LoadBook(path string) (*Book, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open book file %q", path)
	}
	defer f.Close()

	ext := filepath.Ext(path)
	recs, err := Decode(ext, f)
	var derrs DecodeErrors
	if err != nil && !errors.As(err, &derrs) {
		return nil, errors.Wrapf(err, "could not decode book file %q", path)
	}
	// named first, so that Append logs carry the book name.
	b := &Book{name: strings.TrimSuffix(filepath.Base(path), ext), recs: make([]Rec, 0, len(recs))}
	b.Append(recs...)
	return b, err
}

// SaveBook encodes all records of b into path, in the format given by the
// file extension. Parent directories are created. The file is replaced
// atomically, so that a failure never leaves a truncated book.
func SaveBook(path string, b *Book) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, "could not create directory for book %q", path)
	}

	file, err := renameio.TempFile("", path)
	if err != nil {
		return errors.Wrapf(err, "error opening book file %q for writing", path)
	}
	defer file.Cleanup()

	if err := Encode(filepath.Ext(path), file, b.recs); err != nil {
		return errors.Wrapf(err, "could not encode book %q", path)
	}
	if err := file.Chmod(0644); err != nil {
		return errors.Wrapf(err, "could not set book %q permissions", path)
	}
	return file.CloseAtomicallyReplace()
}

// FindBooks returns the paths of all book files (.csv and .jsonl) under dir.
func FindBooks(dir string) ([]string, error) {
	var books []string
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if ext := filepath.Ext(p); ext == ExtCSV || ext == ExtJSONL {
			books = append(books, p)
		}
		return nil
	})
	return books, err
}
