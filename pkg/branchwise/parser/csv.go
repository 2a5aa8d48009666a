package parser

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ukaji3/branchwise-go/pkg/branchwise/models"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrMalformedCSV indicates the input cannot be read as a station table.
var ErrMalformedCSV = errors.New("malformed csv")

// LoadCSV reads a station CSV into a table. Every cell is loaded as Text.
// Short rows are padded with empty text and blank lines are skipped.
func LoadCSV(path, enc string) (*models.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadCSV(f, enc)
}

// ReadCSV reads a station table from r, decoding it with the named encoding.
func ReadCSV(r io.Reader, enc string) (*models.Table, error) {
	dec, err := decoderFor(enc)
	if err != nil {
		return nil, err
	}

	data, err := io.ReadAll(transform.NewReader(r, dec))
	if err != nil {
		return nil, fmt.Errorf("failed to decode input: %w", err)
	}

	// Quotes are only special at the start of a field, so station names
	// like Alpha "Labs" Pvt are read literally.
	cr := csv.NewReader(bytes.NewReader(data))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var records [][]string
	var lastLine, lastCol int
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedCSV, err)
		}
		records = append(records, rec)
		lastLine, lastCol = cr.FieldPos(len(rec) - 1)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: no header row", ErrMalformedCSV)
	}
	// Lazy quoting lets an unclosed quoted field run to the end of input
	if unclosedQuote(data, lastLine, lastCol) {
		return nil, fmt.Errorf("%w: quoted field starting on line %d is never closed",
			ErrMalformedCSV, lastLine)
	}

	table := &models.Table{Headers: records[0]}
	width := len(table.Headers)
	for i, rec := range records[1:] {
		if len(rec) > width {
			// Line numbers are 1-based and the header occupies line 1
			return nil, fmt.Errorf("%w: row %d has %d fields, header has %d",
				ErrMalformedCSV, i+2, len(rec), width)
		}
		row := make(models.Row, width)
		for j := range row {
			if j < len(rec) {
				row[j] = models.Text(rec[j])
			} else {
				row[j] = models.Text("")
			}
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}

// unclosedQuote reports whether the field starting at line:col opens a quoted
// field that reaches the end of data without a closing quote.
func unclosedQuote(data []byte, line, col int) bool {
	off := 0
	for l := 1; l < line; l++ {
		i := bytes.IndexByte(data[off:], '\n')
		if i < 0 {
			return false
		}
		off += i + 1
	}
	off += col - 1
	if off < 0 || off >= len(data) || data[off] != '"' {
		return false
	}
	tail := bytes.TrimRight(data[off+1:], "\r\n")
	return !bytes.HasSuffix(tail, []byte{'"'})
}

// decoderFor maps an encoding name to a decoder. UTF-8 input may carry a
// byte order mark, which is dropped.
func decoderFor(name string) (transform.Transformer, error) {
	var e encoding.Encoding
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return unicode.BOMOverride(unicode.UTF8.NewDecoder()), nil
	case "utf-16", "utf16":
		e = unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)
	case "windows-1252", "cp1252":
		e = charmap.Windows1252
	case "iso-8859-1", "latin1":
		e = charmap.ISO8859_1
	default:
		return nil, fmt.Errorf("unsupported encoding: %s", name)
	}
	return e.NewDecoder(), nil
}
