package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/rshade/listctl/internal/listing"
)

// LoadCSV reads a CSV listing whose first record is the header. Rows may be
// ragged; missing cells read as "".
func LoadCSV(r io.Reader, id string) (*listing.Host, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %s has no header row", ErrHostNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("reading csv header: %w", err)
	}

	columns := make([]listing.Column, len(header))
	for i, title := range header {
		columns[i] = listing.Column{Title: title, Sortable: true}
	}

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv rows: %w", err)
	}

	return listing.NewHost(id, columns, rows), nil
}
