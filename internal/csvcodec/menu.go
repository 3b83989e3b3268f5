// Package csvcodec serializes menu and facilities-inventory records to and
// from CSV for the bulk-edit round trip. Export quotes every string field and
// doubles embedded quotes (RFC 4180); import matches headers by
// case-insensitive name, tolerates column reordering and missing optional
// columns, and skips rows it cannot apply instead of failing the whole file.
package csvcodec

import (
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/skylark-hq/skylark/internal/models"
)

var (
	ErrNoData         = errors.New("csv has no data rows")
	ErrMissingColumns = errors.New("csv is missing required columns")
)

var menuHeaders = []string{"Name", "Category", "Price", "Available", "PrepTime", "IsVeg", "Description"}

// ExportMenu renders the menu as CSV text: a header row, then one row per
// item. Booleans render as Yes/No, numbers as bare tokens.
func ExportMenu(menu []models.MenuItem) string {
	var b strings.Builder
	b.WriteString(strings.Join(menuHeaders, ","))
	for _, item := range menu {
		row := []string{
			quote(item.Name),
			quote(item.Category),
			strconv.Itoa(item.Price),
			yesNo(item.Available),
			string(item.PrepTime),
			yesNo(item.IsVeg),
			quote(item.Description),
		}
		b.WriteByte('\n')
		b.WriteString(strings.Join(row, ","))
	}
	return b.String()
}

// ImportMenu applies a menu CSV against the current catalog and returns the
// updated copy. Rows are matched to items by case-insensitive name; rows with
// no match are skipped, as are fields that fail to parse. The function never
// panics on malformed input; structural problems (no data rows, missing name
// or price columns) surface as an error and leave the catalog unapplied.
func ImportMenu(current []models.MenuItem, csvText string) ([]models.MenuItem, error) {
	rows, header, err := readAll(csvText)
	if err != nil {
		return nil, err
	}

	nameIdx, nameOK := header["name"]
	priceIdx, priceOK := header["price"]
	if !nameOK || !priceOK {
		return nil, ErrMissingColumns
	}
	availableIdx, availableOK := header["available"]
	prepIdx, prepOK := header["preptime"]
	descIdx, descOK := header["description"]

	next := make([]models.MenuItem, len(current))
	copy(next, current)

	byName := make(map[string]int, len(next))
	for i, item := range next {
		byName[strings.ToLower(item.Name)] = i
	}

	for _, row := range rows {
		name := field(row, nameIdx)
		if name == "" {
			continue
		}
		idx, ok := byName[strings.ToLower(name)]
		if !ok {
			continue // unresolvable reference, drop the row's updates
		}

		if raw := field(row, priceIdx); raw != "" {
			if price, err := strconv.ParseFloat(raw, 64); err == nil {
				next[idx].Price = int(price)
			}
		}
		if availableOK {
			if raw := strings.ToLower(field(row, availableIdx)); raw != "" {
				next[idx].Available = raw == "yes" || raw == "true" || raw == "1"
			}
		}
		if prepOK {
			if tier := models.PrepTier(field(row, prepIdx)); tier.Valid() {
				next[idx].PrepTime = tier
			}
		}
		if descOK {
			if raw := field(row, descIdx); raw != "" {
				next[idx].Description = raw
			}
		}
	}

	return next, nil
}

// readAll parses the CSV text into data rows plus a lowercase header index.
// Malformed rows are dropped; only an unreadable header is fatal.
func readAll(csvText string) ([][]string, map[string]int, error) {
	reader := csv.NewReader(strings.NewReader(csvText))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	headerRow, err := reader.Read()
	if err != nil {
		return nil, nil, ErrNoData
	}
	header := make(map[string]int, len(headerRow))
	for i, h := range headerRow {
		header[strings.ToLower(strings.TrimSpace(h))] = i
	}

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue // skip the malformed row, keep the rest
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, nil, ErrNoData
	}
	return rows, header, nil
}

func field(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
