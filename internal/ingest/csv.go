// Package ingest parses bank statement exports into transactions.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/mkempf/kontoflow/internal/model"
)

// Parser reads the bank's `;`-separated statement format: the first
// non-blank row is the header, amounts use a decimal comma and may carry
// stray tab characters, and rows may be shorter than the header.
type Parser struct{}

// NewParser creates a new statement parser.
func NewParser() *Parser {
	return &Parser{}
}

// ParseFile reads one statement file and returns its transactions in file
// order. Category assignments are left empty; classification is the
// caller's step.
func (p *Parser) ParseFile(reader io.Reader) ([]model.Transaction, error) {
	raw, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read statement: %w", err)
	}

	content := decode(raw)

	r := csv.NewReader(strings.NewReader(content))
	r.Comma = ';'
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	var headers []string
	var transactions []model.Transaction

	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read statement row: %w", err)
		}
		if blank(row) {
			continue
		}
		if headers == nil {
			headers = row
			slog.Debug("statement headers", "columns", headers)
			continue
		}
		transactions = append(transactions, buildTransaction(headers, row))
	}

	return transactions, nil
}

// decode interprets the file as UTF-8, falling back to a best-effort
// Latin-1 decode when the bytes are not valid UTF-8.
func decode(raw []byte) string {
	if utf8.Valid(raw) {
		return string(raw)
	}

	slog.Warn("statement is not valid UTF-8, falling back to Latin-1")
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		// Latin-1 decoding cannot actually fail; keep the raw bytes
		// rather than losing the row.
		return string(raw)
	}
	return string(decoded)
}

func blank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func buildTransaction(headers, row []string) model.Transaction {
	trx := model.Transaction{Extra: make(map[string]string)}

	for i, header := range headers {
		value := ""
		if i < len(row) {
			value = row[i]
		}

		switch header {
		case model.ColumnBookingDate:
			trx.BookingDate = value
		case model.ColumnBookingText:
			trx.BookingText = value
		case model.ColumnPartnerName:
			trx.PartnerName = value
		case model.ColumnPurpose:
			trx.Purpose = value
		case model.ColumnAmount:
			trx.Amount = parseAmount(value)
		default:
			trx.Extra[header] = value
		}
	}

	return trx
}

// parseAmount normalizes the bank's amount format (decimal comma, stray
// tabs) and parses it. Unparseable amounts default to 0.0; bad data is a
// quality issue, not a reason to reject the row.
func parseAmount(value string) float64 {
	normalized := strings.ReplaceAll(value, "\t", "")
	normalized = strings.ReplaceAll(normalized, ",", ".")
	amount, err := strconv.ParseFloat(strings.TrimSpace(normalized), 64)
	if err != nil {
		return 0.0
	}
	return amount
}
