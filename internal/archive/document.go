// Package archive serializes the taxonomy (categories, groups, lists) to a
// JSON document and restores it against whatever transaction store is
// currently loaded.
//
// List membership is stored as positions into the live store, which do not
// survive a reload. The document therefore carries content-derived
// transaction keys instead of positions; import resolves them back to
// positions by scanning the current store.
package archive

import (
	"encoding/json"
	"fmt"

	"github.com/mkempf/kontoflow/internal/model"
	"github.com/mkempf/kontoflow/internal/session"
)

// Document is the exchanged taxonomy document.
type Document struct {
	Categories []model.Category `json:"categories"`
	Groups     []model.Group    `json:"groups"`
	Lists      []ListEntry      `json:"lists_data"`
}

// ListEntry mirrors model.List with membership expressed as transaction
// keys instead of store positions.
type ListEntry struct {
	Name            string                 `json:"name"`
	Color           string                 `json:"color"`
	TransactionKeys []model.TransactionKey `json:"transaction_keys"`
	ID              int                    `json:"id"`
	RefundList      bool                   `json:"refund_list"`
	ListAsCat       bool                   `json:"list_as_cat"`
}

// Marshal renders the document as indented JSON.
func (d Document) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal taxonomy document: %w", err)
	}
	return data, nil
}

// Parse decodes a taxonomy document. Missing top-level keys decode to empty
// collections, so partial documents import cleanly; only malformed JSON is
// an error.
func Parse(data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("failed to parse taxonomy document: %w", err)
	}
	return doc, nil
}

// Export captures the session's taxonomy as a document, replacing each
// list's membership positions with the keys of the referenced
// transactions. Stale out-of-range positions are skipped.
func Export(s *session.Session) Document {
	doc := Document{
		Categories: s.Categories(),
		Groups:     s.Groups(),
		Lists:      make([]ListEntry, 0, len(s.Lists())),
	}
	if doc.Categories == nil {
		doc.Categories = []model.Category{}
	}
	if doc.Groups == nil {
		doc.Groups = []model.Group{}
	}

	for _, lst := range s.Lists() {
		keys := make([]model.TransactionKey, 0, len(lst.TransactionIDs))
		for _, pos := range lst.TransactionIDs {
			trx, err := s.Transaction(pos)
			if err != nil {
				continue
			}
			keys = append(keys, trx.Key())
		}
		doc.Lists = append(doc.Lists, ListEntry{
			ID:              lst.ID,
			Name:            lst.Name,
			Color:           lst.Color,
			RefundList:      lst.RefundList,
			ListAsCat:       lst.ListAsCat,
			TransactionKeys: keys,
		})
	}

	return doc
}
