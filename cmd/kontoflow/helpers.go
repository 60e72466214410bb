package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/viper"

	"github.com/mkempf/kontoflow/internal/archive"
	"github.com/mkempf/kontoflow/internal/config"
	"github.com/mkempf/kontoflow/internal/engine"
	"github.com/mkempf/kontoflow/internal/ingest"
	"github.com/mkempf/kontoflow/internal/session"
)

// loadSession builds the in-memory session for one command invocation:
// the configured statement files are parsed into the store in order, the
// taxonomy document is imported against it (reconciling list membership to
// current positions), and every transaction is classified with the
// imported rules.
func loadSession() (*session.Session, error) {
	s := session.New()

	parser := ingest.NewParser()
	for _, path := range config.ExpandAll(viper.GetStringSlice("statements")) {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open statement %s: %w", path, err)
		}

		transactions, err := parser.ParseFile(f)
		_ = f.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to parse statement %s: %w", path, err)
		}

		for _, trx := range transactions {
			s.Append(trx)
		}
		slog.Debug("loaded statement", "path", path, "transactions", len(transactions))
	}

	doc, err := loadTaxonomy()
	if err != nil {
		return nil, err
	}
	archive.Import(s, doc)
	engine.ReclassifyAll(s)

	return s, nil
}

func taxonomyPath() string {
	return config.ExpandPath(viper.GetString("taxonomy.path"))
}

// loadTaxonomy reads the taxonomy document. A missing file yields an empty
// taxonomy; a present but malformed file is an error.
func loadTaxonomy() (archive.Document, error) {
	path := taxonomyPath()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return archive.Document{}, nil
	}
	if err != nil {
		return archive.Document{}, fmt.Errorf("failed to read taxonomy %s: %w", path, err)
	}
	return archive.Parse(data)
}

// saveTaxonomy exports the session's taxonomy back to the configured
// document path. Every mutating command ends with this; the document is
// the only durable artifact.
func saveTaxonomy(s *session.Session) error {
	data, err := archive.Export(s).Marshal()
	if err != nil {
		return err
	}

	path := taxonomyPath()
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("failed to create taxonomy directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write taxonomy %s: %w", path, err)
	}

	slog.Debug("saved taxonomy", "path", path)
	return nil
}

func parseID(arg, what string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid %s id %q", what, arg)
	}
	return id, nil
}

func parsePosition(arg string) (int, error) {
	pos, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid transaction position %q", arg)
	}
	return pos, nil
}
