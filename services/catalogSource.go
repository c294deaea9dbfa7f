package services

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"go.yaml.in/yaml/v3"

	"career-roadmap/config"
	"career-roadmap/models/career"
)

//go:embed data/career_paths.yaml
var embeddedCatalog []byte

type catalogFile struct {
	Paths []career.CareerPath `yaml:"paths"`
}

// OpenCatalog loads the catalog from the configured source.
func OpenCatalog(ctx context.Context, cfg config.CatalogConfig, log zerolog.Logger) (*Catalog, error) {
	source := strings.ToLower(strings.TrimSpace(cfg.Source))

	var (
		cat *Catalog
		err error
	)
	switch source {
	case "", config.CatalogEmbedded:
		source = config.CatalogEmbedded
		cat, err = DefaultCatalog()
	case config.CatalogFile:
		cat, err = LoadCatalogFile(cfg.Path)
	case config.CatalogPostgres:
		db, openErr := config.OpenDB(ctx, cfg.DSN)
		if openErr != nil {
			return nil, openErr
		}
		defer func() {
			if cerr := config.CloseDB(db); cerr != nil {
				log.Warn().Err(cerr).Msg("closing catalog database")
			}
		}()
		cat, err = LoadCatalogDB(ctx, db)
	default:
		return nil, errors.New("unknown catalog source: " + cfg.Source)
	}
	if err != nil {
		return nil, fmt.Errorf("load %s catalog: %w", source, err)
	}

	log.Info().Str("source", source).Int("paths", cat.Len()).Msg("career catalog loaded")
	return cat, nil
}

// DefaultCatalog returns the catalog compiled into the binary.
func DefaultCatalog() (*Catalog, error) {
	return LoadCatalogYAML(bytes.NewReader(embeddedCatalog))
}

func LoadCatalogFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadCatalogYAML(f)
}

// LoadCatalogYAML reads a catalog document of the form
//
//	paths:
//	  - key: data_scientist
//	    title: Data Scientist
//	    phases:
//	      - name: Foundation
//	        description: ...
//
// Unknown fields are rejected.
func LoadCatalogYAML(r io.Reader) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc catalogFile
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &CatalogError{Reason: "empty document"}
		}
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return NewCatalog(doc.Paths)
}
