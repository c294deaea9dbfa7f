package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"career-roadmap/models/career"
)

// LoadCatalogDB reads the catalog from the career_paths and phase_templates tables.
func LoadCatalogDB(ctx context.Context, db *gorm.DB) (*Catalog, error) {
	var records []career.CareerPathRecord
	err := db.WithContext(ctx).
		Preload("Phases", func(tx *gorm.DB) *gorm.DB { return tx.Order("position ASC, id ASC") }).
		Order("position ASC, id ASC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("query career paths: %w", err)
	}
	return NewCatalog(pathsFromRecords(records))
}

// SeedCatalog creates the catalog tables if needed and replaces the stored
// entries for every path in cat. Paths stored under other keys are left alone.
func SeedCatalog(ctx context.Context, db *gorm.DB, cat *Catalog) error {
	if err := db.WithContext(ctx).AutoMigrate(&career.CareerPathRecord{}, &career.PhaseTemplateRecord{}); err != nil {
		return fmt.Errorf("migrate catalog tables: %w", err)
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, rec := range recordsFromPaths(cat.Paths()) {
			var existing career.CareerPathRecord
			err := tx.Where("slug = ?", rec.Slug).First(&existing).Error
			switch {
			case err == nil:
				if err := tx.Where("career_path_id = ?", existing.ID).Delete(&career.PhaseTemplateRecord{}).Error; err != nil {
					return fmt.Errorf("clear phases of %s: %w", rec.Slug, err)
				}
				existing.Title = rec.Title
				existing.Position = rec.Position
				if err := tx.Save(&existing).Error; err != nil {
					return fmt.Errorf("update %s: %w", rec.Slug, err)
				}
				for i := range rec.Phases {
					rec.Phases[i].CareerPathID = existing.ID
				}
				if err := tx.Create(&rec.Phases).Error; err != nil {
					return fmt.Errorf("insert phases of %s: %w", rec.Slug, err)
				}
			case errors.Is(err, gorm.ErrRecordNotFound):
				if err := tx.Create(&rec).Error; err != nil {
					return fmt.Errorf("insert %s: %w", rec.Slug, err)
				}
			default:
				return fmt.Errorf("find %s: %w", rec.Slug, err)
			}
		}
		return nil
	})
}

func pathsFromRecords(records []career.CareerPathRecord) []career.CareerPath {
	paths := make([]career.CareerPath, 0, len(records))
	for _, r := range records {
		p := career.CareerPath{Key: r.Slug, Title: r.Title}
		for _, ph := range r.Phases {
			p.Phases = append(p.Phases, career.PhaseTemplate{Name: ph.Name, Description: ph.Description})
		}
		paths = append(paths, p)
	}
	return paths
}

func recordsFromPaths(paths []career.CareerPath) []career.CareerPathRecord {
	records := make([]career.CareerPathRecord, 0, len(paths))
	for i, p := range paths {
		r := career.CareerPathRecord{Slug: p.Key, Title: p.Title, Position: i}
		for j, ph := range p.Phases {
			r.Phases = append(r.Phases, career.PhaseTemplateRecord{
				Position:    j,
				Name:        ph.Name,
				Description: ph.Description,
			})
		}
		records = append(records, r)
	}
	return records
}
