package career

import "time"

// CareerPathRecord is the database row backing a catalog career path.
type CareerPathRecord struct {
	ID        uint                  `gorm:"primaryKey"`
	Slug      string                `gorm:"uniqueIndex;not null"`
	Title     string                `gorm:"not null"`
	Position  int                   `gorm:"not null;default:0"`
	Phases    []PhaseTemplateRecord `gorm:"foreignKey:CareerPathID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (CareerPathRecord) TableName() string { return "career_paths" }

type PhaseTemplateRecord struct {
	ID           uint   `gorm:"primaryKey"`
	CareerPathID uint   `gorm:"not null;index"`
	Position     int    `gorm:"not null"`
	Name         string `gorm:"not null"`
	Description  string `gorm:"type:text"`
}

func (PhaseTemplateRecord) TableName() string { return "phase_templates" }
