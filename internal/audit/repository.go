package audit

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(record *Record) (*Record, error) {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	record.CreatedAt = time.Now()

	err := r.db.Create(record).Error

	if err != nil {
		return nil, err
	}

	return record, nil
}

func (r *Repository) Recent(limit int) ([]Record, error) {
	var records []Record

	err := r.db.Order("created_at DESC").Limit(limit).Find(&records).Error

	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *Repository) DeleteAll() error {
	return r.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&Record{}).Error
}
