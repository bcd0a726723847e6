package preference

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"ulascansenturk/weather-widget/internal/theme"
)

// Repository persists preferences in postgres and satisfies theme.Store.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Get(ctx context.Context, name string) (string, error) {
	var pref Preference
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&pref).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", theme.ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return pref.Value, nil
}

func (r *Repository) Set(ctx context.Context, name, value string) error {
	pref := Preference{
		Name:      name,
		Value:     value,
		UpdatedAt: time.Now(),
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&pref).Error
}
