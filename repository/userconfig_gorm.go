package repository

import (
	"context"
	"errors"
	"time"

	"github.com/ardentik/gramblast/domains/account"
	"gorm.io/gorm"
)

type userConfigModel struct {
	UserID         int64 `gorm:"primaryKey"`
	MinDelay       int   `gorm:"not null"`
	MaxDelay       int   `gorm:"not null"`
	RandomizeChats bool  `gorm:"not null"`
	UpdatedAt      time.Time
}

func (userConfigModel) TableName() string {
	return "user_configs"
}

type UserConfigGormRepository struct {
	db *gorm.DB
}

func NewUserConfigGormRepository(db *gorm.DB) *UserConfigGormRepository {
	return &UserConfigGormRepository{db: db}
}

func (r *UserConfigGormRepository) InitSchema(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&userConfigModel{})
}

// ConfigFor returns nil without error when the user has no stored record,
// so callers fall back to the values supplied in the request.
func (r *UserConfigGormRepository) ConfigFor(ctx context.Context, userID int64) (*account.UserConfig, error) {
	var m userConfigModel
	err := r.db.WithContext(ctx).First(&m, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account.UserConfig{
		UserID:         m.UserID,
		MinDelay:       m.MinDelay,
		MaxDelay:       m.MaxDelay,
		RandomizeChats: m.RandomizeChats,
	}, nil
}

func (r *UserConfigGormRepository) Save(ctx context.Context, cfg account.UserConfig) error {
	m := userConfigModel{
		UserID:         cfg.UserID,
		MinDelay:       cfg.MinDelay,
		MaxDelay:       cfg.MaxDelay,
		RandomizeChats: cfg.RandomizeChats,
	}
	return r.db.WithContext(ctx).Save(&m).Error
}
