package repository

import (
	"context"
	"time"

	"github.com/ardentik/gramblast/domains/account"
	"gorm.io/gorm"
)

// --- Persistence Model ---

type accountModel struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	Phone      string `gorm:"uniqueIndex:uq_accounts_phone;not null"`
	StorePath  string `gorm:"column:store_path"`
	StringBlob string `gorm:"column:string_blob;type:text"`
	UserID     int64  `gorm:"index:idx_accounts_user"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (accountModel) TableName() string {
	return "accounts"
}

// --- Repository Implementation ---

type AccountGormRepository struct {
	db *gorm.DB
}

func NewAccountGormRepository(db *gorm.DB) *AccountGormRepository {
	return &AccountGormRepository{db: db}
}

func (r *AccountGormRepository) InitSchema(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&accountModel{})
}

func (r *AccountGormRepository) AccountsByIDs(ctx context.Context, ids []int64) ([]account.Account, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var models []accountModel
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("id").Find(&models).Error; err != nil {
		return nil, err
	}
	return toAccounts(models), nil
}

func (r *AccountGormRepository) List(ctx context.Context) ([]account.Account, error) {
	var models []accountModel
	if err := r.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, err
	}
	return toAccounts(models), nil
}

func toAccounts(models []accountModel) []account.Account {
	accounts := make([]account.Account, 0, len(models))
	for _, m := range models {
		accounts = append(accounts, account.Account{
			ID:         m.ID,
			Phone:      m.Phone,
			StorePath:  m.StorePath,
			StringBlob: m.StringBlob,
			UserID:     m.UserID,
		})
	}
	return accounts
}
