package repository

import (
	"context"

	"github.com/dandyZicky/wfh-attendance/internal/model"

	"gorm.io/gorm"
)

type CredentialRepository interface {
	Create(ctx context.Context, c *model.Credential) error
	FindByEmail(ctx context.Context, email string) (*model.Credential, error)
	ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error)
	DeleteByUserKey(ctx context.Context, userKey string) (int64, error)
}

type credentialRepo struct{ db *gorm.DB }

func NewCredentialRepository(db *gorm.DB) CredentialRepository { return &credentialRepo{db: db} }

func (r *credentialRepo) Create(ctx context.Context, c *model.Credential) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *credentialRepo) FindByEmail(ctx context.Context, email string) (*model.Credential, error) {
	var c model.Credential
	err := r.db.WithContext(ctx).Where("LOWER(email) = LOWER(?)", email).First(&c).Error
	return &c, err
}

func (r *credentialRepo) ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Credential{}).
		Where("LOWER(email) = LOWER(?) OR username = ?", email, username).
		Count(&count).Error
	return count > 0, err
}

// DeleteByUserKey returns the number of rows removed so the handler can
// distinguish a missing credential from a successful delete.
func (r *credentialRepo) DeleteByUserKey(ctx context.Context, userKey string) (int64, error) {
	res := r.db.WithContext(ctx).Where("user_key = ?", userKey).Delete(&model.Credential{})
	return res.RowsAffected, res.Error
}
