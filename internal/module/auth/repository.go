package auth

import (
	"context"

	"gorm.io/gorm"

	"github.com/tyredepot/admin/internal/domain"
	"github.com/tyredepot/admin/internal/pkg"
)

// adminRepository implements domain.AdminRepository using GORM.
type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository creates a new AdminRepository backed by the given GORM database.
func NewAdminRepository(db *gorm.DB) domain.AdminRepository {
	return &adminRepository{db: db}
}

// Create inserts a new admin account.
func (r *adminRepository) Create(ctx context.Context, admin *domain.Admin) error {
	if err := r.db.WithContext(ctx).Create(admin).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

// GetByID retrieves an admin by its primary key.
func (r *adminRepository) GetByID(ctx context.Context, id uint) (*domain.Admin, error) {
	var admin domain.Admin
	if err := r.db.WithContext(ctx).First(&admin, id).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	return &admin, nil
}

// GetByEmail retrieves an admin by email.
func (r *adminRepository) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	var admin domain.Admin
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&admin).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	return &admin, nil
}

// Update saves changes to an existing admin.
func (r *adminRepository) Update(ctx context.Context, admin *domain.Admin) error {
	if err := r.db.WithContext(ctx).Save(admin).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}
