package repository

import (
	"context"

	"github.com/mismumbai-tush/ginza-industries-order-portal/internal/model"

	"gorm.io/gorm"
)

// UserRepository defines the data access contract for salesperson accounts.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via stubs.
type UserRepository interface {
	Create(ctx context.Context, u *model.AppUser) error
	EmailExists(ctx context.Context, email string) (bool, error)
	FindByEmail(ctx context.Context, email string) (*model.AppUser, error)
	List(ctx context.Context) ([]model.AppUser, error)
}

type userRepo struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) UserRepository { return &userRepo{db: db} }

func (r *userRepo) Create(ctx context.Context, u *model.AppUser) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *userRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.AppUser{}).
		Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func (r *userRepo) FindByEmail(ctx context.Context, email string) (*model.AppUser, error) {
	var u model.AppUser
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error
	return &u, err
}

func (r *userRepo) List(ctx context.Context) ([]model.AppUser, error) {
	var users []model.AppUser
	err := r.db.WithContext(ctx).Find(&users).Error
	return users, err
}
