package services

import (
	"context"

	"gorm.io/gorm"

	"tunedesk/internal/models"
	"tunedesk/internal/validate"
)

type UserInput struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required"`
	Admin bool   `json:"admin"`
}

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) Create(ctx context.Context, in UserInput) (*models.User, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	u := models.User{Name: in.Name, Email: in.Email, Phone: in.Phone, Admin: in.Admin}
	if err := s.db.WithContext(ctx).Create(&u).Error; err != nil {
		return nil, translate(err, "user", 0)
	}
	return &u, nil
}

func (s *UserService) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	if err := s.db.WithContext(ctx).Preload("Orders").First(&u, id).Error; err != nil {
		return nil, translate(err, "user", id)
	}
	return &u, nil
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := s.db.WithContext(ctx).Preload("Orders").Order("id asc").Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (s *UserService) Update(ctx context.Context, id uint, in UserInput) (*models.User, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	var u models.User
	if err := s.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, translate(err, "user", id)
	}
	u.Name = in.Name
	u.Email = in.Email
	u.Phone = in.Phone
	u.Admin = in.Admin
	if err := s.db.WithContext(ctx).Save(&u).Error; err != nil {
		return nil, translate(err, "user", id)
	}
	return &u, nil
}

func (s *UserService) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.User{}, id)
	if res.Error != nil {
		return translate(res.Error, "user", id)
	}
	if res.RowsAffected == 0 {
		return &NotFoundError{Entity: "user", ID: id}
	}
	return nil
}

func (s *UserService) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.User{}).Count(&n).Error
	return n, err
}
