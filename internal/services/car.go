package services

import (
	"context"

	"gorm.io/gorm"

	"tunedesk/internal/models"
	"tunedesk/internal/validate"
)

type CarInput struct {
	ModelName string `json:"modelName" validate:"required"`
	RegNumber string `json:"regNumber" validate:"required"`
	Engine    string `json:"engine" validate:"required"`
}

type CarService struct {
	db *gorm.DB
}

func NewCarService(db *gorm.DB) *CarService {
	return &CarService{db: db}
}

func (s *CarService) Create(ctx context.Context, in CarInput) (*models.Car, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	c := models.Car{ModelName: in.ModelName, RegNumber: in.RegNumber, Engine: in.Engine}
	if err := s.db.WithContext(ctx).Create(&c).Error; err != nil {
		return nil, translate(err, "car", 0)
	}
	return &c, nil
}

// GetByID returns the car together with its profile, tags, orders and
// binaries, which is what the detail view renders.
func (s *CarService) GetByID(ctx context.Context, id uint) (*models.Car, error) {
	var c models.Car
	err := s.db.WithContext(ctx).
		Preload("Information").
		Preload("Tags").
		Preload("Orders").
		Preload("Binaries").
		First(&c, id).Error
	if err != nil {
		return nil, translate(err, "car", id)
	}
	return &c, nil
}

func (s *CarService) List(ctx context.Context) ([]models.Car, error) {
	var cars []models.Car
	if err := s.db.WithContext(ctx).Order("created_at desc").Find(&cars).Error; err != nil {
		return nil, err
	}
	return cars, nil
}

func (s *CarService) Update(ctx context.Context, id uint, in CarInput) (*models.Car, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	var c models.Car
	if err := s.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, translate(err, "car", id)
	}
	c.ModelName = in.ModelName
	c.RegNumber = in.RegNumber
	c.Engine = in.Engine
	if err := s.db.WithContext(ctx).Save(&c).Error; err != nil {
		return nil, translate(err, "car", id)
	}
	return &c, nil
}

func (s *CarService) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Car{}, id)
	if res.Error != nil {
		return translate(res.Error, "car", id)
	}
	if res.RowsAffected == 0 {
		return &NotFoundError{Entity: "car", ID: id}
	}
	return nil
}

func (s *CarService) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.Car{}).Count(&n).Error
	return n, err
}
