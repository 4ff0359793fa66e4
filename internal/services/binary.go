package services

import (
	"context"

	"gorm.io/gorm"

	"tunedesk/internal/models"
	"tunedesk/internal/validate"
)

type BinaryInput struct {
	FileName string `json:"fileName" validate:"required"`
	FilePath string `json:"filePath" validate:"required"`
	FileSize int64  `json:"fileSize" validate:"gte=0"`
	CarID    *uint  `json:"carId,omitempty"`
}

type BinaryService struct {
	db *gorm.DB
}

func NewBinaryService(db *gorm.DB) *BinaryService {
	return &BinaryService{db: db}
}

func (s *BinaryService) Create(ctx context.Context, in BinaryInput) (*models.Binary, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	b := models.Binary{
		FileName: in.FileName,
		FilePath: in.FilePath,
		FileSize: in.FileSize,
		CarID:    in.CarID,
	}
	if err := s.db.WithContext(ctx).Create(&b).Error; err != nil {
		return nil, translate(err, "binary", 0)
	}
	return s.GetByID(ctx, b.ID)
}

func (s *BinaryService) GetByID(ctx context.Context, id uint) (*models.Binary, error) {
	var b models.Binary
	if err := s.db.WithContext(ctx).Preload("Car").First(&b, id).Error; err != nil {
		return nil, translate(err, "binary", id)
	}
	return &b, nil
}

func (s *BinaryService) List(ctx context.Context) ([]models.Binary, error) {
	var bs []models.Binary
	err := s.db.WithContext(ctx).Preload("Car").Order("id desc").Find(&bs).Error
	if err != nil {
		return nil, err
	}
	return bs, nil
}

// ForCar returns the binaries uploaded for one car, newest first.
func (s *BinaryService) ForCar(ctx context.Context, carID uint) ([]models.Binary, error) {
	var bs []models.Binary
	err := s.db.WithContext(ctx).Where("car_id = ?", carID).Order("id desc").Find(&bs).Error
	if err != nil {
		return nil, err
	}
	return bs, nil
}

func (s *BinaryService) Update(ctx context.Context, id uint, in BinaryInput) (*models.Binary, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	var b models.Binary
	if err := s.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, translate(err, "binary", id)
	}
	b.FileName = in.FileName
	b.FilePath = in.FilePath
	b.FileSize = in.FileSize
	b.CarID = in.CarID
	if err := s.db.WithContext(ctx).Save(&b).Error; err != nil {
		return nil, translate(err, "binary", id)
	}
	return &b, nil
}

func (s *BinaryService) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Binary{}, id)
	if res.Error != nil {
		return translate(res.Error, "binary", id)
	}
	if res.RowsAffected == 0 {
		return &NotFoundError{Entity: "binary", ID: id}
	}
	return nil
}

func (s *BinaryService) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.Binary{}).Count(&n).Error
	return n, err
}
