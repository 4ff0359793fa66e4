package services

import (
	"context"

	"gorm.io/gorm"

	"tunedesk/internal/models"
	"tunedesk/internal/validate"
)

type OrderInput struct {
	CarID          uint   `json:"carId" validate:"required"`
	UserID         uint   `json:"userId" validate:"required"`
	ReadTool       string `json:"readTool" validate:"required"`
	RequestedStage string `json:"requestedStage" validate:"required"`
}

type OrderService struct {
	db *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

func (s *OrderService) Create(ctx context.Context, in OrderInput) (*models.Order, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	o := models.Order{
		CarID:          in.CarID,
		UserID:         in.UserID,
		ReadTool:       in.ReadTool,
		RequestedStage: in.RequestedStage,
	}
	if err := s.db.WithContext(ctx).Create(&o).Error; err != nil {
		return nil, translate(err, "order", 0)
	}
	return s.GetByID(ctx, o.ID)
}

// GetByID returns the order with its car and handling user attached.
func (s *OrderService) GetByID(ctx context.Context, id uint) (*models.Order, error) {
	var o models.Order
	err := s.db.WithContext(ctx).Preload("Car").Preload("HandledBy").First(&o, id).Error
	if err != nil {
		return nil, translate(err, "order", id)
	}
	return &o, nil
}

func (s *OrderService) List(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.WithContext(ctx).Preload("Car").Preload("HandledBy").Order("id desc").Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// Recent returns the newest orders for the dashboard. The limit is
// clamped to 1..50 and defaults to 10.
func (s *OrderService) Recent(ctx context.Context, limit int) ([]models.Order, error) {
	if limit < 1 {
		limit = 10
	}
	if limit > 50 {
		limit = 50
	}
	var orders []models.Order
	err := s.db.WithContext(ctx).Preload("Car").Preload("HandledBy").
		Order("id desc").Limit(limit).Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *OrderService) Update(ctx context.Context, id uint, in OrderInput) (*models.Order, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	var o models.Order
	if err := s.db.WithContext(ctx).First(&o, id).Error; err != nil {
		return nil, translate(err, "order", id)
	}
	o.CarID = in.CarID
	o.UserID = in.UserID
	o.ReadTool = in.ReadTool
	o.RequestedStage = in.RequestedStage
	if err := s.db.WithContext(ctx).Save(&o).Error; err != nil {
		return nil, translate(err, "order", id)
	}
	return &o, nil
}

func (s *OrderService) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Order{}, id)
	if res.Error != nil {
		return translate(res.Error, "order", id)
	}
	if res.RowsAffected == 0 {
		return &NotFoundError{Entity: "order", ID: id}
	}
	return nil
}

func (s *OrderService) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.Order{}).Count(&n).Error
	return n, err
}
