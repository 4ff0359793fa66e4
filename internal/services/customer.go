package services

import (
	"context"

	"gorm.io/gorm"

	"tunedesk/internal/models"
	"tunedesk/internal/validate"
)

type CustomerInput struct {
	Name  string  `json:"name" validate:"required"`
	Email *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone *string `json:"phone,omitempty"`
}

type CustomerService struct {
	db *gorm.DB
}

func NewCustomerService(db *gorm.DB) *CustomerService {
	return &CustomerService{db: db}
}

// normalize treats a blank email or phone as absent, so the optional
// email format check only runs when a value was actually supplied.
func (in *CustomerInput) normalize() {
	if in.Email != nil && *in.Email == "" {
		in.Email = nil
	}
	if in.Phone != nil && *in.Phone == "" {
		in.Phone = nil
	}
}

func (s *CustomerService) Create(ctx context.Context, in CustomerInput) (*models.Customer, error) {
	in.normalize()
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	c := models.Customer{Name: in.Name, Email: in.Email, Phone: in.Phone}
	if err := s.db.WithContext(ctx).Create(&c).Error; err != nil {
		return nil, translate(err, "customer", 0)
	}
	return &c, nil
}

func (s *CustomerService) GetByID(ctx context.Context, id uint) (*models.Customer, error) {
	var c models.Customer
	if err := s.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, translate(err, "customer", id)
	}
	return &c, nil
}

func (s *CustomerService) List(ctx context.Context) ([]models.Customer, error) {
	var cs []models.Customer
	if err := s.db.WithContext(ctx).Order("created_at desc").Find(&cs).Error; err != nil {
		return nil, err
	}
	return cs, nil
}

func (s *CustomerService) Update(ctx context.Context, id uint, in CustomerInput) (*models.Customer, error) {
	in.normalize()
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	var c models.Customer
	if err := s.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, translate(err, "customer", id)
	}
	c.Name = in.Name
	c.Email = in.Email
	c.Phone = in.Phone
	if err := s.db.WithContext(ctx).Save(&c).Error; err != nil {
		return nil, translate(err, "customer", id)
	}
	return &c, nil
}

func (s *CustomerService) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Customer{}, id)
	if res.Error != nil {
		return translate(res.Error, "customer", id)
	}
	if res.RowsAffected == 0 {
		return &NotFoundError{Entity: "customer", ID: id}
	}
	return nil
}

func (s *CustomerService) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.Customer{}).Count(&n).Error
	return n, err
}
