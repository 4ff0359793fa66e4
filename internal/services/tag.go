package services

import (
	"context"

	"gorm.io/gorm"

	"tunedesk/internal/models"
	"tunedesk/internal/validate"
)

type TagInput struct {
	Name   string `json:"name" validate:"required"`
	Colour string `json:"colour" validate:"required"`
}

type TagService struct {
	db *gorm.DB
}

func NewTagService(db *gorm.DB) *TagService {
	return &TagService{db: db}
}

func (s *TagService) Create(ctx context.Context, in TagInput) (*models.Tag, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	t := models.Tag{Name: in.Name, Colour: in.Colour}
	if err := s.db.WithContext(ctx).Create(&t).Error; err != nil {
		return nil, translate(err, "tag", 0)
	}
	return &t, nil
}

func (s *TagService) GetByID(ctx context.Context, id uint) (*models.Tag, error) {
	var t models.Tag
	if err := s.db.WithContext(ctx).Preload("Cars").First(&t, id).Error; err != nil {
		return nil, translate(err, "tag", id)
	}
	return &t, nil
}

func (s *TagService) List(ctx context.Context) ([]models.Tag, error) {
	var tags []models.Tag
	err := s.db.WithContext(ctx).Preload("Cars").Order("created_at desc").Find(&tags).Error
	if err != nil {
		return nil, err
	}
	return tags, nil
}

func (s *TagService) Update(ctx context.Context, id uint, in TagInput) (*models.Tag, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	var t models.Tag
	if err := s.db.WithContext(ctx).First(&t, id).Error; err != nil {
		return nil, translate(err, "tag", id)
	}
	t.Name = in.Name
	t.Colour = in.Colour
	if err := s.db.WithContext(ctx).Save(&t).Error; err != nil {
		return nil, translate(err, "tag", id)
	}
	return &t, nil
}

func (s *TagService) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Tag{}, id)
	if res.Error != nil {
		return translate(res.Error, "tag", id)
	}
	if res.RowsAffected == 0 {
		return &NotFoundError{Entity: "tag", ID: id}
	}
	return nil
}

func (s *TagService) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.Tag{}).Count(&n).Error
	return n, err
}
