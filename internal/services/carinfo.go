package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"tunedesk/internal/models"
	"tunedesk/internal/validate"
)

// yearLayout is the wire format for the CarInformation year field.
const yearLayout = "2006-01-02"

type CarInformationInput struct {
	VehicleType       string  `json:"vehicleType" validate:"required"`
	Manufacturer      string  `json:"manufacturer" validate:"required"`
	Model             string  `json:"model" validate:"required"`
	Generation        string  `json:"generation" validate:"required"`
	Engine            string  `json:"engine" validate:"required"`
	Year              string  `json:"year" validate:"required,datetime=2006-01-02"`
	Gearbox           string  `json:"gearbox" validate:"required"`
	EcuType           string  `json:"ecuType" validate:"required"`
	EcuHardwareNumber *string `json:"ecuHardwareNumber,omitempty"`
	EcuSoftwareNumber *string `json:"ecuSoftwareNumber,omitempty"`
}

type CarInformationCreateInput struct {
	CarID uint `json:"carId"`
	CarInformationInput
}

type CarInformationService struct {
	db *gorm.DB
}

func NewCarInformationService(db *gorm.DB) *CarInformationService {
	return &CarInformationService{db: db}
}

func (s *CarInformationService) Create(ctx context.Context, in CarInformationCreateInput) (*models.CarInformation, error) {
	// Validated separately so failing fields keep their payload names
	// instead of the embedded struct's.
	if in.CarID == 0 {
		return nil, &validate.Error{Fields: []validate.FieldError{{Field: "carId", Message: "is required"}}}
	}
	if err := validate.Struct(in.CarInformationInput); err != nil {
		return nil, err
	}
	year, err := time.Parse(yearLayout, in.Year)
	if err != nil {
		return nil, err
	}
	info := models.CarInformation{
		CarID:             in.CarID,
		VehicleType:       in.VehicleType,
		Manufacturer:      in.Manufacturer,
		Model:             in.Model,
		Generation:        in.Generation,
		Engine:            in.Engine,
		Year:              year,
		Gearbox:           in.Gearbox,
		EcuType:           in.EcuType,
		EcuHardwareNumber: in.EcuHardwareNumber,
		EcuSoftwareNumber: in.EcuSoftwareNumber,
	}
	if err := s.db.WithContext(ctx).Create(&info).Error; err != nil {
		return nil, translate(err, "car information", 0)
	}
	return s.GetByID(ctx, info.ID)
}

func (s *CarInformationService) GetByID(ctx context.Context, id uint) (*models.CarInformation, error) {
	var info models.CarInformation
	if err := s.db.WithContext(ctx).Preload("Car").First(&info, id).Error; err != nil {
		return nil, translate(err, "car information", id)
	}
	return &info, nil
}

func (s *CarInformationService) List(ctx context.Context) ([]models.CarInformation, error) {
	var infos []models.CarInformation
	if err := s.db.WithContext(ctx).Order("id asc").Find(&infos).Error; err != nil {
		return nil, err
	}
	return infos, nil
}

// ForCar returns the profile rows recorded for one car.
func (s *CarInformationService) ForCar(ctx context.Context, carID uint) ([]models.CarInformation, error) {
	var infos []models.CarInformation
	err := s.db.WithContext(ctx).Where("car_id = ?", carID).Order("id asc").Find(&infos).Error
	if err != nil {
		return nil, err
	}
	return infos, nil
}

// Update replaces every profile field. The owning car never changes.
func (s *CarInformationService) Update(ctx context.Context, id uint, in CarInformationInput) (*models.CarInformation, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	year, err := time.Parse(yearLayout, in.Year)
	if err != nil {
		return nil, err
	}
	var info models.CarInformation
	if err := s.db.WithContext(ctx).First(&info, id).Error; err != nil {
		return nil, translate(err, "car information", id)
	}
	info.VehicleType = in.VehicleType
	info.Manufacturer = in.Manufacturer
	info.Model = in.Model
	info.Generation = in.Generation
	info.Engine = in.Engine
	info.Year = year
	info.Gearbox = in.Gearbox
	info.EcuType = in.EcuType
	info.EcuHardwareNumber = in.EcuHardwareNumber
	info.EcuSoftwareNumber = in.EcuSoftwareNumber
	if err := s.db.WithContext(ctx).Save(&info).Error; err != nil {
		return nil, translate(err, "car information", id)
	}
	return &info, nil
}

func (s *CarInformationService) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.CarInformation{}, id)
	if res.Error != nil {
		return translate(res.Error, "car information", id)
	}
	if res.RowsAffected == 0 {
		return &NotFoundError{Entity: "car information", ID: id}
	}
	return nil
}

func (s *CarInformationService) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.CarInformation{}).Count(&n).Error
	return n, err
}
