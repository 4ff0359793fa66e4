package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"tunedesk/internal/models"
	"tunedesk/internal/validate"
)

// IntakeInput is the payload for registering a new car in one go: the
// car itself, its technical profile, at least one tag, and the order it
// came in with. The handling user must already exist.
type IntakeInput struct {
	Car            CarInput            `json:"car"`
	CarInformation CarInformationInput `json:"carInformation"`
	Tags           []TagInput          `json:"tags" validate:"min=1,dive"`
	Order          IntakeOrderInput    `json:"order"`
}

type IntakeOrderInput struct {
	UserID         uint   `json:"userId" validate:"required"`
	ReadTool       string `json:"readTool" validate:"required"`
	RequestedStage string `json:"requestedStage" validate:"required"`
}

type IntakeResult struct {
	Car   models.Car   `json:"car"`
	Order models.Order `json:"order"`
}

type IntakeService struct {
	db *gorm.DB
}

func NewIntakeService(db *gorm.DB) *IntakeService {
	return &IntakeService{db: db}
}

// Create runs the whole intake as one transaction. Nothing is written
// until every sub-payload validates, and a failure at any step rolls
// the car, profile, tags and order back together.
func (s *IntakeService) Create(ctx context.Context, in IntakeInput) (*IntakeResult, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	year, err := time.Parse(yearLayout, in.CarInformation.Year)
	if err != nil {
		return nil, err
	}

	var car models.Car
	var order models.Order
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		car = models.Car{
			ModelName: in.Car.ModelName,
			RegNumber: in.Car.RegNumber,
			Engine:    in.Car.Engine,
		}
		if err := tx.Create(&car).Error; err != nil {
			return err
		}
		info := models.CarInformation{
			CarID:             car.ID,
			VehicleType:       in.CarInformation.VehicleType,
			Manufacturer:      in.CarInformation.Manufacturer,
			Model:             in.CarInformation.Model,
			Generation:        in.CarInformation.Generation,
			Engine:            in.CarInformation.Engine,
			Year:              year,
			Gearbox:           in.CarInformation.Gearbox,
			EcuType:           in.CarInformation.EcuType,
			EcuHardwareNumber: in.CarInformation.EcuHardwareNumber,
			EcuSoftwareNumber: in.CarInformation.EcuSoftwareNumber,
		}
		if err := tx.Create(&info).Error; err != nil {
			return err
		}
		// Always a fresh tag row per intake, even if an identical
		// name/colour pair exists.
		for _, tin := range in.Tags {
			tag := models.Tag{Name: tin.Name, Colour: tin.Colour}
			if err := tx.Create(&tag).Error; err != nil {
				return err
			}
			if err := tx.Model(&car).Association("Tags").Append(&tag); err != nil {
				return err
			}
		}
		order = models.Order{
			CarID:          car.ID,
			UserID:         in.Order.UserID,
			ReadTool:       in.Order.ReadTool,
			RequestedStage: in.Order.RequestedStage,
		}
		return tx.Create(&order).Error
	})
	if err != nil {
		return nil, translate(err, "intake", 0)
	}

	res := IntakeResult{}
	if err := s.db.WithContext(ctx).
		Preload("Information").
		Preload("Tags").
		First(&res.Car, car.ID).Error; err != nil {
		return nil, translate(err, "car", car.ID)
	}
	if err := s.db.WithContext(ctx).
		Preload("Car").
		Preload("HandledBy").
		First(&res.Order, order.ID).Error; err != nil {
		return nil, translate(err, "order", order.ID)
	}
	return &res, nil
}
