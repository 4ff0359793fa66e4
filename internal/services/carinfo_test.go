package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tunedesk/internal/validate"
)

func carInfoInput() CarInformationInput {
	return CarInformationInput{
		VehicleType:  "Sedan",
		Manufacturer: "Tesla",
		Model:        "Model S",
		Generation:   "Gen 1",
		Engine:       "Electric 100kWh",
		Year:         "2019-06-15",
		Gearbox:      "Single-speed",
		EcuType:      "Bosch",
	}
}

func TestCarInformationCreateLinksCar(t *testing.T) {
	db := newTestDB(t)
	svc := NewCarInformationService(db)
	car := seedCar(t, db)

	info, err := svc.Create(context.Background(), CarInformationCreateInput{
		CarID:               car.ID,
		CarInformationInput: carInfoInput(),
	})
	require.NoError(t, err)
	require.NotNil(t, info.Car)
	assert.Equal(t, car.ID, info.Car.ID)
	assert.Equal(t, time.Date(2019, 6, 15, 0, 0, 0, 0, time.UTC), info.Year.UTC())
	assert.Nil(t, info.EcuHardwareNumber)
}

func TestCarInformationCreateMissingCar(t *testing.T) {
	db := newTestDB(t)
	svc := NewCarInformationService(db)

	_, err := svc.Create(context.Background(), CarInformationCreateInput{
		CarID:               123,
		CarInformationInput: carInfoInput(),
	})
	var ce *ConstraintError
	require.ErrorAs(t, err, &ce)
}

func TestCarInformationOnePerCar(t *testing.T) {
	db := newTestDB(t)
	svc := NewCarInformationService(db)
	car := seedCar(t, db)

	_, err := svc.Create(context.Background(), CarInformationCreateInput{
		CarID:               car.ID,
		CarInformationInput: carInfoInput(),
	})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), CarInformationCreateInput{
		CarID:               car.ID,
		CarInformationInput: carInfoInput(),
	})
	var ce *ConstraintError
	require.ErrorAs(t, err, &ce)
}

func TestCarInformationBadYearRejected(t *testing.T) {
	db := newTestDB(t)
	svc := NewCarInformationService(db)
	car := seedCar(t, db)

	in := carInfoInput()
	in.Year = "June 2019"
	_, err := svc.Create(context.Background(), CarInformationCreateInput{
		CarID:               car.ID,
		CarInformationInput: in,
	})
	var verr *validate.Error
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "year", verr.Fields[0].Field)
}

func TestCarInformationForCar(t *testing.T) {
	db := newTestDB(t)
	svc := NewCarInformationService(db)
	car := seedCar(t, db)

	created, err := svc.Create(context.Background(), CarInformationCreateInput{
		CarID:               car.ID,
		CarInformationInput: carInfoInput(),
	})
	require.NoError(t, err)

	infos, err := svc.ForCar(context.Background(), car.ID)
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, created.ID, infos[0].ID)

	infos, err = svc.ForCar(context.Background(), car.ID+1)
	require.NoError(t, err)
	assert.Empty(t, infos)
}

func TestCarInformationUpdateKeepsOwner(t *testing.T) {
	db := newTestDB(t)
	svc := NewCarInformationService(db)
	car := seedCar(t, db)

	info, err := svc.Create(context.Background(), CarInformationCreateInput{
		CarID:               car.ID,
		CarInformationInput: carInfoInput(),
	})
	require.NoError(t, err)

	hw := "0281011234"
	in := carInfoInput()
	in.Gearbox = "DSG"
	in.EcuHardwareNumber = &hw
	updated, err := svc.Update(context.Background(), info.ID, in)
	require.NoError(t, err)
	assert.Equal(t, car.ID, updated.CarID)
	assert.Equal(t, "DSG", updated.Gearbox)
	require.NotNil(t, updated.EcuHardwareNumber)
	assert.Equal(t, hw, *updated.EcuHardwareNumber)
}
