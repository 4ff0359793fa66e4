package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagListNewestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := NewTagService(db)

	first, err := svc.Create(context.Background(), TagInput{Name: "Stage 1", Colour: "#3B82F6"})
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	second, err := svc.Create(context.Background(), TagInput{Name: "Stage 2", Colour: "#EF4444"})
	require.NoError(t, err)

	tags, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.Equal(t, second.ID, tags[0].ID)
	assert.Equal(t, first.ID, tags[1].ID)
}

func TestTagGetByIDIncludesCars(t *testing.T) {
	db := newTestDB(t)
	svc := NewTagService(db)
	car := seedCar(t, db)

	tag, err := svc.Create(context.Background(), TagInput{Name: "DSG", Colour: "#10B981"})
	require.NoError(t, err)
	require.NoError(t, db.Model(car).Association("Tags").Append(tag))

	got, err := svc.GetByID(context.Background(), tag.ID)
	require.NoError(t, err)
	require.Len(t, got.Cars, 1)
	assert.Equal(t, car.ID, got.Cars[0].ID)
}

func TestTagAttachToManyCarsKeepsOneRow(t *testing.T) {
	db := newTestDB(t)
	svc := NewTagService(db)
	carA := seedCar(t, db)
	carB, err := NewCarService(db).Create(context.Background(), CarInput{
		ModelName: "BMW M3", RegNumber: "DEF456Y", Engine: "S58",
	})
	require.NoError(t, err)

	tag, err := svc.Create(context.Background(), TagInput{Name: "Stage 2", Colour: "#EF4444"})
	require.NoError(t, err)
	require.NoError(t, db.Model(carA).Association("Tags").Append(tag))
	require.NoError(t, db.Model(carB).Association("Tags").Append(tag))

	n, err := svc.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	got, err := svc.GetByID(context.Background(), tag.ID)
	require.NoError(t, err)
	assert.Len(t, got.Cars, 2)
}

func TestTagUpdateAndDelete(t *testing.T) {
	db := newTestDB(t)
	svc := NewTagService(db)

	tag, err := svc.Create(context.Background(), TagInput{Name: "Pops", Colour: "#000000"})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), tag.ID, TagInput{Name: "Pops & Bangs", Colour: "#F59E0B"})
	require.NoError(t, err)
	assert.Equal(t, "Pops & Bangs", updated.Name)
	assert.Equal(t, "#F59E0B", updated.Colour)

	require.NoError(t, svc.Delete(context.Background(), tag.ID))
	_, err = svc.GetByID(context.Background(), tag.ID)
	var nfe *NotFoundError
	require.ErrorAs(t, err, &nfe)
}
