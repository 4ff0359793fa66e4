package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tunedesk/internal/validate"
)

func strptr(s string) *string { return &s }

func TestCustomerCreateWithoutContactDetails(t *testing.T) {
	db := newTestDB(t)
	svc := NewCustomerService(db)

	c, err := svc.Create(context.Background(), CustomerInput{Name: "Anna Svensson"})
	require.NoError(t, err)
	assert.Nil(t, c.Email)
	assert.Nil(t, c.Phone)
}

func TestCustomerBlankEmailTreatedAsAbsent(t *testing.T) {
	db := newTestDB(t)
	svc := NewCustomerService(db)

	c, err := svc.Create(context.Background(), CustomerInput{
		Name:  "Anna Svensson",
		Email: strptr(""),
	})
	require.NoError(t, err)
	assert.Nil(t, c.Email)
}

func TestCustomerInvalidEmailRejected(t *testing.T) {
	db := newTestDB(t)
	svc := NewCustomerService(db)

	_, err := svc.Create(context.Background(), CustomerInput{
		Name:  "Anna Svensson",
		Email: strptr("not-an-email"),
	})
	var verr *validate.Error
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "email", verr.Fields[0].Field)
}

func TestCustomerListNewestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := NewCustomerService(db)

	_, err := svc.Create(context.Background(), CustomerInput{Name: "First"})
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	_, err = svc.Create(context.Background(), CustomerInput{Name: "Second"})
	require.NoError(t, err)

	cs, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, cs, 2)
	assert.Equal(t, "Second", cs[0].Name)
}

func TestCustomerUpdateDeleteRoundTrip(t *testing.T) {
	db := newTestDB(t)
	svc := NewCustomerService(db)

	c, err := svc.Create(context.Background(), CustomerInput{Name: "Anna"})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), c.ID, CustomerInput{
		Name:  "Anna Svensson",
		Email: strptr("anna@example.com"),
		Phone: strptr("+46709876543"),
	})
	require.NoError(t, err)
	require.NotNil(t, updated.Email)
	assert.Equal(t, "anna@example.com", *updated.Email)

	require.NoError(t, svc.Delete(context.Background(), c.ID))
	_, err = svc.GetByID(context.Background(), c.ID)
	var nfe *NotFoundError
	require.ErrorAs(t, err, &nfe)
}
