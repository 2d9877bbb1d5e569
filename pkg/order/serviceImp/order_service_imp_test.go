package serviceImp

import (
	"strings"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"agrilink/entities"
	repoImp "agrilink/pkg/order/repositoryImp"
	"agrilink/pkg/order/service"
)

func newService(t *testing.T) (service.OrderService, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&entities.Order{}, &entities.Product{}))
	return New(repoImp.New(db)), db
}

func seedProduct(t *testing.T, db *gorm.DB, supplier, name string, price float64, stock int) uint {
	t.Helper()
	p := &entities.Product{
		SupplierID: supplier, Name: name, Category: "fertilizer",
		Price: price, Unit: "bag", Stock: stock, Active: true,
	}
	require.NoError(t, db.Create(p).Error)
	return p.ID
}

func TestCheckoutSnapshotsAndDecrementsStock(t *testing.T) {
	svc, db := newService(t)
	urea := seedProduct(t, db, "sup-1", "Urea 50kg", 300, 10)
	seeds := seedProduct(t, db, "sup-2", "Paddy Seeds", 120, 5)

	o, err := svc.Checkout("farmer-1", []service.ItemInput{
		{ProductID: urea, Quantity: 2},
		{ProductID: seeds, Quantity: 3},
	})
	require.NoError(t, err)
	assert.Equal(t, entities.OrderPending, o.Status)
	assert.Equal(t, entities.PaymentUnpaid, o.PaymentStatus)
	assert.InDelta(t, 2*300+3*120, o.TotalAmount, 1e-9)
	require.Len(t, o.Items, 2)
	assert.Equal(t, "Urea 50kg", o.Items[0].ProductName)
	assert.Equal(t, "sup-1", o.Items[0].SupplierID)

	var p entities.Product
	require.NoError(t, db.First(&p, urea).Error)
	assert.Equal(t, 8, p.Stock)

	// a later price change must not touch the placed order
	require.NoError(t, db.Model(&entities.Product{}).Where("id = ?", urea).Update("price", 999).Error)
	got, err := svc.Get("farmer-1", o.ID)
	require.NoError(t, err)
	assert.InDelta(t, 300, got.Items[0].UnitPrice, 1e-9)
}

func TestCheckoutValidation(t *testing.T) {
	svc, db := newService(t)
	id := seedProduct(t, db, "sup-1", "Urea 50kg", 300, 2)

	_, err := svc.Checkout("farmer-1", nil)
	assert.ErrorIs(t, err, service.ErrEmptyOrder)

	_, err = svc.Checkout("farmer-1", []service.ItemInput{{ProductID: id, Quantity: 0}})
	assert.ErrorIs(t, err, service.ErrEmptyOrder)

	_, err = svc.Checkout("farmer-1", []service.ItemInput{{ProductID: 9999, Quantity: 1}})
	assert.ErrorIs(t, err, service.ErrProductNotFound)

	_, err = svc.Checkout("farmer-1", []service.ItemInput{{ProductID: id, Quantity: 3}})
	assert.ErrorIs(t, err, service.ErrInsufficientStock)
}

func TestPayOnce(t *testing.T) {
	svc, db := newService(t)
	id := seedProduct(t, db, "sup-1", "Urea 50kg", 300, 10)
	o, err := svc.Checkout("farmer-1", []service.ItemInput{{ProductID: id, Quantity: 1}})
	require.NoError(t, err)

	res, err := svc.Pay("farmer-1", o.ID)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(res.PaymentRef, "UPI-"))
	assert.InDelta(t, 300, res.Amount, 1e-9)

	_, err = svc.Pay("farmer-1", o.ID)
	assert.ErrorIs(t, err, service.ErrAlreadyPaid)

	_, err = svc.Pay("someone-else", o.ID)
	assert.ErrorIs(t, err, service.ErrNotYourOrder)
}

func TestSupplierViewAndStatus(t *testing.T) {
	svc, db := newService(t)
	mine := seedProduct(t, db, "sup-1", "Urea 50kg", 300, 10)
	other := seedProduct(t, db, "sup-2", "Sprayer", 1500, 4)

	o1, err := svc.Checkout("farmer-1", []service.ItemInput{{ProductID: mine, Quantity: 1}})
	require.NoError(t, err)
	_, err = svc.Checkout("farmer-2", []service.ItemInput{{ProductID: other, Quantity: 1}})
	require.NoError(t, err)

	list, err := svc.ListForSupplier("sup-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, o1.ID, list[0].ID)

	_, err = svc.UpdateStatus("sup-1", o1.ID, "cancelled")
	assert.ErrorIs(t, err, service.ErrBadStatus)

	_, err = svc.UpdateStatus("sup-2", o1.ID, entities.OrderShipped)
	assert.ErrorIs(t, err, service.ErrNotYourOrder)

	got, err := svc.UpdateStatus("sup-1", o1.ID, entities.OrderShipped)
	require.NoError(t, err)
	assert.Equal(t, entities.OrderShipped, got.Status)

	got, err = svc.UpdateStatus("sup-1", o1.ID, entities.OrderDelivered)
	require.NoError(t, err)
	assert.Equal(t, entities.OrderDelivered, got.Status)

	// delivered is terminal
	_, err = svc.UpdateStatus("sup-1", o1.ID, entities.OrderShipped)
	assert.ErrorIs(t, err, service.ErrBadStatus)
}
