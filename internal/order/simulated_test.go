package order_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/omkaralabs/divinestore/internal/order"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSubmission() order.Submission {
	return order.Submission{
		Items: []order.Item{
			{ProductID: "p1", Name: "Rudraksha Mala", Price: 1100, Quantity: 2, LineTotal: 2200},
		},
		TotalPrice: 2200,
		Contact: order.Contact{
			Name:  "Asha Iyer",
			Email: "asha@example.com",
			Phone: "+91 98765 43210",
		},
		Shipping: order.ShippingAddress{
			Address: "12 Temple Street",
			City:    "Mumbai",
			Pincode: "400001",
		},
		PaymentMethod: "cod",
	}
}

func TestSimulatedSink_Submit_Succeeds(t *testing.T) {
	sink := order.NewSimulatedSink(5 * time.Millisecond)

	conf, err := sink.Submit(context.Background(), testSubmission())

	require.NoError(t, err)
	require.NotNil(t, conf)
	assert.NotEmpty(t, conf.OrderID)
	assert.True(t, strings.HasPrefix(conf.OrderNumber, "OMG"))
	assert.Len(t, conf.OrderNumber, 11, "OMG prefix plus eight timestamp digits")
	assert.Equal(t, int64(2200), conf.TotalPrice)
	assert.False(t, conf.PlacedAt.IsZero())
}

func TestSimulatedSink_Submit_WaitsForDelay(t *testing.T) {
	delay := 30 * time.Millisecond
	sink := order.NewSimulatedSink(delay)

	start := time.Now()
	_, err := sink.Submit(context.Background(), testSubmission())

	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), delay)
}

func TestSimulatedSink_Submit_EmptySubmission(t *testing.T) {
	sink := order.NewSimulatedSink(0)

	conf, err := sink.Submit(context.Background(), order.Submission{})

	assert.ErrorIs(t, err, order.ErrNoItems)
	assert.Nil(t, conf)
}

func TestSimulatedSink_Submit_HonorsCancellation(t *testing.T) {
	sink := order.NewSimulatedSink(5 * time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	conf, err := sink.Submit(ctx, testSubmission())

	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, conf)
	assert.Less(t, time.Since(start), time.Second)
}
