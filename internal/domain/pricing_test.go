package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriceTable_MediumTwoBags(t *testing.T) {
	quote := DefaultPriceTable().Price(BaggageSizeMedium, 2)

	// 12×2 + 2 = 26, комиссия 20% = 5.20, курьеру 20.80
	assert.Equal(t, int64(2600), quote.PriceCents)
	assert.Equal(t, int64(520), quote.CommissionCents)
	assert.Equal(t, int64(2080), quote.DriverEarningsCents)
}

func TestPriceTable_SumInvariant(t *testing.T) {
	table := DefaultPriceTable()
	sizes := []BaggageSize{BaggageSizeSmall, BaggageSizeMedium, BaggageSizeLarge, BaggageSizeXLarge}

	for _, size := range sizes {
		for count := 1; count <= 10; count++ {
			quote := table.Price(size, count)

			assert.Equal(t, quote.PriceCents, quote.CommissionCents+quote.DriverEarningsCents,
				"size=%s count=%d", size, count)
			assert.Equal(t, table.UnitCents[size]*int64(count)+table.ServiceFeeCents, quote.PriceCents,
				"size=%s count=%d", size, count)
		}
	}
}

func TestPriceTable_OddPriceStillSumsExactly(t *testing.T) {
	table := PriceTable{
		UnitCents:         map[BaggageSize]int64{BaggageSizeSmall: 333},
		ServiceFeeCents:   1,
		CommissionPercent: 20,
	}

	quote := table.Price(BaggageSizeSmall, 3)

	// 333×3 + 1 = 1000, комиссия усечённая: 200
	assert.Equal(t, int64(1000), quote.PriceCents)
	assert.Equal(t, quote.PriceCents, quote.CommissionCents+quote.DriverEarningsCents)
}

func TestBookingStatus_Terminal(t *testing.T) {
	assert.True(t, BookingStatusDelivered.Terminal())
	assert.True(t, BookingStatusCancelled.Terminal())
	assert.False(t, BookingStatusAwaitingDriver.Terminal())
	assert.False(t, BookingStatusAccepted.Terminal())
	assert.False(t, BookingStatusPickedUp.Terminal())
}
