package domain

// Quote — деньги по брони в центах, посчитанные один раз при создании.
type Quote struct {
	PriceCents          int64
	CommissionCents     int64
	DriverEarningsCents int64
}

// PriceTable — фиксированная конфигурация тарифа: цена места за единицу багажа,
// сервисный сбор и процент комиссии платформы. Все суммы в центах, чтобы
// commission + driverEarnings == price выполнялось точно.
type PriceTable struct {
	UnitCents         map[BaggageSize]int64
	ServiceFeeCents   int64
	CommissionPercent int64
}

// DefaultPriceTable повторяет тариф продакшена: 8/12/18/25 за место,
// сбор 2, комиссия 20%.
func DefaultPriceTable() PriceTable {
	return PriceTable{
		UnitCents: map[BaggageSize]int64{
			BaggageSizeSmall:  800,
			BaggageSizeMedium: 1200,
			BaggageSizeLarge:  1800,
			BaggageSizeXLarge: 2500,
		},
		ServiceFeeCents:   200,
		CommissionPercent: 20,
	}
}

// Price считает стоимость брони: unitPrice(size) × count + serviceFee.
// Комиссия — целочисленная доля цены, заработок курьера — остаток,
// поэтому сумма всегда сходится с ценой без округлений.
func (t PriceTable) Price(size BaggageSize, count int) Quote {
	price := t.UnitCents[size]*int64(count) + t.ServiceFeeCents
	commission := price * t.CommissionPercent / 100

	return Quote{
		PriceCents:          price,
		CommissionCents:     commission,
		DriverEarningsCents: price - commission,
	}
}
