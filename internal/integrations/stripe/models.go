package stripe

// CheckoutRequest параметры платежной сессии за одну услугу
type CheckoutRequest struct {
	ShopName      string
	ServiceName   string
	Description   string
	ImageURL      string
	AmountInCents int64
	Metadata      map[string]string
}

// CheckoutSession созданная или полученная платежная сессия
type CheckoutSession struct {
	ID            string
	URL           string
	PaymentStatus string
	Metadata      map[string]string
}

// Event проверенное событие вебхука
// Session заполнена только для событий checkout-сессий
type Event struct {
	ID      string
	Type    string
	Session *CheckoutSession
}

// Refund результат возврата средств
type Refund struct {
	ID     string
	Status string
}
