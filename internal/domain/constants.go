package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Payment event types handled by the booking core
const (
	EventCheckoutSessionCompleted = "checkout.session.completed"
)

// Checkout session metadata keys
const (
	MetadataServiceID = "serviceId"
	MetadataShopID    = "barbershopId"
	MetadataUserID    = "userId"
	MetadataDate      = "date"
)

// Booking sources for metrics
const (
	SourceDirect   = "direct"
	SourceCheckout = "checkout"
)
