package models

// ConfirmationSummary is the pure projection rendered by the review step.
type ConfirmationSummary struct {
	BookingDetails ConfirmationDetails `json:"bookingDetails"`
	SelectedCar    ConfirmationCar     `json:"selectedCar"`
}

type ConfirmationDetails struct {
	PickupDateTime string  `json:"pickupDateTime"` // "YYYY-MM-DD HH:mm"
	Fare           float64 `json:"fare"`
	PickupAddress  string  `json:"pickupAddress"`
	DropAddress    string  `json:"dropAddress"`
}

type ConfirmationCar struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Image string  `json:"image"`
}
