package models

// AdminCity is the cities screen's record. It is a different shape from the
// wizard's City lookup row: the admin table carries branding and an
// active/inactive flag instead of the state name.
type AdminCity struct {
	ID      int    `json:"id,omitempty"`
	Name    string `json:"name"`
	LogoURL string `json:"logo_url"`
	Status  bool   `json:"status"`
}

// AdminVehicle is the vehicles screen's record, passed through to the backend.
type AdminVehicle struct {
	ID                 int     `json:"id,omitempty"`
	Name               string  `json:"name"`
	Model              string  `json:"model"`
	Image              string  `json:"image"`
	Capacity           int     `json:"capacity"`
	Price              float64 `json:"price"`
	OriginalPrice      float64 `json:"originalPrice"`
	RegistrationNumber string  `json:"registrationNumber"`
	VendorID           int     `json:"vendorId,omitempty"`
	DriverID           int     `json:"driverId,omitempty"`
	CreatedAt          string  `json:"createdAt,omitempty"`
	UpdatedAt          string  `json:"updatedAt,omitempty"`
}

// RegistrationCheck is the backend's verdict on a registration number.
type RegistrationCheck struct {
	Exists bool `json:"exists"`
}
