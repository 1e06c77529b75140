package models

// Driver is the admin drivers screen's record, passed through to the backend.
type Driver struct {
	ID        int    `json:"id,omitempty"`
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	License   string `json:"license"`
	UserID    int    `json:"userId"`
	VendorID  int    `json:"vendorId"`
	VehicleID int    `json:"vehicleId,omitempty"`
}
