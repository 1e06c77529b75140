package models

import "fmt"

// City is immutable reference data, loaded once per wizard session.
type City struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	State string `json:"state"`
}

// Display renders the "Name, State" string used for autocomplete matching.
func (c City) Display() string {
	return fmt.Sprintf("%s, %s", c.Name, c.State)
}

// TripType is immutable reference data.
type TripType struct {
	ID    int    `json:"id"`
	Label string `json:"label"`
}

// Vehicle is reference data; Price is an hourly rate used verbatim as booking fare.
type Vehicle struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
}

// LookupSet bundles the three reference tables every form depends on.
// Once loaded it is read-only and safe to share without locking.
type LookupSet struct {
	Cities    []City     `json:"cities"`
	TripTypes []TripType `json:"tripTypes"`
	Vehicles  []Vehicle  `json:"vehicles"`
}

// CityByID returns the city with the given id, or false if unknown.
func (l LookupSet) CityByID(id int) (City, bool) {
	for _, c := range l.Cities {
		if c.ID == id {
			return c, true
		}
	}
	return City{}, false
}

// TripTypeByID returns the trip type with the given id, or false if unknown.
func (l LookupSet) TripTypeByID(id int) (TripType, bool) {
	for _, tt := range l.TripTypes {
		if tt.ID == id {
			return tt, true
		}
	}
	return TripType{}, false
}

// VehicleByID returns the vehicle with the given id, or false if unknown.
func (l LookupSet) VehicleByID(id int) (Vehicle, bool) {
	for _, v := range l.Vehicles {
		if v.ID == id {
			return v, true
		}
	}
	return Vehicle{}, false
}
