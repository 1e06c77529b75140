package booking

import (
	"fmt"

	"cabadmin/models"
)

// BuildConfirmation projects the reviewed selection into the summary the
// confirmation view renders. It has no side effects and performs no further
// validation.
func BuildConfirmation(session *models.WizardSession) *models.ConfirmationSummary {
	intent := session.Intent
	summary := &models.ConfirmationSummary{
		BookingDetails: models.ConfirmationDetails{
			PickupDateTime: fmt.Sprintf("%s %s", intent.PickupDate, intent.PickupTime),
			Fare:           session.Fare,
			PickupAddress:  intent.PickupLocation,
			DropAddress:    intent.DropLocation,
		},
	}
	if vehicle, ok := session.Lookups.VehicleByID(session.SelectedVehicleID); ok {
		summary.SelectedCar = models.ConfirmationCar{
			Name:  vehicle.Name,
			Price: vehicle.Price,
			Image: vehicle.Image,
		}
	}
	return summary
}
