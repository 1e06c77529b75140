package booking

import (
	"context"
	"sync"

	"cabadmin/models"
)

// LookupGateway is the reference-data slice of the backend.
type LookupGateway interface {
	FetchCities(ctx context.Context) ([]models.City, error)
	FetchTripTypes(ctx context.Context) ([]models.TripType, error)
	FetchVehicles(ctx context.Context) ([]models.Vehicle, error)
}

// LoadLookups fetches the three reference tables concurrently. The result is
// all-or-nothing: if any fetch fails, a LoadError is returned and no partial
// set is exposed to dependents.
func LoadLookups(ctx context.Context, gw LookupGateway) (models.LookupSet, error) {
	var (
		set  models.LookupSet
		errs [3]error
		wg   sync.WaitGroup
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		set.Cities, errs[0] = gw.FetchCities(ctx)
	}()
	go func() {
		defer wg.Done()
		set.TripTypes, errs[1] = gw.FetchTripTypes(ctx)
	}()
	go func() {
		defer wg.Done()
		set.Vehicles, errs[2] = gw.FetchVehicles(ctx)
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return models.LookupSet{}, NewLoadError(err.Error())
		}
	}
	return set, nil
}
