package schema

import (
	"sort"
	"time"

	"assure/internal/application/models"
)

const (
	// Collection bound messages are part of the public API contract.
	MsgVehicleRequired          = "At least one vehicle is required."
	MsgTooManyVehicles          = "No more than 3 vehicles are allowed."
	MsgTooManyAdditionalDrivers = "No more than 3 additional drivers are allowed."

	maxVehicles          = 3
	maxAdditionalDrivers = 3
)

// ValidateInProgress checks the in-progress shape: every top-level field
// optional, present entities checked in partial mode, mappings checked
// per entry with no count bounds. now anchors the calendar-dependent
// rules (age, model year).
func ValidateInProgress(app models.PartialApplication, now time.Time) Errors {
	var errs Errors
	if app.PrimaryDriver != nil {
		errs = append(errs, validateDriver("primaryDriver", app.PrimaryDriver, false, now)...)
	}
	if app.MailingAddress != nil {
		errs = append(errs, validateAddress("mailingAddress", app.MailingAddress, false)...)
	}
	if app.GaragingAddress != nil {
		errs = append(errs, validateAddress("garagingAddress", app.GaragingAddress, false)...)
	}
	for _, key := range sortedKeys(app.Vehicles) {
		vehicle := app.Vehicles[key]
		errs = append(errs, validateVehicle("vehicles."+key, &vehicle, false, now)...)
	}
	for _, key := range sortedKeys(app.AdditionalDrivers) {
		driver := app.AdditionalDrivers[key]
		errs = append(errs, validateAdditionalDriver("additionalDrivers."+key, &driver, false, now)...)
	}
	return errs
}

// ParseValid checks the valid shape (every entity required and strict,
// collection bounds enforced) and on success converts the record to its
// strict representation.
func ParseValid(app models.PartialApplication, now time.Time) (models.Application, Errors) {
	var errs Errors

	if app.PrimaryDriver != nil {
		errs = append(errs, validateDriver("primaryDriver", app.PrimaryDriver, true, now)...)
	} else {
		errs = errs.add("primaryDriver", msgRequired)
	}
	if app.MailingAddress != nil {
		errs = append(errs, validateAddress("mailingAddress", app.MailingAddress, true)...)
	} else {
		errs = errs.add("mailingAddress", msgRequired)
	}
	if app.GaragingAddress != nil {
		errs = append(errs, validateAddress("garagingAddress", app.GaragingAddress, true)...)
	} else {
		errs = errs.add("garagingAddress", msgRequired)
	}

	var vehicleErrs Errors
	for _, key := range sortedKeys(app.Vehicles) {
		vehicle := app.Vehicles[key]
		vehicleErrs = append(vehicleErrs, validateVehicle("vehicles."+key, &vehicle, true, now)...)
	}
	errs = append(errs, vehicleErrs...)
	// Count bounds apply to the collection itself and only once every
	// entry is individually valid.
	if len(vehicleErrs) == 0 {
		if len(app.Vehicles) < 1 {
			errs = errs.add("vehicles", MsgVehicleRequired)
		} else if len(app.Vehicles) > maxVehicles {
			errs = errs.add("vehicles", MsgTooManyVehicles)
		}
	}

	var additionalErrs Errors
	for _, key := range sortedKeys(app.AdditionalDrivers) {
		driver := app.AdditionalDrivers[key]
		additionalErrs = append(additionalErrs, validateAdditionalDriver("additionalDrivers."+key, &driver, true, now)...)
	}
	errs = append(errs, additionalErrs...)
	if len(additionalErrs) == 0 && len(app.AdditionalDrivers) > maxAdditionalDrivers {
		errs = errs.add("additionalDrivers", MsgTooManyAdditionalDrivers)
	}

	if len(errs) > 0 {
		return models.Application{}, errs
	}

	out := models.Application{
		PrimaryDriver:   buildDriver(app.PrimaryDriver),
		MailingAddress:  buildAddress(app.MailingAddress),
		GaragingAddress: buildAddress(app.GaragingAddress),
		Vehicles:        make(map[string]models.Vehicle, len(app.Vehicles)),
	}
	for key, vehicle := range app.Vehicles {
		out.Vehicles[key] = buildVehicle(&vehicle)
	}
	if len(app.AdditionalDrivers) > 0 {
		out.AdditionalDrivers = make(map[string]models.AdditionalDriver, len(app.AdditionalDrivers))
		for key, driver := range app.AdditionalDrivers {
			out.AdditionalDrivers[key] = buildAdditionalDriver(&driver)
		}
	}
	return out, nil
}

// ParseCompleted checks the completed shape: valid plus completed
// constrained to true and a concrete quote.
func ParseCompleted(app models.PartialApplication, completed bool, quote *float64, now time.Time) (models.CompletedApplication, Errors) {
	valid, errs := ParseValid(app, now)
	if !completed {
		errs = errs.add("completed", "Must be true")
	}
	if quote == nil {
		errs = errs.add("quote", msgRequired)
	}
	if len(errs) > 0 {
		return models.CompletedApplication{}, errs
	}
	return models.CompletedApplication{
		Application: valid,
		Completed:   true,
		Quote:       *quote,
	}, nil
}

// sortedKeys gives mapping iteration a stable order so error lists are
// deterministic.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
