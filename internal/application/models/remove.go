package models

import (
	"encoding/json"
	"strings"
)

// RemovePath removes the leaf named by a dot-separated path from an
// in-progress record and returns the result. Only the leaf goes away:
// siblings and ancestor objects stay, even when the ancestor ends up
// empty. A path whose intermediate segments do not resolve to an object
// is a no-op, not an error. The input is not mutated.
func RemovePath(app PartialApplication, path string) PartialApplication {
	out := copyPartial(app)
	segments := strings.Split(path, ".")

	switch segments[0] {
	case "primaryDriver":
		if len(segments) == 1 {
			out.PrimaryDriver = &PartialDriver{}
			return out
		}
		removeDriverField(out.PrimaryDriver, segments[1:])
	case "mailingAddress":
		if len(segments) == 1 {
			out.MailingAddress = &PartialAddress{}
			return out
		}
		removeAddressField(out.MailingAddress, segments[1:])
	case "garagingAddress":
		if len(segments) == 1 {
			out.GaragingAddress = &PartialAddress{}
			return out
		}
		removeAddressField(out.GaragingAddress, segments[1:])
	case "vehicles":
		if len(segments) == 1 {
			out.Vehicles = map[string]PartialVehicle{}
			return out
		}
		removeVehicleEntry(out.Vehicles, segments[1:])
	case "additionalDrivers":
		if len(segments) == 1 {
			out.AdditionalDrivers = map[string]PartialAdditionalDriver{}
			return out
		}
		removeAdditionalDriverEntry(out.AdditionalDrivers, segments[1:])
	}
	return out
}

func removeDriverField(d *PartialDriver, segments []string) {
	if d == nil {
		return
	}
	if len(segments) == 1 {
		switch segments[0] {
		case "firstName":
			d.FirstName = nil
		case "lastName":
			d.LastName = nil
		case "dateOfBirth":
			d.DateOfBirth = nil
		case "gender":
			d.Gender = nil
		case "maritalStatus":
			d.MaritalStatus = nil
		case "driversLicense":
			d.DriversLicense = nil
		}
		return
	}
	if segments[0] == "driversLicense" && len(segments) == 2 && d.DriversLicense != nil {
		switch segments[1] {
		case "number":
			d.DriversLicense.Number = nil
		case "state":
			d.DriversLicense.State = nil
		}
	}
}

func removeAddressField(a *PartialAddress, segments []string) {
	if a == nil || len(segments) != 1 {
		return
	}
	switch segments[0] {
	case "street":
		a.Street = nil
	case "unit":
		a.Unit = nil
	case "city":
		a.City = nil
	case "state":
		a.State = nil
	case "zip":
		a.Zip = nil
	}
}

func removeVehicleEntry(vehicles map[string]PartialVehicle, segments []string) {
	key := segments[0]
	if len(segments) == 1 {
		delete(vehicles, key)
		return
	}
	vehicle, ok := vehicles[key]
	if !ok || len(segments) != 2 {
		return
	}
	switch segments[1] {
	case "make":
		vehicle.Make = nil
	case "model":
		vehicle.Model = nil
	case "year":
		vehicle.Year = nil
	case "vin":
		vehicle.VIN = nil
	}
	vehicles[key] = vehicle
}

func removeAdditionalDriverEntry(drivers map[string]PartialAdditionalDriver, segments []string) {
	key := segments[0]
	if len(segments) == 1 {
		delete(drivers, key)
		return
	}
	driver, ok := drivers[key]
	if !ok || len(segments) != 2 {
		return
	}
	switch segments[1] {
	case "firstName":
		driver.FirstName = nil
	case "lastName":
		driver.LastName = nil
	case "dateOfBirth":
		driver.DateOfBirth = nil
	case "gender":
		driver.Gender = nil
	case "relationship":
		driver.Relationship = nil
	default:
		if driver.Extra != nil {
			extra := make(map[string]json.RawMessage, len(driver.Extra))
			for k, v := range driver.Extra {
				extra[k] = v
			}
			delete(extra, segments[1])
			driver.Extra = extra
		}
	}
	drivers[key] = driver
}

// copyPartial deep-copies the record far enough that RemovePath never
// aliases mutable state with its input.
func copyPartial(app PartialApplication) PartialApplication {
	out := PartialApplication{}
	if app.PrimaryDriver != nil {
		driver := *app.PrimaryDriver
		if driver.DriversLicense != nil {
			license := *driver.DriversLicense
			driver.DriversLicense = &license
		}
		out.PrimaryDriver = &driver
	}
	if app.MailingAddress != nil {
		addr := *app.MailingAddress
		out.MailingAddress = &addr
	}
	if app.GaragingAddress != nil {
		addr := *app.GaragingAddress
		out.GaragingAddress = &addr
	}
	if app.Vehicles != nil {
		out.Vehicles = make(map[string]PartialVehicle, len(app.Vehicles))
		for k, v := range app.Vehicles {
			out.Vehicles[k] = v
		}
	}
	if app.AdditionalDrivers != nil {
		out.AdditionalDrivers = make(map[string]PartialAdditionalDriver, len(app.AdditionalDrivers))
		for k, v := range app.AdditionalDrivers {
			out.AdditionalDrivers[k] = v
		}
	}
	return out
}
