package schema

import (
	"strings"
	"time"

	"assure/internal/application/models"
	"assure/internal/application/vin"
)

// Entity validators walk fields in declaration order. In partial mode a
// nil field is simply skipped; in strict mode it is "Required". A field
// that is present is checked identically in both modes.

func validateAddress(prefix string, a *models.PartialAddress, strict bool) Errors {
	var errs Errors
	errs = appendString(errs, prefix+".street", a.Street, strict, 2, 255)
	// Unit stays optional even in strict mode.
	if a.Unit != nil {
		if msg := checkStringLen(*a.Unit, 1, 10); msg != "" {
			errs = errs.add(prefix+".unit", msg)
		}
	}
	errs = appendString(errs, prefix+".city", a.City, strict, 2, 255)
	errs = appendCheck(errs, prefix+".state", a.State, strict, checkState)
	errs = appendCheck(errs, prefix+".zip", a.Zip, strict, checkZip)
	return errs
}

func validateDriver(prefix string, d *models.PartialDriver, strict bool, now time.Time) Errors {
	var errs Errors
	errs = appendString(errs, prefix+".firstName", d.FirstName, strict, 2, 255)
	errs = appendString(errs, prefix+".lastName", d.LastName, strict, 2, 255)
	errs = appendCheck(errs, prefix+".dateOfBirth", d.DateOfBirth, strict, func(v string) string {
		return checkDateOfBirth(v, now)
	})
	if d.Gender != nil {
		if msg := checkGender(*d.Gender); msg != "" {
			errs = errs.add(prefix+".gender", msg)
		}
	} else if strict {
		errs = errs.add(prefix+".gender", msgRequired)
	}
	if d.MaritalStatus != nil {
		if msg := checkMaritalStatus(*d.MaritalStatus); msg != "" {
			errs = errs.add(prefix+".maritalStatus", msg)
		}
	} else if strict {
		errs = errs.add(prefix+".maritalStatus", msgRequired)
	}
	switch {
	case d.DriversLicense != nil:
		errs = appendCheck(errs, prefix+".driversLicense.number", d.DriversLicense.Number, strict, checkLicenseNumber)
		errs = appendCheck(errs, prefix+".driversLicense.state", d.DriversLicense.State, strict, checkState)
	case strict:
		errs = errs.add(prefix+".driversLicense", msgRequired)
	}
	return errs
}

func validateAdditionalDriver(prefix string, d *models.PartialAdditionalDriver, strict bool, now time.Time) Errors {
	var errs Errors
	errs = appendString(errs, prefix+".firstName", d.FirstName, strict, 2, 255)
	errs = appendString(errs, prefix+".lastName", d.LastName, strict, 2, 255)
	errs = appendCheck(errs, prefix+".dateOfBirth", d.DateOfBirth, strict, func(v string) string {
		return checkDateOfBirth(v, now)
	})
	if d.Gender != nil {
		if msg := checkGender(*d.Gender); msg != "" {
			errs = errs.add(prefix+".gender", msg)
		}
	} else if strict {
		errs = errs.add(prefix+".gender", msgRequired)
	}
	if d.Relationship != nil {
		if msg := checkRelationship(*d.Relationship); msg != "" {
			errs = errs.add(prefix+".relationship", msg)
		}
	} else if strict {
		errs = errs.add(prefix+".relationship", msgRequired)
	}
	// Closed-object rule: the additional driver shape rejects keys
	// outside its declared set in both modes. This is where a
	// maritalStatus or driversLicense carried over from the primary
	// driver shape gets refused rather than ignored.
	if keys := d.ExtraKeys(); len(keys) > 0 {
		quoted := make([]string, len(keys))
		for i, key := range keys {
			quoted[i] = "'" + key + "'"
		}
		errs = errs.add(prefix, "Unrecognized key(s) in object: "+strings.Join(quoted, ", "))
	}
	return errs
}

func validateVehicle(prefix string, v *models.PartialVehicle, strict bool, now time.Time) Errors {
	var errs Errors
	errs = appendString(errs, prefix+".make", v.Make, strict, 2, 255)
	errs = appendString(errs, prefix+".model", v.Model, strict, 2, 255)
	if v.Year != nil {
		if msg := checkYear(*v.Year, now); msg != "" {
			errs = errs.add(prefix+".year", msg)
		}
	} else if strict {
		errs = errs.add(prefix+".year", msgRequired)
	}
	if v.VIN != nil {
		for _, msg := range vin.Validate(*v.VIN) {
			errs = errs.add(prefix+".vin", msg)
		}
	} else if strict {
		errs = errs.add(prefix+".vin", msgRequired)
	}
	return errs
}

func appendString(errs Errors, path string, value *string, strict bool, min, max int) Errors {
	if value == nil {
		if strict {
			return errs.add(path, msgRequired)
		}
		return errs
	}
	if msg := checkStringLen(*value, min, max); msg != "" {
		return errs.add(path, msg)
	}
	return errs
}

func appendCheck(errs Errors, path string, value *string, strict bool, check func(string) string) Errors {
	if value == nil {
		if strict {
			return errs.add(path, msgRequired)
		}
		return errs
	}
	if msg := check(*value); msg != "" {
		return errs.add(path, msg)
	}
	return errs
}

// --- builders: partial → strict, callable only after strict validation ------

func deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

func buildAddress(a *models.PartialAddress) models.Address {
	return models.Address{
		Street: deref(a.Street),
		Unit:   deref(a.Unit),
		City:   deref(a.City),
		State:  deref(a.State),
		Zip:    deref(a.Zip),
	}
}

func buildDriver(d *models.PartialDriver) models.Driver {
	out := models.Driver{
		FirstName:     deref(d.FirstName),
		LastName:      deref(d.LastName),
		DateOfBirth:   deref(d.DateOfBirth),
		Gender:        deref(d.Gender),
		MaritalStatus: deref(d.MaritalStatus),
	}
	if d.DriversLicense != nil {
		out.DriversLicense = models.DriversLicense{
			Number: deref(d.DriversLicense.Number),
			State:  deref(d.DriversLicense.State),
		}
	}
	return out
}

func buildAdditionalDriver(d *models.PartialAdditionalDriver) models.AdditionalDriver {
	return models.AdditionalDriver{
		FirstName:    deref(d.FirstName),
		LastName:     deref(d.LastName),
		DateOfBirth:  deref(d.DateOfBirth),
		Gender:       deref(d.Gender),
		Relationship: deref(d.Relationship),
	}
}

func buildVehicle(v *models.PartialVehicle) models.Vehicle {
	return models.Vehicle{
		Make:  deref(v.Make),
		Model: deref(v.Model),
		Year:  deref(v.Year),
		VIN:   deref(v.VIN),
	}
}
