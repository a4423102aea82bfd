package models

// Merge applies a patch onto an existing in-progress record and returns
// the merged record. Merge depth is fixed and deliberate:
//
//   - entity structs (primaryDriver, mailingAddress, garagingAddress)
//     merge exactly one level deep: a field present on the patch replaces
//     that field wholesale, fields absent from the patch survive. The
//     nested driversLicense object counts as one field, so patching it
//     replaces the whole license, not individual license fields.
//   - the vehicles and additionalDrivers mappings merge key by key: a key
//     present on the patch replaces that entry's entire value, other keys
//     are untouched.
//
// Neither input is mutated. The result is always normalized.
func Merge(existing, patch PartialApplication) PartialApplication {
	merged := PartialApplication{
		PrimaryDriver:     mergeDriver(existing.PrimaryDriver, patch.PrimaryDriver),
		MailingAddress:    mergeAddress(existing.MailingAddress, patch.MailingAddress),
		GaragingAddress:   mergeAddress(existing.GaragingAddress, patch.GaragingAddress),
		Vehicles:          map[string]PartialVehicle{},
		AdditionalDrivers: map[string]PartialAdditionalDriver{},
	}
	for key, value := range existing.Vehicles {
		merged.Vehicles[key] = value
	}
	for key, value := range patch.Vehicles {
		merged.Vehicles[key] = value
	}
	for key, value := range existing.AdditionalDrivers {
		merged.AdditionalDrivers[key] = value
	}
	for key, value := range patch.AdditionalDrivers {
		merged.AdditionalDrivers[key] = value
	}
	return *merged.Normalize()
}

func mergeDriver(existing, patch *PartialDriver) *PartialDriver {
	merged := PartialDriver{}
	if existing != nil {
		merged = *existing
	}
	if patch == nil {
		return &merged
	}
	if patch.FirstName != nil {
		merged.FirstName = patch.FirstName
	}
	if patch.LastName != nil {
		merged.LastName = patch.LastName
	}
	if patch.DateOfBirth != nil {
		merged.DateOfBirth = patch.DateOfBirth
	}
	if patch.Gender != nil {
		merged.Gender = patch.Gender
	}
	if patch.MaritalStatus != nil {
		merged.MaritalStatus = patch.MaritalStatus
	}
	if patch.DriversLicense != nil {
		license := *patch.DriversLicense
		merged.DriversLicense = &license
	}
	return &merged
}

func mergeAddress(existing, patch *PartialAddress) *PartialAddress {
	merged := PartialAddress{}
	if existing != nil {
		merged = *existing
	}
	if patch == nil {
		return &merged
	}
	if patch.Street != nil {
		merged.Street = patch.Street
	}
	if patch.Unit != nil {
		merged.Unit = patch.Unit
	}
	if patch.City != nil {
		merged.City = patch.City
	}
	if patch.State != nil {
		merged.State = patch.State
	}
	if patch.Zip != nil {
		merged.Zip = patch.Zip
	}
	return &merged
}
