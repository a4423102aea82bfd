package schema

import "assure/internal/application/models"

func ptr[T any](v T) *T { return &v }

func validPartialDriver() *models.PartialDriver {
	return &models.PartialDriver{
		FirstName:     ptr("Test"),
		LastName:      ptr("User"),
		DateOfBirth:   ptr("1980-06-01"),
		Gender:        ptr(models.GenderMale),
		MaritalStatus: ptr(models.MaritalSingle),
		DriversLicense: &models.PartialDriversLicense{
			Number: ptr("ABC123456"),
			State:  ptr("CA"),
		},
	}
}

func validPartialAddress() *models.PartialAddress {
	return &models.PartialAddress{
		Street: ptr("123 Test St"),
		City:   ptr("Testville"),
		State:  ptr("CA"),
		Zip:    ptr("12345"),
	}
}

func validPartialVehicle() models.PartialVehicle {
	return models.PartialVehicle{
		Make:  ptr("Toyota"),
		Model: ptr("Corolla"),
		Year:  ptr(2010),
		VIN:   ptr("2C3KA53G38H165077"),
	}
}

func validPartialAdditionalDriver() models.PartialAdditionalDriver {
	return models.PartialAdditionalDriver{
		FirstName:    ptr("Jane"),
		LastName:     ptr("User"),
		DateOfBirth:  ptr("1985-01-15"),
		Gender:       ptr(models.GenderFemale),
		Relationship: ptr(models.RelationshipSpouse),
	}
}

func validPartialApplication() models.PartialApplication {
	return models.PartialApplication{
		PrimaryDriver:   validPartialDriver(),
		MailingAddress:  validPartialAddress(),
		GaragingAddress: validPartialAddress(),
		Vehicles: map[string]models.PartialVehicle{
			"ABC123": validPartialVehicle(),
		},
	}
}
