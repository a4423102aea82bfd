package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestMergeEntityFieldsSurvive(t *testing.T) {
	existing := PartialApplication{
		MailingAddress: &PartialAddress{
			Street: ptr("123 Test St"),
			City:   ptr("Testville"),
			State:  ptr("CA"),
		},
	}
	patch := PartialApplication{
		MailingAddress: &PartialAddress{Zip: ptr("99999")},
	}

	merged := Merge(existing, patch)

	require.NotNil(t, merged.MailingAddress)
	assert.Equal(t, "123 Test St", *merged.MailingAddress.Street)
	assert.Equal(t, "Testville", *merged.MailingAddress.City)
	assert.Equal(t, "CA", *merged.MailingAddress.State)
	assert.Equal(t, "99999", *merged.MailingAddress.Zip)
}

func TestMergePatchFieldWins(t *testing.T) {
	existing := PartialApplication{
		PrimaryDriver: &PartialDriver{
			FirstName: ptr("Old"),
			LastName:  ptr("Name"),
		},
	}
	patch := PartialApplication{
		PrimaryDriver: &PartialDriver{FirstName: ptr("New")},
	}

	merged := Merge(existing, patch)

	assert.Equal(t, "New", *merged.PrimaryDriver.FirstName)
	assert.Equal(t, "Name", *merged.PrimaryDriver.LastName)
}

// The nested license object merges as one field: patching it replaces
// the whole license, it does not merge license sub-fields.
func TestMergeLicenseReplacedWholesale(t *testing.T) {
	existing := PartialApplication{
		PrimaryDriver: &PartialDriver{
			DriversLicense: &PartialDriversLicense{
				Number: ptr("ABC123456"),
				State:  ptr("CA"),
			},
		},
	}
	patch := PartialApplication{
		PrimaryDriver: &PartialDriver{
			DriversLicense: &PartialDriversLicense{State: ptr("NY")},
		},
	}

	merged := Merge(existing, patch)

	require.NotNil(t, merged.PrimaryDriver.DriversLicense)
	assert.Nil(t, merged.PrimaryDriver.DriversLicense.Number, "license merges as a single field")
	assert.Equal(t, "NY", *merged.PrimaryDriver.DriversLicense.State)
}

func TestMergeMappingsMergeByKey(t *testing.T) {
	existing := PartialApplication{
		Vehicles: map[string]PartialVehicle{
			"A": {Make: ptr("Toyota"), Model: ptr("Corolla")},
			"B": {Make: ptr("Honda")},
		},
	}
	patch := PartialApplication{
		Vehicles: map[string]PartialVehicle{
			"A": {Make: ptr("Ford")},
			"C": {Make: ptr("Tesla")},
		},
	}

	merged := Merge(existing, patch)

	require.Len(t, merged.Vehicles, 3)
	// Key A is replaced as a whole: the old model does not survive.
	assert.Equal(t, "Ford", *merged.Vehicles["A"].Make)
	assert.Nil(t, merged.Vehicles["A"].Model)
	assert.Equal(t, "Honda", *merged.Vehicles["B"].Make)
	assert.Equal(t, "Tesla", *merged.Vehicles["C"].Make)
}

func TestMergeAbsentPatchSectionsUntouched(t *testing.T) {
	existing := PartialApplication{
		PrimaryDriver:  &PartialDriver{FirstName: ptr("Test")},
		MailingAddress: &PartialAddress{City: ptr("Testville")},
	}

	merged := Merge(existing, PartialApplication{})

	assert.Equal(t, "Test", *merged.PrimaryDriver.FirstName)
	assert.Equal(t, "Testville", *merged.MailingAddress.City)
}

func TestMergeResultIsNormalized(t *testing.T) {
	merged := Merge(PartialApplication{}, PartialApplication{})
	assert.NotNil(t, merged.PrimaryDriver)
	assert.NotNil(t, merged.MailingAddress)
	assert.NotNil(t, merged.GaragingAddress)
	assert.NotNil(t, merged.Vehicles)
	assert.NotNil(t, merged.AdditionalDrivers)
}

func TestMergeDoesNotMutateInputs(t *testing.T) {
	existing := PartialApplication{
		PrimaryDriver: &PartialDriver{FirstName: ptr("Old")},
		Vehicles:      map[string]PartialVehicle{"A": {Make: ptr("Toyota")}},
	}
	patch := PartialApplication{
		PrimaryDriver: &PartialDriver{FirstName: ptr("New")},
		Vehicles:      map[string]PartialVehicle{"A": {Make: ptr("Ford")}},
	}

	_ = Merge(existing, patch)

	assert.Equal(t, "Old", *existing.PrimaryDriver.FirstName)
	assert.Equal(t, "Toyota", *existing.Vehicles["A"].Make)
}
