package schema

import (
	"encoding/json"
	"testing"

	"assure/internal/application/models"
)

func TestValidateAddressStrict(t *testing.T) {
	t.Run("complete address passes", func(t *testing.T) {
		if errs := validateAddress("mailingAddress", validPartialAddress(), true); len(errs) != 0 {
			t.Fatalf("unexpected errors: %v", errs)
		}
	})

	t.Run("unit stays optional", func(t *testing.T) {
		addr := validPartialAddress()
		addr.Unit = nil
		if errs := validateAddress("mailingAddress", addr, true); len(errs) != 0 {
			t.Fatalf("unexpected errors: %v", errs)
		}
	})

	t.Run("missing fields reported in declaration order", func(t *testing.T) {
		errs := validateAddress("mailingAddress", &models.PartialAddress{}, true)
		wantFields := []string{
			"mailingAddress.street",
			"mailingAddress.city",
			"mailingAddress.state",
			"mailingAddress.zip",
		}
		if len(errs) != len(wantFields) {
			t.Fatalf("got %d errors %v, want %d", len(errs), errs, len(wantFields))
		}
		for i, want := range wantFields {
			if errs[i].Field != want || errs[i].Message != "Required" {
				t.Fatalf("error %d = %+v, want field %s Required", i, errs[i], want)
			}
		}
	})
}

func TestValidateAddressPartial(t *testing.T) {
	t.Run("empty address passes", func(t *testing.T) {
		if errs := validateAddress("mailingAddress", &models.PartialAddress{}, false); len(errs) != 0 {
			t.Fatalf("unexpected errors: %v", errs)
		}
	})

	t.Run("present fields still checked", func(t *testing.T) {
		addr := &models.PartialAddress{Zip: ptr("9021")}
		errs := validateAddress("mailingAddress", addr, false)
		if len(errs) != 1 || errs[0].Field != "mailingAddress.zip" {
			t.Fatalf("unexpected errors: %v", errs)
		}
	})
}

func TestValidateDriverStrict(t *testing.T) {
	t.Run("complete driver passes", func(t *testing.T) {
		if errs := validateDriver("primaryDriver", validPartialDriver(), true, testNow); len(errs) != 0 {
			t.Fatalf("unexpected errors: %v", errs)
		}
	})

	t.Run("missing license object is a single error", func(t *testing.T) {
		driver := validPartialDriver()
		driver.DriversLicense = nil
		errs := validateDriver("primaryDriver", driver, true, testNow)
		if len(errs) != 1 || errs[0].Field != "primaryDriver.driversLicense" {
			t.Fatalf("unexpected errors: %v", errs)
		}
	})

	t.Run("nested license fields use dotted paths", func(t *testing.T) {
		driver := validPartialDriver()
		driver.DriversLicense = &models.PartialDriversLicense{Number: ptr("bad")}
		errs := validateDriver("primaryDriver", driver, true, testNow)
		if len(errs) != 2 {
			t.Fatalf("unexpected errors: %v", errs)
		}
		if errs[0].Field != "primaryDriver.driversLicense.number" {
			t.Fatalf("unexpected first error: %+v", errs[0])
		}
		if errs[1].Field != "primaryDriver.driversLicense.state" || errs[1].Message != "Required" {
			t.Fatalf("unexpected second error: %+v", errs[1])
		}
	})

	t.Run("bad enum values rejected", func(t *testing.T) {
		driver := validPartialDriver()
		driver.Gender = ptr(models.Gender("robot"))
		driver.MaritalStatus = ptr(models.MaritalStatus("complicated"))
		errs := validateDriver("primaryDriver", driver, true, testNow)
		if len(errs) != 2 {
			t.Fatalf("unexpected errors: %v", errs)
		}
	})
}

// Strict/partial duality: a strictly-valid entity always passes partial
// validation; the converse need not hold.
func TestStrictImpliesPartial(t *testing.T) {
	driver := validPartialDriver()
	if errs := validateDriver("d", driver, true, testNow); len(errs) != 0 {
		t.Fatalf("fixture must be strictly valid: %v", errs)
	}
	if errs := validateDriver("d", driver, false, testNow); len(errs) != 0 {
		t.Fatalf("strictly valid driver must pass partial validation: %v", errs)
	}

	sparse := &models.PartialDriver{FirstName: ptr("Jo")}
	if errs := validateDriver("d", sparse, false, testNow); len(errs) != 0 {
		t.Fatalf("sparse driver must pass partial validation: %v", errs)
	}
	if errs := validateDriver("d", sparse, true, testNow); len(errs) == 0 {
		t.Fatalf("sparse driver must fail strict validation")
	}
}

func TestValidateAdditionalDriverClosedObject(t *testing.T) {
	var driver models.PartialAdditionalDriver
	payload := `{
		"firstName": "Jane",
		"lastName": "User",
		"dateOfBirth": "1985-01-15",
		"gender": "female",
		"relationship": "spouse",
		"maritalStatus": "single",
		"driversLicense": {"number": "ABC123456", "state": "CA"}
	}`
	if err := json.Unmarshal([]byte(payload), &driver); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	errs := validateAdditionalDriver("additionalDrivers.X1", &driver, true, testNow)
	if len(errs) != 1 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if errs[0].Field != "additionalDrivers.X1" {
		t.Fatalf("unexpected field: %s", errs[0].Field)
	}
	want := "Unrecognized key(s) in object: 'driversLicense', 'maritalStatus'"
	if errs[0].Message != want {
		t.Fatalf("message = %q, want %q", errs[0].Message, want)
	}

	// The same keys are legal on the primary driver shape.
	primary := validPartialDriver()
	if errs := validateDriver("primaryDriver", primary, true, testNow); len(errs) != 0 {
		t.Fatalf("unexpected errors on primary driver: %v", errs)
	}
}

func TestValidateAdditionalDriverPartialStaysClosed(t *testing.T) {
	var driver models.PartialAdditionalDriver
	if err := json.Unmarshal([]byte(`{"maritalStatus": "single"}`), &driver); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	errs := validateAdditionalDriver("additionalDrivers.X1", &driver, false, testNow)
	if len(errs) != 1 || errs[0].Message != "Unrecognized key(s) in object: 'maritalStatus'" {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

func TestValidateVehicle(t *testing.T) {
	t.Run("complete vehicle passes", func(t *testing.T) {
		vehicle := validPartialVehicle()
		if errs := validateVehicle("vehicles.A", &vehicle, true, testNow); len(errs) != 0 {
			t.Fatalf("unexpected errors: %v", errs)
		}
	})

	t.Run("bad check digit is its own error", func(t *testing.T) {
		vehicle := validPartialVehicle()
		vehicle.VIN = ptr("2C3KA53G48H165077") // check digit 3 -> 4
		errs := validateVehicle("vehicles.A", &vehicle, true, testNow)
		if len(errs) != 1 || errs[0].Message != "Invalid VIN check digit" {
			t.Fatalf("unexpected errors: %v", errs)
		}
	})

	t.Run("length and charset and check digit reported together", func(t *testing.T) {
		vehicle := validPartialVehicle()
		vehicle.VIN = ptr("2C3KA53G38H16507I")
		errs := validateVehicle("vehicles.A", &vehicle, true, testNow)
		if len(errs) != 2 {
			t.Fatalf("unexpected errors: %v", errs)
		}
		for _, fe := range errs {
			if fe.Field != "vehicles.A.vin" {
				t.Fatalf("unexpected field: %s", fe.Field)
			}
		}
	})

	t.Run("year bounds", func(t *testing.T) {
		vehicle := validPartialVehicle()
		vehicle.Year = ptr(1984)
		if errs := validateVehicle("vehicles.A", &vehicle, true, testNow); len(errs) != 1 {
			t.Fatalf("unexpected errors: %v", errs)
		}
	})
}
