// Package models defines the application aggregate in its two strictness
// variants: strict value structs (every field populated, produced only by
// successful validation) and partial pointer structs (every field
// individually optional, the shape of an in-progress record).
package models

import "encoding/json"

// Gender is a closed enumeration on drivers.
type Gender string

const (
	GenderMale      Gender = "male"
	GenderFemale    Gender = "female"
	GenderNonBinary Gender = "non-binary"
)

// MaritalStatus is a closed enumeration on the primary driver.
type MaritalStatus string

const (
	MaritalSingle   MaritalStatus = "single"
	MaritalMarried  MaritalStatus = "married"
	MaritalDivorced MaritalStatus = "divorced"
	MaritalWidowed  MaritalStatus = "widowed"
)

// Relationship is a closed enumeration on additional drivers.
type Relationship string

const (
	RelationshipSpouse  Relationship = "spouse"
	RelationshipChild   Relationship = "child"
	RelationshipParent  Relationship = "parent"
	RelationshipSibling Relationship = "sibling"
	RelationshipOther   Relationship = "other"
)

// Address is a complete postal address. It has no identity of its own;
// it is owned by the application that embeds it.
type Address struct {
	Street string `json:"street"`
	Unit   string `json:"unit,omitempty"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`
}

// DriversLicense identifies the primary driver's license.
type DriversLicense struct {
	Number string `json:"number"`
	State  string `json:"state"`
}

// Driver is the fully-populated primary driver.
type Driver struct {
	FirstName      string         `json:"firstName"`
	LastName       string         `json:"lastName"`
	DateOfBirth    string         `json:"dateOfBirth"`
	Gender         Gender         `json:"gender"`
	MaritalStatus  MaritalStatus  `json:"maritalStatus"`
	DriversLicense DriversLicense `json:"driversLicense"`
}

// AdditionalDriver is a household driver on the policy. Its strict shape
// is closed: maritalStatus and driversLicense are rejected rather than
// ignored when present on input.
type AdditionalDriver struct {
	FirstName    string       `json:"firstName"`
	LastName     string       `json:"lastName"`
	DateOfBirth  string       `json:"dateOfBirth"`
	Gender       Gender       `json:"gender"`
	Relationship Relationship `json:"relationship"`
}

// Vehicle is a fully-populated vehicle.
type Vehicle struct {
	Make  string `json:"make"`
	Model string `json:"model"`
	Year  int    `json:"year"`
	VIN   string `json:"vin"`
}

// Application is the valid aggregate shape: every entity complete,
// collection bounds enforced by schema validation.
type Application struct {
	PrimaryDriver     Driver                      `json:"primaryDriver"`
	MailingAddress    Address                     `json:"mailingAddress"`
	GaragingAddress   Address                     `json:"garagingAddress"`
	Vehicles          map[string]Vehicle          `json:"vehicles"`
	AdditionalDrivers map[string]AdditionalDriver `json:"additionalDrivers,omitempty"`
}

// CompletedApplication is the terminal shape: valid, flagged completed,
// with an assigned quote.
type CompletedApplication struct {
	Application
	Completed bool    `json:"completed"`
	Quote     float64 `json:"quote"`
}

// --- partial variants -------------------------------------------------------

// PartialAddress mirrors Address with every field optional.
type PartialAddress struct {
	Street *string `json:"street,omitempty"`
	Unit   *string `json:"unit,omitempty"`
	City   *string `json:"city,omitempty"`
	State  *string `json:"state,omitempty"`
	Zip    *string `json:"zip,omitempty"`
}

// PartialDriversLicense mirrors DriversLicense with every field optional.
type PartialDriversLicense struct {
	Number *string `json:"number,omitempty"`
	State  *string `json:"state,omitempty"`
}

// PartialDriver mirrors Driver with every field optional, recursively.
type PartialDriver struct {
	FirstName      *string                `json:"firstName,omitempty"`
	LastName       *string                `json:"lastName,omitempty"`
	DateOfBirth    *string                `json:"dateOfBirth,omitempty"`
	Gender         *Gender                `json:"gender,omitempty"`
	MaritalStatus  *MaritalStatus         `json:"maritalStatus,omitempty"`
	DriversLicense *PartialDriversLicense `json:"driversLicense,omitempty"`
}

// PartialAdditionalDriver mirrors AdditionalDriver with every field
// optional. Unrecognized JSON keys are preserved in Extra so a stored
// foreign key (say, a maritalStatus written while in progress) still
// fails the closed strict shape at submission instead of being silently
// cleaned on the next read-write cycle.
type PartialAdditionalDriver struct {
	FirstName    *string                    `json:"-"`
	LastName     *string                    `json:"-"`
	DateOfBirth  *string                    `json:"-"`
	Gender       *Gender                    `json:"-"`
	Relationship *Relationship              `json:"-"`
	Extra        map[string]json.RawMessage `json:"-"`
}

// PartialVehicle mirrors Vehicle with every field optional.
type PartialVehicle struct {
	Make  *string `json:"make,omitempty"`
	Model *string `json:"model,omitempty"`
	Year  *int    `json:"year,omitempty"`
	VIN   *string `json:"vin,omitempty"`
}

// PartialApplication is the in-progress aggregate: any subset of fields,
// each present entity itself partial. A fully assembled record (as
// returned by the lifecycle operations) always has non-nil entities and
// maps so callers see `{}` rather than null for untouched sections.
type PartialApplication struct {
	PrimaryDriver     *PartialDriver                     `json:"primaryDriver"`
	MailingAddress    *PartialAddress                    `json:"mailingAddress"`
	GaragingAddress   *PartialAddress                    `json:"garagingAddress"`
	Vehicles          map[string]PartialVehicle          `json:"vehicles"`
	AdditionalDrivers map[string]PartialAdditionalDriver `json:"additionalDrivers"`
}

// Normalize fills in nil entities and maps so the record serializes with
// every section present. Returns the receiver for chaining.
func (p *PartialApplication) Normalize() *PartialApplication {
	if p.PrimaryDriver == nil {
		p.PrimaryDriver = &PartialDriver{}
	}
	if p.MailingAddress == nil {
		p.MailingAddress = &PartialAddress{}
	}
	if p.GaragingAddress == nil {
		p.GaragingAddress = &PartialAddress{}
	}
	if p.Vehicles == nil {
		p.Vehicles = map[string]PartialVehicle{}
	}
	if p.AdditionalDrivers == nil {
		p.AdditionalDrivers = map[string]PartialAdditionalDriver{}
	}
	return p
}
