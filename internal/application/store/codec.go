package store

import (
	"encoding/json"

	"assure/internal/application/models"
)

// EncodeData serializes each entity section of an in-progress record to
// its storage document. The record is normalized first so every section
// is written explicitly (an untouched section becomes "{}").
func EncodeData(app models.PartialApplication) (Data, error) {
	app.Normalize()
	var (
		data Data
		err  error
	)
	if data.PrimaryDriver, err = json.Marshal(app.PrimaryDriver); err != nil {
		return Data{}, err
	}
	if data.MailingAddress, err = json.Marshal(app.MailingAddress); err != nil {
		return Data{}, err
	}
	if data.GaragingAddress, err = json.Marshal(app.GaragingAddress); err != nil {
		return Data{}, err
	}
	if data.Vehicles, err = json.Marshal(app.Vehicles); err != nil {
		return Data{}, err
	}
	if data.AdditionalDrivers, err = json.Marshal(app.AdditionalDrivers); err != nil {
		return Data{}, err
	}
	return data, nil
}

// DecodeData reassembles structured partial data from the stored
// documents. An absent or undecodable section defaults to an empty
// object rather than failing the read; stored corruption must never
// take down the whole record.
func DecodeData(data Data) models.PartialApplication {
	app := models.PartialApplication{}
	decodeSection(data.PrimaryDriver, &app.PrimaryDriver)
	decodeSection(data.MailingAddress, &app.MailingAddress)
	decodeSection(data.GaragingAddress, &app.GaragingAddress)
	decodeSection(data.Vehicles, &app.Vehicles)
	decodeSection(data.AdditionalDrivers, &app.AdditionalDrivers)
	return *app.Normalize()
}

func decodeSection[T any](raw []byte, dst *T) {
	if len(raw) == 0 {
		return
	}
	var decoded T
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return
	}
	*dst = decoded
}
