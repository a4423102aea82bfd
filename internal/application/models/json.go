package models

import (
	"encoding/json"
	"sort"
)

// additionalDriverKeys are the declared fields of the (closed) additional
// driver shape. Anything else lands in Extra.
var additionalDriverKeys = map[string]struct{}{
	"firstName":    {},
	"lastName":     {},
	"dateOfBirth":  {},
	"gender":       {},
	"relationship": {},
}

// UnmarshalJSON decodes the declared fields and captures every other key
// verbatim in Extra.
func (d *PartialAdditionalDriver) UnmarshalJSON(data []byte) error {
	raw := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*d = PartialAdditionalDriver{}
	for key, value := range raw {
		var err error
		switch key {
		case "firstName":
			err = json.Unmarshal(value, &d.FirstName)
		case "lastName":
			err = json.Unmarshal(value, &d.LastName)
		case "dateOfBirth":
			err = json.Unmarshal(value, &d.DateOfBirth)
		case "gender":
			err = json.Unmarshal(value, &d.Gender)
		case "relationship":
			err = json.Unmarshal(value, &d.Relationship)
		default:
			if d.Extra == nil {
				d.Extra = map[string]json.RawMessage{}
			}
			d.Extra[key] = value
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// MarshalJSON renders the declared fields that are present followed by
// any preserved extra keys.
func (d PartialAdditionalDriver) MarshalJSON() ([]byte, error) {
	out := map[string]json.RawMessage{}
	put := func(key string, v any) error {
		b, err := json.Marshal(v)
		if err != nil {
			return err
		}
		out[key] = b
		return nil
	}
	if d.FirstName != nil {
		if err := put("firstName", d.FirstName); err != nil {
			return nil, err
		}
	}
	if d.LastName != nil {
		if err := put("lastName", d.LastName); err != nil {
			return nil, err
		}
	}
	if d.DateOfBirth != nil {
		if err := put("dateOfBirth", d.DateOfBirth); err != nil {
			return nil, err
		}
	}
	if d.Gender != nil {
		if err := put("gender", d.Gender); err != nil {
			return nil, err
		}
	}
	if d.Relationship != nil {
		if err := put("relationship", d.Relationship); err != nil {
			return nil, err
		}
	}
	for key, value := range d.Extra {
		out[key] = value
	}
	return json.Marshal(out)
}

// ExtraKeys returns the preserved unrecognized keys in sorted order, for
// deterministic validation error reporting.
func (d PartialAdditionalDriver) ExtraKeys() []string {
	keys := make([]string, 0, len(d.Extra))
	for key := range d.Extra {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
