package payload

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// CertificateRequest is the form submission. Field order is the canonical
// order used when reporting missing fields.
type CertificateRequest struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,simple_email"`
	GSTNumber       string `json:"gstNumber" validate:"required"`
	BusinessName    string `json:"businessName" validate:"required"`
	BusinessAddress string `json:"businessAddress" validate:"required"`
}

// UnmarshalJSON accepts scalar values for every field. Numbers keep their
// literal text, while null, false and zero read as empty.
func (r *CertificateRequest) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name            formValue `json:"name"`
		Email           formValue `json:"email"`
		GSTNumber       formValue `json:"gstNumber"`
		BusinessName    formValue `json:"businessName"`
		BusinessAddress formValue `json:"businessAddress"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*r = CertificateRequest{
		Name:            string(raw.Name),
		Email:           string(raw.Email),
		GSTNumber:       string(raw.GSTNumber),
		BusinessName:    string(raw.BusinessName),
		BusinessAddress: string(raw.BusinessAddress),
	}
	return nil
}

type formValue string

func (v *formValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0, bytes.Equal(data, []byte("null")), bytes.Equal(data, []byte("false")):
		*v = ""
	case bytes.Equal(data, []byte("true")):
		*v = "true"
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = formValue(s)
	case data[0] == '-' || (data[0] >= '0' && data[0] <= '9'):
		number, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			return fmt.Errorf("invalid number %s: %w", data, err)
		}
		if number == 0 {
			*v = ""
		} else {
			*v = formValue(data)
		}
	default:
		return fmt.Errorf("expected a string value, got %s", data)
	}
	return nil
}
