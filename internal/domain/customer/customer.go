package customer

import (
	"regexp"
	"strings"

	"github.com/BruksfildServices01/appointment-manager/internal/httperr"
)

const (
	CodeRequiredFields         = "required_fields"
	CodeInvalidPhone           = "invalid_phone"
	CodeCustomerNotFound       = "customer_not_found"
	CodeCustomerHasAppointment = "customer_has_appointments"
)

var phonePattern = regexp.MustCompile(`^\([0-9]{3}\) [0-9]{3}-[0-9]{4}$`)

// Details is everything a customer form carries. Address2 is the only
// optional field.
type Details struct {
	Name       string
	Address    string
	Address2   string
	City       string
	Country    string
	PostalCode string
	Phone      string
}

func (d Details) Normalize() Details {
	return Details{
		Name:       strings.TrimSpace(d.Name),
		Address:    strings.TrimSpace(d.Address),
		Address2:   strings.TrimSpace(d.Address2),
		City:       strings.TrimSpace(d.City),
		Country:    strings.TrimSpace(d.Country),
		PostalCode: strings.TrimSpace(d.PostalCode),
		Phone:      strings.TrimSpace(d.Phone),
	}
}

func (d Details) Validate() error {
	for _, v := range []string{d.Name, d.Address, d.City, d.Country, d.PostalCode, d.Phone} {
		if v == "" {
			return httperr.ErrBusiness(CodeRequiredFields)
		}
	}

	if !ValidPhone(d.Phone) {
		return httperr.ErrBusiness(CodeInvalidPhone)
	}

	return nil
}

// ValidPhone accepts the "(###) ###-####" layout only.
func ValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}
