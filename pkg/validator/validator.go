package validator

import (
	"net/mail"
	"strings"
)

type ValidationErrors map[string]string

func (v ValidationErrors) HasErrors() bool {
	return len(v) > 0
}

func (v ValidationErrors) Add(field, message string) {
	v[field] = message
}

var listingTypes = []string{
	"Google Voice", "TextNow", "Talkatone", "Ring4", "Sideline",
	"TextFree", "TextPlus", "TextMe", "Dingtone", "Gmail/iPhone",
	"GV Setup", "Other",
}

func ValidateLogin(name, email string) ValidationErrors {
	errs := make(ValidationErrors)

	name = strings.TrimSpace(name)
	if name == "" {
		errs.Add("name", "Name is required")
	} else if len(name) > 100 {
		errs.Add("name", "Name is too long")
	}

	email = strings.TrimSpace(email)
	if email == "" {
		errs.Add("email", "Email is required")
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs.Add("email", "Invalid email address")
	}

	return errs
}

func ValidateListing(number, listingType string, price, year, rating int) ValidationErrors {
	errs := make(ValidationErrors)

	number = strings.TrimSpace(number)
	if number == "" {
		errs.Add("number", "Number or title is required")
	} else if len(number) > 100 {
		errs.Add("number", "Number or title is too long")
	}

	valid := false
	for _, t := range listingTypes {
		if listingType == t {
			valid = true
			break
		}
	}
	if !valid {
		errs.Add("type", "Unknown listing type")
	}

	if price <= 0 {
		errs.Add("price", "Price must be greater than zero")
	}

	if year < 2000 || year > 2100 {
		errs.Add("year", "Year is out of range")
	}

	if rating < 1 || rating > 5 {
		errs.Add("rating", "Rating must be between 1 and 5")
	}

	return errs
}
