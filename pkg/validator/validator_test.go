package validator

import "testing"

func TestValidateLogin(t *testing.T) {
	tests := []struct {
		name      string
		loginName string
		email     string
		wantField string
	}{
		{"valid", "Bob", "bob@site.com", ""},
		{"missing name", "", "bob@site.com", "name"},
		{"missing email", "Bob", "", "email"},
		{"bad email", "Bob", "not-an-email", "email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateLogin(tt.loginName, tt.email)
			if tt.wantField == "" {
				if errs.HasErrors() {
					t.Errorf("unexpected errors: %v", errs)
				}
				return
			}
			if _, ok := errs[tt.wantField]; !ok {
				t.Errorf("no error for field %q: %v", tt.wantField, errs)
			}
		})
	}
}

func TestValidateListing(t *testing.T) {
	if errs := ValidateListing("(212) 555-0199", "Google Voice", 35, 2015, 5); errs.HasErrors() {
		t.Errorf("valid listing rejected: %v", errs)
	}

	tests := []struct {
		name        string
		number      string
		listingType string
		price       int
		year        int
		rating      int
		wantField   string
	}{
		{"missing number", "", "TextNow", 10, 2020, 4, "number"},
		{"unknown type", "x", "Skype", 10, 2020, 4, "type"},
		{"zero price", "x", "TextNow", 0, 2020, 4, "price"},
		{"year too old", "x", "TextNow", 10, 1999, 4, "year"},
		{"rating too high", "x", "TextNow", 10, 2020, 6, "rating"},
		{"rating too low", "x", "TextNow", 10, 2020, 0, "rating"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateListing(tt.number, tt.listingType, tt.price, tt.year, tt.rating)
			if _, ok := errs[tt.wantField]; !ok {
				t.Errorf("no error for field %q: %v", tt.wantField, errs)
			}
		})
	}
}
