package kontoauszug

import "testing"

func TestValidateISIN(t *testing.T) {
	testCases := []struct {
		name    string
		isin    string
		wantErr bool
	}{
		{name: "valid US ISIN", isin: "US0378331005", wantErr: false},
		{name: "valid DE ISIN", isin: "DE0007164600", wantErr: false},
		{name: "valid IE ISIN", isin: "IE00B4L5Y983", wantErr: false},
		{name: "wrong check digit", isin: "US0378331004", wantErr: true},
		{name: "too short", isin: "US03783310", wantErr: true},
		{name: "too long", isin: "US03783310051", wantErr: true},
		{name: "lowercase prefix", isin: "us0378331005", wantErr: true},
		{name: "digits in country code", isin: "120378331005", wantErr: true},
		{name: "empty", isin: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateISIN(tc.isin)
			if gotErr := err != nil; gotErr != tc.wantErr {
				t.Errorf("ValidateISIN(%q) error = %v, wantErr %v", tc.isin, err, tc.wantErr)
			}
		})
	}
}
