package activityform

import "testing"

func TestValidateRequired(t *testing.T) {
	validate := ValidateRequired("Name")

	for _, blank := range []string{"", "   ", "\t"} {
		if err := validate(blank); err == nil {
			t.Errorf("ValidateRequired(%q) = nil, want error", blank)
		}
	}

	if err := validate("Weekly report"); err != nil {
		t.Errorf("ValidateRequired rejected non-blank input: %v", err)
	}
}
