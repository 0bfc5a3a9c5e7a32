package service

import "testing"

func TestParsePrompt(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		wantType string
		wantCity string
		wantErr  bool
	}{
		{"simple", "kirana stores in Pune", "kirana stores", "Pune", false},
		{"uppercase in", "Restaurants IN Delhi", "Restaurants", "Delhi", false},
		{"near variant", "gyms near Indore", "gyms", "Indore", false},
		{"extra whitespace", "  salons in  Jaipur  ", "salons", "Jaipur", false},
		{"multiword city", "clinics in Navi Mumbai", "clinics", "Navi Mumbai", false},
		{"no separator", "just some words", "", "", true},
		{"empty", "", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParsePrompt(tt.query)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParsePrompt(%q) expected error", tt.query)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePrompt(%q): %v", tt.query, err)
			}
			if result.BusinessType != tt.wantType {
				t.Errorf("businessType = %q, want %q", result.BusinessType, tt.wantType)
			}
			if result.City != tt.wantCity {
				t.Errorf("city = %q, want %q", result.City, tt.wantCity)
			}
		})
	}
}
