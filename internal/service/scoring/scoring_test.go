package scoring

import "testing"

func TestComputeScoreStrongLead(t *testing.T) {
	result := ComputeScore(LeadSignals{
		Phone:          "9876543210",
		Address:        "12 MG Road, Indiranagar, Bengaluru",
		HasWhatsapp:    true,
		CategoryMapped: true,
		StateKnown:     true,
	})

	if result.Total != 100 {
		t.Fatalf("expected total 100, got %d (breakdown %v)", result.Total, result.Breakdown)
	}
	if result.Breakdown[categoryContact] != 40 {
		t.Errorf("contact quality = %d, want 40", result.Breakdown[categoryContact])
	}
	if result.Breakdown[categoryAddress] != 30 {
		t.Errorf("address completeness = %d, want 30", result.Breakdown[categoryAddress])
	}
	if result.Breakdown[categoryProfile] != 30 {
		t.Errorf("profile fit = %d, want 30", result.Breakdown[categoryProfile])
	}
}

func TestComputeScoreWeakLead(t *testing.T) {
	result := ComputeScore(LeadSignals{
		Phone:   "12345",
		Address: "Delhi",
	})

	if result.Breakdown[categoryAddress] != 0 {
		t.Errorf("short address should score 0, got %d", result.Breakdown[categoryAddress])
	}
	if result.Breakdown[categoryProfile] != 0 {
		t.Errorf("unmapped profile should score 0, got %d", result.Breakdown[categoryProfile])
	}
	if result.Total > 15 {
		t.Errorf("weak lead total = %d, want <= 15", result.Total)
	}
}

func TestComputeScoreEmptyPhone(t *testing.T) {
	result := ComputeScore(LeadSignals{Phone: ""})
	if result.Breakdown[categoryContact] != 0 {
		t.Errorf("empty phone contact score = %d, want 0", result.Breakdown[categoryContact])
	}
}

func TestScoreAddressCompleteness(t *testing.T) {
	tests := []struct {
		name    string
		address string
		want    int
	}{
		{"empty", "", 0},
		{"too short", "Mumbai", 0},
		{"plain street", "Main Market Road Extension", 10},
		{"letters and digits", "Shop 42 Main Market Road", 20},
		{"full address", "Shop 42, Main Market Road, Pune", 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := scoreAddressCompleteness(tt.address); got != tt.want {
				t.Errorf("scoreAddressCompleteness(%q) = %d, want %d", tt.address, got, tt.want)
			}
		})
	}
}

func TestPhoneQuality(t *testing.T) {
	possible, valid := phoneQuality("9876543210")
	if !possible || !valid {
		t.Errorf("mobile number should be possible and valid, got possible=%v valid=%v", possible, valid)
	}

	if _, valid := phoneQuality("12345"); valid {
		t.Errorf("five digit string should not be a valid number")
	}
}
