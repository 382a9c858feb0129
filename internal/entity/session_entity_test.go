package entity

import "testing"

func TestValidateEnvironment(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"valid indoor quiet alone", "loc_indoor,noise_quiet,crowd_alone", false},
		{"valid outdoor noisy many", "loc_outdoor,noise_noisy,crowd_many", false},
		{"valid with spaces", " loc_indoor , noise_moderate , crowd_few ", false},
		{"wrong order", "noise_quiet,loc_indoor,crowd_alone", true},
		{"two tokens", "loc_indoor,noise_quiet", true},
		{"four tokens", "loc_indoor,noise_quiet,crowd_alone,crowd_few", true},
		{"unknown location", "loc_space,noise_quiet,crowd_alone", true},
		{"unknown noise", "loc_indoor,noise_loud,crowd_alone", true},
		{"unknown crowd", "loc_indoor,noise_quiet,crowd_huge", true},
		{"empty", "", true},
		{"only commas", ",,", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEnvironment(tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateEnvironment(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
		})
	}
}

func TestParseMood(t *testing.T) {
	for _, valid := range []string{"calm", "happy", "anxious", "uncomfortable", "angry", "tired"} {
		if _, err := ParseMood(valid); err != nil {
			t.Errorf("ParseMood(%q) error = %v", valid, err)
		}
	}
	for _, invalid := range []string{"", "HAPPY", "sleepy"} {
		if _, err := ParseMood(invalid); err == nil {
			t.Errorf("ParseMood(%q) expected error", invalid)
		}
	}
}
