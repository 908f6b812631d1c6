package models

import "testing"

func TestReflection_Validate(t *testing.T) {
	tests := []struct {
		name       string
		reflection Reflection
		wantErr    bool
	}{
		{
			name:       "valid",
			reflection: Reflection{ID: "r1", Day: "2026-03-02", Text: "felt good today"},
			wantErr:    false,
		},
		{
			name:       "empty text",
			reflection: Reflection{ID: "r1", Day: "2026-03-02", Text: ""},
			wantErr:    true,
		},
		{
			name:       "malformed day",
			reflection: Reflection{ID: "r1", Day: "March 2", Text: "hi"},
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.reflection.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
