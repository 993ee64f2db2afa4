package main

import (
	"testing"
)

func TestGetCommand(t *testing.T) {
	tests := []struct {
		name        string
		roster      string
		id          string
		asOf        string
		wantErr     bool
		wantContain []string
		wantJSON    bool
	}{
		{
			name:        "get by id",
			roster:      "roster.csv",
			id:          "1",
			wantContain: []string{"Alice", "Smith", "1990-05-15", "34 (as of 2025-01-01)"},
		},
		{
			name:        "get from yaml",
			roster:      "roster.yaml",
			id:          "2",
			wantContain: []string{"Bob", "Johnson", "39"},
		},
		{
			name:        "get as JSON",
			roster:      "roster.json",
			id:          "4",
			wantJSON:    true,
			wantContain: []string{`"id": 4`, `"last_name": "Williams"`, `"age": 24`},
		},
		{
			name:        "age on the birthday",
			roster:      "roster.csv",
			id:          "1",
			asOf:        "2025-05-15",
			wantContain: []string{"35 (as of 2025-05-15)"},
		},
		{
			name:    "unknown id",
			roster:  "roster.csv",
			id:      "99",
			wantErr: true,
		},
		{
			name:    "non-numeric id",
			roster:  "roster.csv",
			id:      "abc",
			wantErr: true,
		},
		{
			name:    "bad as-of",
			roster:  "roster.csv",
			id:      "1",
			asOf:    "2025-13-01",
			wantErr: true,
		},
		{
			name:    "invalid roster",
			roster:  "roster-invalid.csv",
			id:      "1",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			jsonOut = tt.wantJSON
			if tt.asOf != "" {
				asOf = tt.asOf
			}

			args := []string{testRosterPath(t, tt.roster), tt.id}

			output, err := captureOutput(t, func() error {
				return runGet(args)
			})

			if (err != nil) != tt.wantErr {
				t.Errorf("runGet() error = %v, wantErr %v\nOutput: %s", err, tt.wantErr, output)
				return
			}

			if tt.wantJSON && !tt.wantErr {
				assertJSON(t, output)
			}

			assertContains(t, output, tt.wantContain)
		})
	}
}

func TestGetCommand_NotFoundMessage(t *testing.T) {
	resetFlags()
	_, err := captureOutput(t, func() error {
		return runGet([]string{testRosterPath(t, "roster.csv"), "99"})
	})
	if err == nil || err.Error() != "person 99 not found" {
		t.Errorf("runGet() error = %v, want %q", err, "person 99 not found")
	}
}
