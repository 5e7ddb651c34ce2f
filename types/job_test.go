package types

import (
	"reflect"
	"testing"
)

func TestJobUpdateFields_Empty(t *testing.T) {
	columns, values := JobUpdate{}.Fields()
	if len(columns) != 0 || len(values) != 0 {
		t.Fatalf("expected no fields, got %v / %v", columns, values)
	}
}

func TestJobUpdateFields_SkipsEmptyStrings(t *testing.T) {
	update := JobUpdate{
		CompanyName: "Acme",
		Location:    "Berlin",
	}

	columns, values := update.Fields()
	wantColumns := []string{"company_name", "location"}
	wantValues := []any{"Acme", "Berlin"}
	if !reflect.DeepEqual(columns, wantColumns) {
		t.Fatalf("columns mismatch: got %v want %v", columns, wantColumns)
	}
	if !reflect.DeepEqual(values, wantValues) {
		t.Fatalf("values mismatch: got %v want %v", values, wantValues)
	}
}

func TestJobUpdateFields_AllProvided(t *testing.T) {
	update := JobUpdate{
		CompanyName:    "Acme",
		LogoURL:        "l",
		JobPosition:    "Eng",
		MonthlySalary:  "1000",
		JobType:        "Full-time",
		RemoteOffice:   "Remote",
		Location:       "Berlin",
		JobDescription: "d",
		AboutCompany:   "a",
		SkillsRequired: "s",
		AdditionalInfo: "i",
	}

	columns, _ := update.Fields()
	if len(columns) != 11 {
		t.Fatalf("expected 11 columns, got %d: %v", len(columns), columns)
	}
}
