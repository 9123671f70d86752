package acapacity

import "github.com/Masterminds/semver/v3"

// SupportedFixtureSchema is the semver constraint fixture documents'
// schema_version must satisfy to be loaded (spec §6's test fixture schema).
// ajson's fixture loader decodes a document, then checks its declared
// schema_version against this before validating or running its
// rule/exception/expected rows, so that a fixture
// written for an incompatible engine revision fails fast with a clear
// error instead of silently misinterpreting columns.
var SupportedFixtureSchema = mustConstraint("^1.0.0")

func mustConstraint(s string) *semver.Constraints {
	c, err := semver.NewConstraint(s)
	if err != nil {
		panic("acapacity: invalid fixture schema constraint: " + err.Error())
	}
	return c
}
