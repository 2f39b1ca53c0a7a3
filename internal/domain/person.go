package domain

// PersonInput is the per-person quoting request as it arrives from a
// form, file, or API call. Fields are kept close to the wire: the date
// of birth and package tier stay raw strings because malformed values
// are an expected case and must degrade to a zero quote rather than
// reject the request.
type PersonInput struct {
	Name        string `yaml:"name,omitempty" json:"name,omitempty"`
	DateOfBirth string `yaml:"date_of_birth" json:"date_of_birth"`
	Gender      string `yaml:"gender" json:"gender"`
	// Package is the requested tier, "1" through "5". Anything that does
	// not parse into that range resolves to "no rate".
	Package         string `yaml:"package" json:"package"`
	CriticalIllness bool   `yaml:"critical_illness" json:"critical_illness"`
	Maternity       bool   `yaml:"maternity" json:"maternity"`
}
