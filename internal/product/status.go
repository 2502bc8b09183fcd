package product

import "fmt"

// StatusKind tags a Status value.
type StatusKind int

const (
	StatusUnknown StatusKind = iota
	StatusActive
	StatusExpired
	StatusNotStarted
	StatusLicensed
)

// Status is the inferred license or trial state of an install.
// DaysRemaining is only meaningful when Kind is StatusActive.
type Status struct {
	Kind          StatusKind
	DaysRemaining uint
}

// Constructors for each Status variant.
func Active(days uint) Status { return Status{Kind: StatusActive, DaysRemaining: days} }
func Expired() Status         { return Status{Kind: StatusExpired} }
func NotStarted() Status      { return Status{Kind: StatusNotStarted} }
func Licensed() Status        { return Status{Kind: StatusLicensed} }
func Unknown() Status         { return Status{Kind: StatusUnknown} }

func (s Status) String() string {
	switch s.Kind {
	case StatusActive:
		return fmt.Sprintf("Active (%d days)", s.DaysRemaining)
	case StatusExpired:
		return "Expired"
	case StatusNotStarted:
		return "Not Started"
	case StatusLicensed:
		return "Licensed"
	default:
		return "Unknown"
	}
}
