package order

// Status represents the workflow stage of an order.
// The set is open: any non-empty value is accepted, the constants below
// are the catalogue the portal ships with.
type Status string

const (
	StatusDevelopment  Status = "development"
	StatusOffice       Status = "office"
	StatusWorkshop     Status = "workshop"
	StatusInstallation Status = "installation"
	StatusDone         Status = "done"
)

// DefaultStatus is assigned to new orders when no status is given
const DefaultStatus = StatusDevelopment

// CatalogStatuses returns the built-in status catalogue in workflow order
func CatalogStatuses() []Status {
	return []Status{StatusDevelopment, StatusOffice, StatusWorkshop, StatusInstallation, StatusDone}
}

// IsKnown reports whether the status belongs to the built-in catalogue
func (s Status) IsKnown() bool {
	switch s {
	case StatusDevelopment, StatusOffice, StatusWorkshop, StatusInstallation, StatusDone:
		return true
	}
	return false
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// DisplayName returns a human-readable label for catalogue statuses,
// falling back to the raw value for custom ones
func (s Status) DisplayName() string {
	switch s {
	case StatusDevelopment:
		return "Development"
	case StatusOffice:
		return "Office"
	case StatusWorkshop:
		return "Workshop"
	case StatusInstallation:
		return "Installation"
	case StatusDone:
		return "Done"
	}
	return string(s)
}

// TransitionPolicy decides whether an order may move between two statuses.
// There is no fixed transition graph; deployments can plug in their own rules.
type TransitionPolicy interface {
	CanTransition(from, to Status) error
}

// PermissivePolicy allows every transition between non-empty statuses
type PermissivePolicy struct{}

// CanTransition implements TransitionPolicy
func (PermissivePolicy) CanTransition(from, to Status) error {
	return nil
}
