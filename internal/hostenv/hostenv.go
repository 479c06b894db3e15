package hostenv

import "strings"

const (
	Development = "Development"
	Staging     = "Staging"
	Production  = "Production"
)

// Environment is the name of the hosting environment the service runs in.
// Comparisons are case-insensitive, so "development" and "Development" are the same environment.
type Environment string

// New returns the environment for name. An empty name means Production.
func New(name string) Environment {
	name = strings.TrimSpace(name)
	if name == "" {
		return Production
	}
	return Environment(name)
}

// Name returns the environment name as configured.
func (e Environment) Name() string {
	if e == "" {
		return Production
	}
	return string(e)
}

// Is reports whether the environment matches name, ignoring case.
func (e Environment) Is(name string) bool {
	return strings.EqualFold(e.Name(), name)
}

func (e Environment) IsDevelopment() bool {
	return e.Is(Development)
}

func (e Environment) IsStaging() bool {
	return e.Is(Staging)
}

func (e Environment) IsProduction() bool {
	return e.Is(Production)
}

func (e Environment) String() string {
	return e.Name()
}
