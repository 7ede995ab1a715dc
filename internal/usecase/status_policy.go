package usecase

import (
	"fmt"

	"recruitment-portal/internal/domain"
)

// Status policy names
const (
	PolicyPermissive = "permissive"
	PolicyOneWay     = "one_way"
)

// permissivePolicy lets recruiters move an application between any two
// different statuses.
type permissivePolicy struct{}

func (permissivePolicy) Allowed(from, to domain.ApplicationStatus) bool {
	return from.Valid() && to.Valid() && from != to
}

// oneWayPolicy only allows the initial decision on an unhandled application.
type oneWayPolicy struct{}

func (oneWayPolicy) Allowed(from, to domain.ApplicationStatus) bool {
	return from == domain.StatusUnhandled && (to == domain.StatusAccepted || to == domain.StatusRejected)
}

func NewStatusPolicy(name string) (domain.StatusPolicy, error) {
	switch name {
	case "", PolicyPermissive:
		return permissivePolicy{}, nil
	case PolicyOneWay:
		return oneWayPolicy{}, nil
	default:
		return nil, fmt.Errorf("unknown status policy %q", name)
	}
}
