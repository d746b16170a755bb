package clients

import (
	"errors"
	"fmt"
	"strings"
)

// Target is the resolved set of IDEs to install for in one run
type Target string

const (
	TargetCursor   Target = ClientIDCursor
	TargetWindsurf Target = ClientIDWindsurf
	TargetBoth     Target = "both"
)

// ErrInvalidTarget is returned for any value outside the closed target set
var ErrInvalidTarget = errors.New("invalid IDE target")

// AllTargets returns the closed set of targets in menu order
func AllTargets() []Target {
	ids := AllClientIDs()
	targets := make([]Target, 0, len(ids)+1)
	for _, id := range ids {
		targets = append(targets, Target(id))
	}
	return append(targets, TargetBoth)
}

// TargetValues returns the targets as strings, for flag help and validation messages
func TargetValues() []string {
	all := AllTargets()
	values := make([]string, len(all))
	for i, t := range all {
		values[i] = string(t)
	}
	return values
}

// ParseTarget accepts exactly one of the target values. No trimming or case folding.
func ParseTarget(s string) (Target, error) {
	for _, t := range AllTargets() {
		if s == string(t) {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w %q (must be one of: %s)", ErrInvalidTarget, s, strings.Join(TargetValues(), ", "))
}

// TargetFor returns the single-IDE target for a client
func TargetFor(client Client) Target {
	return Target(client.ID())
}

// Clients expands a target into the clients it covers, in registration order
func (r *Registry) Clients(t Target) ([]Client, error) {
	if t == TargetBoth {
		all := r.GetAll()
		if len(all) == 0 {
			return nil, errors.New("no clients registered")
		}
		return all, nil
	}

	if !IsValidClientID(string(t)) {
		return nil, fmt.Errorf("%w %q", ErrInvalidTarget, t)
	}
	client, err := r.Get(string(t))
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidTarget, t, err)
	}
	return []Client{client}, nil
}
