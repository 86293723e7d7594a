// Package formstate holds the caller's form and lookup results as an
// immutable value. Every change goes through Reduce.
package formstate

import (
	"context"
	"slices"

	"github.com/DamDam98/robocall-your-rep/internal/profile"
	"github.com/DamDam98/robocall-your-rep/internal/representatives"
)

type State struct {
	Representatives []representatives.Representative
	UserInfo        profile.UserProfile
	Loading         bool
	Error           string
}

type Action interface {
	apply(s State) State
}

// Reduce returns the state after a. s is never modified and the result
// shares no slices with it.
func Reduce(s State, a Action) State {
	if a == nil {
		return s.clone()
	}
	return a.apply(s.clone())
}

func (s State) clone() State {
	s.Representatives = slices.Clone(s.Representatives)
	s.UserInfo.PassionateIssues = slices.Clone(s.UserInfo.PassionateIssues)
	return s
}

type SetRepresentatives struct {
	Representatives []representatives.Representative
}

func (a SetRepresentatives) apply(s State) State {
	s.Representatives = slices.Clone(a.Representatives)
	return s
}

type SetUserInfo struct {
	UserInfo profile.UserProfile
}

func (a SetUserInfo) apply(s State) State {
	s.UserInfo = a.UserInfo
	s.UserInfo.PassionateIssues = slices.Clone(a.UserInfo.PassionateIssues)
	return s
}

type SetLoading struct {
	Loading bool
}

func (a SetLoading) apply(s State) State {
	s.Loading = a.Loading
	return s
}

type SetError struct {
	Error string
}

func (a SetError) apply(s State) State {
	s.Error = a.Error
	return s
}

// ToggleIssue deselects a chosen issue, or appends it while fewer than
// profile.MaxIssues are selected. Anything else leaves the state as is.
type ToggleIssue struct {
	Issue profile.Issue
}

func (a ToggleIssue) apply(s State) State {
	issues := s.UserInfo.PassionateIssues
	if i := slices.Index(issues, a.Issue); i >= 0 {
		s.UserInfo.PassionateIssues = slices.Delete(issues, i, i+1)
		return s
	}
	if !a.Issue.Known() || len(issues) >= profile.MaxIssues {
		return s
	}
	s.UserInfo.PassionateIssues = append(issues, a.Issue)
	return s
}

type Reset struct{}

func (Reset) apply(State) State {
	return State{}
}

type representativeFinder interface {
	Representatives(ctx context.Context, zip string) ([]representatives.Representative, error)
}

// Submit checks the form rules on s.UserInfo and, when they pass, looks up
// the representatives for its ZIP. The returned state carries either the
// results or an error message; Loading is always cleared.
func Submit(ctx context.Context, finder representativeFinder, s State) State {
	s = Reduce(s, SetError{})
	if err := s.UserInfo.ValidateForm(); err != nil {
		return Reduce(s, SetError{Error: err.Error()})
	}

	s = Reduce(s, SetLoading{Loading: true})
	reps, err := finder.Representatives(ctx, s.UserInfo.ZipCode)
	s = Reduce(s, SetLoading{Loading: false})
	if err != nil {
		return Reduce(s, SetError{Error: "Failed to fetch representatives"})
	}
	return Reduce(s, SetRepresentatives{Representatives: reps})
}
