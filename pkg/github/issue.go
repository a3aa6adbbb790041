package github

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/google/go-github/v69/github"
	"github.com/sgaunet/cikit/pkg/apierrors"
)

var jsonNull = []byte("null")

// IssueState is the open/closed state of an issue or pull request.
type IssueState string

// Issue states.
const (
	StateOpen   IssueState = "open"
	StateClosed IssueState = "closed"
)

// Valid reports whether s is a known state.
func (s IssueState) Valid() bool {
	return s == StateOpen || s == StateClosed
}

// StateReason explains a state change.
type StateReason string

// State reasons accepted by the issues API.
const (
	ReasonCompleted  StateReason = "completed"
	ReasonNotPlanned StateReason = "not_planned"
	ReasonReopened   StateReason = "reopened"
)

// Valid reports whether r is a known reason.
func (r StateReason) Valid() bool {
	switch r {
	case ReasonCompleted, ReasonNotPlanned, ReasonReopened:
		return true
	default:
		return false
	}
}

// Title is an issue title given either as text or as a number.
type Title struct {
	text     string
	number   int64
	isNumber bool
}

// TitleText returns a textual title.
func TitleText(s string) *Title { return &Title{text: s} }

// TitleNumber returns a numeric title.
func TitleNumber(n int64) *Title { return &Title{number: n, isNumber: true} }

// IsNumber reports whether the title was given as a number.
func (t Title) IsNumber() bool { return t.isNumber }

// String renders the title as GitHub stores it.
func (t Title) String() string {
	if t.isNumber {
		return strconv.FormatInt(t.number, 10)
	}
	return t.text
}

// MarshalJSON writes text titles as strings and numeric titles as numbers.
func (t Title) MarshalJSON() ([]byte, error) {
	if t.isNumber {
		return json.Marshal(t.number)
	}
	return json.Marshal(t.text)
}

// UnmarshalJSON accepts a string or an integer.
func (t *Title) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = Title{text: s}
		return nil
	}
	var n int64
	if err := json.Unmarshal(data, &n); err == nil {
		*t = Title{number: n, isNumber: true}
		return nil
	}
	return fmt.Errorf("%w: %s", errInvalidTitle, data)
}

// MilestoneRef identifies a milestone by number or by name.
type MilestoneRef struct {
	number int
	name   string
	byName bool
}

// MilestoneNumber references a milestone by its number.
func MilestoneNumber(n int) MilestoneRef { return MilestoneRef{number: n} }

// MilestoneName references a milestone by its title.
func MilestoneName(name string) MilestoneRef { return MilestoneRef{name: name, byName: true} }

// Number returns the milestone number and whether the reference is numeric.
func (m MilestoneRef) Number() (int, bool) { return m.number, !m.byName }

// Name returns the milestone name and whether the reference is by name.
func (m MilestoneRef) Name() (string, bool) { return m.name, m.byName }

// MarshalJSON writes numbers as numbers and names as strings.
func (m MilestoneRef) MarshalJSON() ([]byte, error) {
	if name, ok := m.Name(); ok {
		return json.Marshal(name)
	}
	return json.Marshal(m.number)
}

// UnmarshalJSON accepts an integer or a string.
func (m *MilestoneRef) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*m = MilestoneRef{number: n}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*m = MilestoneName(s)
		return nil
	}
	return fmt.Errorf("%w: %s", errInvalidMilestoneRef, data)
}

// IssueUpdate is the body of PATCH /repos/{owner}/{repo}/issues/{number}.
//
// Every field is optional and an unset field leaves the issue unchanged.
// StateReason and Milestone may be set to an explicit null to clear them.
// A non-nil pointer to an empty Labels or Assignees slice removes all labels
// or assignees.
type IssueUpdate struct {
	Title       *Title
	Body        *string
	State       *IssueState
	StateReason Nullable[StateReason]
	Milestone   Nullable[MilestoneRef]
	Labels      *[]string
	Assignees   *[]string
}

type issueUpdateWire struct {
	Title       *Title          `json:"title,omitempty"`
	Body        *string         `json:"body,omitempty"`
	State       *IssueState     `json:"state,omitempty"`
	StateReason json.RawMessage `json:"state_reason,omitempty"`
	Milestone   json.RawMessage `json:"milestone,omitempty"`
	Labels      *[]string       `json:"labels,omitempty"`
	Assignees   *[]string       `json:"assignees,omitempty"`
}

// MarshalJSON writes only the fields that are set, keeping explicit nulls
// and empty lists.
func (u IssueUpdate) MarshalJSON() ([]byte, error) {
	wire := issueUpdateWire{
		Title:     u.Title,
		Body:      u.Body,
		State:     u.State,
		Labels:    nonNilList(u.Labels),
		Assignees: nonNilList(u.Assignees),
	}

	var err error
	if wire.StateReason, err = marshalNullable(u.StateReason); err != nil {
		return nil, err
	}
	if wire.Milestone, err = marshalNullable(u.Milestone); err != nil {
		return nil, err
	}
	return json.Marshal(wire)
}

// UnmarshalJSON is the inverse of MarshalJSON. A null title, body or state is
// treated as unset; a null label or assignee list clears it.
func (u *IssueUpdate) UnmarshalJSON(data []byte) error {
	var wire issueUpdateWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	out := IssueUpdate{
		Title: wire.Title,
		Body:  wire.Body,
		State: wire.State,
	}
	if raw, ok := fields["labels"]; ok {
		out.Labels = listOrEmpty(raw, wire.Labels)
	}
	if raw, ok := fields["assignees"]; ok {
		out.Assignees = listOrEmpty(raw, wire.Assignees)
	}

	var err error
	if out.StateReason, err = unmarshalNullable[StateReason](fields, "state_reason"); err != nil {
		return err
	}
	if out.Milestone, err = unmarshalNullable[MilestoneRef](fields, "milestone"); err != nil {
		return err
	}

	*u = out
	return nil
}

// Validate checks enum values and references. Issue field problems are
// PullRequest errors; milestone problems are Milestone errors.
func (u IssueUpdate) Validate() error {
	if u.Title != nil && !u.Title.IsNumber() && u.Title.String() == "" {
		return apierrors.NewPullRequestError(errEmptyTitle.Error())
	}
	if u.State != nil && !u.State.Valid() {
		return apierrors.NewPullRequestError(fmt.Sprintf("%s: %q", errUnknownState, *u.State))
	}
	if reason, ok := u.StateReason.Get(); ok && !reason.Valid() {
		return apierrors.NewPullRequestError(fmt.Sprintf("%s: %q", errUnknownStateReason, reason))
	}
	if ref, ok := u.Milestone.Get(); ok {
		if name, byName := ref.Name(); byName && name == "" {
			return apierrors.NewMilestoneError(errEmptyMilestoneName.Error())
		}
		if number, isNumber := ref.Number(); isNumber && number <= 0 {
			return apierrors.NewMilestoneError(fmt.Sprintf("%s: %d", errInvalidMilestone, number))
		}
	}
	return nil
}

// ClearsMilestone reports whether the update removes the milestone.
func (u IssueUpdate) ClearsMilestone() bool { return u.Milestone.IsNull() }

// ClearsStateReason reports whether the update removes the state reason.
func (u IssueUpdate) ClearsStateReason() bool { return u.StateReason.IsNull() }

// IssueRequest converts the update to go-github's request type.
//
// go-github omits nil fields, so explicit nulls cannot be sent this way and
// return ErrNullNotRepresentable; build the request with
// NewIssueUpdateRequest instead. Milestones referenced by name return a
// Milestone error wrapping ErrMilestoneByName.
func (u IssueUpdate) IssueRequest() (*github.IssueRequest, error) {
	if err := u.Validate(); err != nil {
		return nil, err
	}
	if u.ClearsMilestone() || u.ClearsStateReason() {
		return nil, errNullNotRepresentable
	}

	req := &github.IssueRequest{
		Body:      u.Body,
		Labels:    nonNilList(u.Labels),
		Assignees: nonNilList(u.Assignees),
	}
	if u.Title != nil {
		req.Title = github.Ptr(u.Title.String())
	}
	if u.State != nil {
		req.State = github.Ptr(string(*u.State))
	}
	if reason, ok := u.StateReason.Get(); ok {
		req.StateReason = github.Ptr(string(reason))
	}
	if ref, ok := u.Milestone.Get(); ok {
		if name, byName := ref.Name(); byName {
			return nil, fmt.Errorf("%w: %w",
				apierrors.NewMilestoneError(fmt.Sprintf("milestone %q has no number", name)),
				errMilestoneByName)
		}
		number, _ := ref.Number()
		req.Milestone = github.Ptr(number)
	}
	return req, nil
}

func nonNilList(list *[]string) *[]string {
	if list == nil {
		return nil
	}
	if *list == nil {
		empty := []string{}
		return &empty
	}
	return list
}

func listOrEmpty(raw json.RawMessage, decoded *[]string) *[]string {
	if bytes.Equal(bytes.TrimSpace(raw), jsonNull) || decoded == nil {
		empty := []string{}
		return &empty
	}
	return nonNilList(decoded)
}

func marshalNullable[T any](n Nullable[T]) (json.RawMessage, error) {
	if !n.IsSet() {
		return nil, nil
	}
	if n.IsNull() {
		return jsonNull, nil
	}
	v, _ := n.Get()
	return json.Marshal(v)
}

func unmarshalNullable[T any](fields map[string]json.RawMessage, key string) (Nullable[T], error) {
	raw, ok := fields[key]
	if !ok {
		return Nullable[T]{}, nil
	}
	if bytes.Equal(bytes.TrimSpace(raw), jsonNull) {
		return Null[T](), nil
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return Nullable[T]{}, fmt.Errorf("decode %s: %w", key, err)
	}
	return Set(v), nil
}
