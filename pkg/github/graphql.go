package github

import (
	"encoding/json"
	"fmt"
	"strings"
)

// GraphQLErrorLocation pinpoints a query parse error.
type GraphQLErrorLocation struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

func (l GraphQLErrorLocation) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

// GraphQLError is one entry of the errors array of a GraphQL response.
type GraphQLError struct {
	Type      string                 `json:"type,omitempty"`
	Message   string                 `json:"message"`
	Path      []any                  `json:"path,omitempty"`
	Locations []GraphQLErrorLocation `json:"locations,omitempty"`
}

// Error implements the error interface.
func (e GraphQLError) Error() string {
	if len(e.Locations) == 0 {
		return e.Message
	}
	locations := make([]string, len(e.Locations))
	for i, l := range e.Locations {
		locations[i] = l.String()
	}
	return fmt.Sprintf("%s (at %s)", e.Message, strings.Join(locations, ", "))
}

// GraphQLErrors is the errors array of a GraphQL response.
type GraphQLErrors []GraphQLError

// Error joins all messages.
func (e GraphQLErrors) Error() string {
	messages := make([]string, len(e))
	for i, err := range e {
		messages[i] = err.Error()
	}
	return strings.Join(messages, "; ")
}

// DecodeGraphQLErrors extracts the errors array from a raw GraphQL response
// body. It returns nil when the response carries no errors.
func DecodeGraphQLErrors(body []byte) (GraphQLErrors, error) {
	var envelope struct {
		Errors GraphQLErrors `json:"errors"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode GraphQL response: %w", err)
	}
	if len(envelope.Errors) == 0 {
		return nil, nil
	}
	return envelope.Errors, nil
}

// BranchTarget is the commit a branch points to, with the object id exactly
// as GitHub returned it.
type BranchTarget struct {
	OID string `json:"oid"`
}

// BranchTargetResponse is the data of a repository(…){ ref(…){ target{ oid } } }
// lookup. Ref is nil when the branch does not exist.
type BranchTargetResponse struct {
	Repository struct {
		Ref *struct {
			Target BranchTarget `json:"target"`
		} `json:"ref"`
	} `json:"repository"`
}

// Target returns the branch target and whether the branch was found.
func (r BranchTargetResponse) Target() (BranchTarget, bool) {
	if r.Repository.Ref == nil {
		return BranchTarget{}, false
	}
	return r.Repository.Ref.Target, true
}
