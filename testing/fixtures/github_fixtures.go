// Package fixtures provides common test data structures for testing.
package fixtures

import (
	"fmt"
	"net/http"

	"github.com/google/go-github/v69/github"
	ghpkg "github.com/sgaunet/cikit/pkg/github"
)

// Link headers as returned by the GitHub REST API.
const (
	MiddlePageLinkHeader = `<https://api.github.com/repositories/1300192/issues?page=2>; rel="prev", ` +
		`<https://api.github.com/repositories/1300192/issues?page=4>; rel="next", ` +
		`<https://api.github.com/repositories/1300192/issues?page=515>; rel="last", ` +
		`<https://api.github.com/repositories/1300192/issues?page=1>; rel="first"`

	FinalPageLinkHeader = `<https://api.github.com/repositories/1300192/issues?page=4>; rel="prev", ` +
		`<https://api.github.com/repositories/1300192/issues?page=1>; rel="first"`
)

const defaultMilestone = 3

// CloseAsNotPlanned returns an update setting every field.
func CloseAsNotPlanned() ghpkg.IssueUpdate {
	body := "Superseded"
	state := ghpkg.StateClosed
	labels := []string{"wontfix"}
	assignees := []string{}

	return ghpkg.IssueUpdate{
		Title:       ghpkg.TitleText("Drop legacy feed"),
		Body:        &body,
		State:       &state,
		StateReason: ghpkg.Set(ghpkg.ReasonNotPlanned),
		Milestone:   ghpkg.Set(ghpkg.MilestoneNumber(defaultMilestone)),
		Labels:      &labels,
		Assignees:   &assignees,
	}
}

// ClearMilestoneAndLabels returns an update that only clears values.
func ClearMilestoneAndLabels() ghpkg.IssueUpdate {
	labels := []string{}
	return ghpkg.IssueUpdate{
		StateReason: ghpkg.Null[ghpkg.StateReason](),
		Milestone:   ghpkg.Null[ghpkg.MilestoneRef](),
		Labels:      &labels,
	}
}

// LinkHeaderWithPages returns a link header listing n numbered pages.
func LinkHeaderWithPages(n int) ghpkg.LinkHeader {
	link := ghpkg.LinkHeader{Prev: 1, Next: 3, Total: n}
	for page := 1; page <= n; page++ {
		link.Pages = append(link.Pages, ghpkg.PageInfo{
			URL:  fmt.Sprintf("https://api.github.com/repos/octo/cikit/pulls?page=%d", page),
			Meta: fmt.Sprintf("page-%d", page),
		})
	}
	return link
}

// ErrorResponse returns a go-github error response with the given status.
func ErrorResponse(status int, message string) *github.ErrorResponse {
	return &github.ErrorResponse{
		Response: &http.Response{StatusCode: status},
		Message:  message,
	}
}
