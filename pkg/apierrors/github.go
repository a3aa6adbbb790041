package apierrors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/go-github/v69/github"
	"github.com/sgaunet/cikit/internal/security"
)

// FromGitHub converts an error returned by go-github into a categorized
// error. Users errors keep the HTTP status code; other categories carry it
// in the message. Credentials echoed back by the API are redacted; commit
// ids and branch names are kept. An err that already is an *Error is returned unchanged.
func FromGitHub(category Category, err error) error {
	if err == nil {
		return nil
	}

	var apiErr *Error
	if errors.As(err, &apiErr) {
		return err
	}

	status, message := describe(err)
	message = security.SanitizeCredentials(message)

	if category == CategoryUsers {
		return NewUsersErrorWithStatus(message, status)
	}
	if status != StatusUnspecified {
		message = fmt.Sprintf("%d %s", status, message)
	}
	return New(category, message)
}

func describe(err error) (int, string) {
	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) {
		return statusOf(rateErr.Response), "rate limit exceeded: " + rateErr.Message
	}

	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return statusOf(abuseErr.Response), "secondary rate limit exceeded: " + abuseErr.Message
	}

	var respErr *github.ErrorResponse
	if errors.As(err, &respErr) {
		return statusOf(respErr.Response), responseMessage(respErr)
	}

	return StatusUnspecified, err.Error()
}

func responseMessage(respErr *github.ErrorResponse) string {
	parts := make([]string, 0, len(respErr.Errors)+1)
	if respErr.Message != "" {
		parts = append(parts, respErr.Message)
	}
	for _, detail := range respErr.Errors {
		switch {
		case detail.Message != "":
			parts = append(parts, detail.Message)
		case detail.Field != "":
			parts = append(parts, fmt.Sprintf("%s.%s %s", detail.Resource, detail.Field, detail.Code))
		case detail.Code != "":
			parts = append(parts, detail.Code)
		}
	}
	if len(parts) == 0 {
		return "request failed"
	}
	return strings.Join(parts, "; ")
}

func statusOf(resp *http.Response) int {
	if resp == nil {
		return StatusUnspecified
	}
	return resp.StatusCode
}
