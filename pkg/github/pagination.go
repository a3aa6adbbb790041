package github

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/go-github/v69/github"
)

// Link relations used by GitHub's REST pagination.
const (
	RelFirst = "first"
	RelPrev  = "prev"
	RelNext  = "next"
	RelLast  = "last"
)

// PageInfo is one entry of a Link header: the page URL and its metadata,
// which for GitHub is the link relation.
type PageInfo struct {
	URL  string `json:"url"`
	Meta string `json:"meta"`
}

// LinkHeader is the pagination metadata of a REST response.
// A page number of 0 means the relation was absent.
type LinkHeader struct {
	Prev  int        `json:"prev"`
	Next  int        `json:"next"`
	Total int        `json:"total"`
	Pages []PageInfo `json:"pages"`
}

// HasNext reports whether another page follows.
func (l LinkHeader) HasNext() bool { return l.Next > 0 }

// Page returns the first entry whose metadata equals meta.
func (l LinkHeader) Page(meta string) (PageInfo, bool) {
	for _, p := range l.Pages {
		if p.Meta == meta {
			return p, true
		}
	}
	return PageInfo{}, false
}

// String renders the entries back into Link header syntax.
func (l LinkHeader) String() string {
	links := make([]string, 0, len(l.Pages))
	for _, p := range l.Pages {
		links = append(links, fmt.Sprintf("<%s>; rel=%q", p.URL, p.Meta))
	}
	return strings.Join(links, ", ")
}

// ParseLinkHeader parses a Link header such as
//
//	<https://api.github.com/repositories/1/issues?page=3>; rel="next",
//	<https://api.github.com/repositories/1/issues?page=5>; rel="last"
//
// Entries keep the header's order. URLs may contain commas, as in
// labels=bug,ci filters. Page numbers come from the page query parameter;
// cursor-paginated links leave them at 0. Total is taken from the last
// relation, or inferred as Prev+1 on the final page where GitHub omits it.
func ParseLinkHeader(header string) (LinkHeader, error) {
	var result LinkHeader
	rest := strings.TrimSpace(header)

	for rest != "" {
		if rest[0] != '<' {
			return LinkHeader{}, fmt.Errorf("%w: %q", errMalformedLinkHeader, rest)
		}
		end := strings.IndexByte(rest, '>')
		if end < 0 {
			return LinkHeader{}, fmt.Errorf("%w: unterminated URL in %q", errMalformedLinkHeader, rest)
		}
		rawURL := rest[1:end]

		var params string
		params, rest = cutParams(rest[end+1:])
		link := "<" + rawURL + ">" + params

		segments := strings.Split(params, ";")
		if len(segments) < 2 || strings.TrimSpace(segments[0]) != "" {
			return LinkHeader{}, fmt.Errorf("%w: %q", errMalformedLinkHeader, link)
		}

		parsed, err := url.Parse(rawURL)
		if err != nil {
			return LinkHeader{}, fmt.Errorf("%w: %w", errMalformedLinkHeader, err)
		}
		page, _ := strconv.Atoi(parsed.Query().Get("page"))

		rel := relation(segments[1:])
		if rel == "" {
			return LinkHeader{}, fmt.Errorf("%w: missing rel in %q", errMalformedLinkHeader, link)
		}

		result.Pages = append(result.Pages, PageInfo{URL: rawURL, Meta: rel})
		switch rel {
		case RelPrev:
			result.Prev = page
		case RelNext:
			result.Next = page
		case RelLast:
			result.Total = page
		}
	}

	if result.Total == 0 && result.Next == 0 && result.Prev > 0 {
		result.Total = result.Prev + 1
	}
	return result, nil
}

// cutParams splits s at the first comma outside a quoted string. It returns
// the parameters of the current entry and the remaining entries.
func cutParams(s string) (string, string) {
	inQuote := false
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"':
			inQuote = !inQuote
		case ',':
			if !inQuote {
				return s[:i], strings.TrimSpace(s[i+1:])
			}
		}
	}
	return s, ""
}

func relation(params []string) string {
	for _, param := range params {
		key, value, ok := strings.Cut(strings.TrimSpace(param), "=")
		if !ok || !strings.EqualFold(strings.TrimSpace(key), "rel") {
			continue
		}
		return strings.Trim(strings.TrimSpace(value), `"`)
	}
	return ""
}

// LinkHeaderFromResponse builds a LinkHeader from a go-github response,
// using go-github's parsed page numbers and the raw Link header entries.
func LinkHeaderFromResponse(resp *github.Response) (LinkHeader, error) {
	if resp == nil {
		return LinkHeader{}, nil
	}

	result := LinkHeader{
		Prev:  resp.PrevPage,
		Next:  resp.NextPage,
		Total: resp.LastPage,
	}
	if resp.Response == nil {
		return result, nil
	}

	parsed, err := ParseLinkHeader(resp.Header.Get("Link"))
	if err != nil {
		return LinkHeader{}, err
	}
	result.Pages = parsed.Pages
	if result.Total == 0 {
		result.Total = parsed.Total
	}
	return result, nil
}
