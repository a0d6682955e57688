package rules

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// Param describes a named placeholder in a compiled source template
type Param struct {
	Name     string
	Optional bool
}

// Matcher is a compiled source template: an anchored regexp plus the ordered
// list of placeholders its capture groups correspond to.
type Matcher struct {
	re     *regexp.Regexp
	params []Param
}

// paramToken matches :name and :name? placeholders inside templates
var paramToken = regexp.MustCompile(`:(\w+)(\?)?`)

// Compile turns a source template into a matcher. Literal runs are escaped,
// ":name" captures one path segment, ":name?" captures a possibly empty one,
// and a trailing "/*" accepts any remainder. The empty template matches only
// the root path and "*" matches everything.
func Compile(source string) (*Matcher, error) {
	if source == "*" {
		return &Matcher{re: regexp.MustCompile(`^.*$`)}, nil
	}
	if source == "" {
		return &Matcher{re: regexp.MustCompile(`^/?$`)}, nil
	}

	tmpl := source
	wildcard := strings.HasSuffix(tmpl, "/*")
	if wildcard {
		tmpl = strings.TrimSuffix(tmpl, "/*")
	}

	var sb strings.Builder
	sb.WriteString("^")
	if !strings.HasPrefix(tmpl, "/") {
		sb.WriteString("/")
	}

	var params []Param
	last := 0
	for _, loc := range paramToken.FindAllStringSubmatchIndex(tmpl, -1) {
		lit := tmpl[last:loc[0]]
		name := tmpl[loc[2]:loc[3]]
		optional := loc[4] != -1
		switch {
		case optional && strings.HasSuffix(lit, "/"):
			// the optional segment owns its slash so "/blog/:cat?" still
			// matches a bare "/blog"
			sb.WriteString(regexp.QuoteMeta(strings.TrimSuffix(lit, "/")))
			sb.WriteString(`(?:/([^/?#]*))?`)
		case optional:
			sb.WriteString(regexp.QuoteMeta(lit))
			sb.WriteString(`([^/?#]*)`)
		default:
			sb.WriteString(regexp.QuoteMeta(lit))
			sb.WriteString(`([^/?#]+)`)
		}
		params = append(params, Param{Name: name, Optional: optional})
		last = loc[1]
	}
	sb.WriteString(regexp.QuoteMeta(tmpl[last:]))

	if wildcard {
		sb.WriteString(`(?:/.*)?`)
	}
	sb.WriteString("$")

	re, err := regexp.Compile(sb.String())
	if err != nil {
		return nil, fmt.Errorf("compile template %q: %w", source, err)
	}
	return &Matcher{re: re, params: params}, nil
}

// Match attempts the matcher against a page URL path. On success it returns
// the URL-decoded parameter values.
func (m *Matcher) Match(path string) (map[string]string, bool) {
	groups := m.re.FindStringSubmatch(path)
	if groups == nil {
		return nil, false
	}

	params := make(map[string]string, len(m.params))
	for i, p := range m.params {
		if i+1 >= len(groups) {
			break
		}
		val := groups[i+1]
		if decoded, err := url.QueryUnescape(val); err == nil {
			val = decoded
		}
		params[p.Name] = val
	}
	return params, true
}

// Params returns the ordered placeholder descriptors of the matcher
func (m *Matcher) Params() []Param {
	return m.params
}
