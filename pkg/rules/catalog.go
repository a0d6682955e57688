package rules

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

// GeneratorFunc builds a target path from resolved template parameters, the
// parsed page URL and the source template that matched. Returning an error
// (or panicking) skips just this rule.
type GeneratorFunc func(params map[string]string, pageURL *url.URL, matched string) (string, error)

// Rule maps one or more source path templates to a feed target. Target is a
// path template sharing the source placeholders; Generate, when set, takes
// precedence and computes the target programmatically. Generator rules only
// exist for built-in rule sets, the remote catalog carries templates only.
type Rule struct {
	Title    string
	Sources  []string
	Target   string
	Generate GeneratorFunc
}

// RuleSet groups the rules of one registrable domain by rule key
type RuleSet map[string][]Rule

// Catalog maps registrable domain to its rule set. Treated as immutable
// within a resolution pass.
type Catalog map[string]RuleSet

// Lookup finds the rule set for a host, trying the exact host first and then
// progressively shorter domain suffixes (a.b.example.com -> b.example.com ->
// example.com).
func (c Catalog) Lookup(host string) (RuleSet, bool) {
	labels := strings.Split(host, ".")
	for i := 0; i < len(labels)-1; i++ {
		if rs, ok := c[strings.Join(labels[i:], ".")]; ok {
			return rs, true
		}
	}
	return nil, false
}

// jsonRule is the wire shape of a single remote catalog rule
type jsonRule struct {
	Title  string          `json:"title"`
	Docs   string          `json:"docs"`
	Source json.RawMessage `json:"source"`
	Target json.RawMessage `json:"target"`
}

// ParseCatalog decodes a remote rule catalog document. The format is
// domain -> key -> rule-or-rules, with "_"-prefixed keys carrying metadata.
// Malformed rules are dropped individually, never failing the catalog.
func ParseCatalog(data []byte) (Catalog, error) {
	var raw map[string]map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse rule catalog: %w", err)
	}

	catalog := make(Catalog, len(raw))
	for dom, keys := range raw {
		rs := make(RuleSet)
		for key, msg := range keys {
			if strings.HasPrefix(key, "_") {
				continue
			}
			rs[key] = decodeRules(msg)
		}
		if len(rs) > 0 {
			catalog[dom] = rs
		}
	}
	return catalog, nil
}

// decodeRules accepts a single rule object or an array of them
func decodeRules(msg json.RawMessage) []Rule {
	var list []jsonRule
	if err := json.Unmarshal(msg, &list); err != nil {
		var one jsonRule
		if err := json.Unmarshal(msg, &one); err != nil {
			return nil
		}
		list = []jsonRule{one}
	}

	rules := make([]Rule, 0, len(list))
	for _, jr := range list {
		r, ok := jr.toRule()
		if !ok {
			continue
		}
		rules = append(rules, r)
	}
	return rules
}

// toRule converts the wire shape, tolerating string-or-array sources and
// skipping rules whose target is not a plain template (remote catalogs may
// carry serialized functions we cannot evaluate).
func (jr *jsonRule) toRule() (Rule, bool) {
	r := Rule{Title: jr.Title}

	var single string
	if err := json.Unmarshal(jr.Source, &single); err == nil {
		r.Sources = []string{single}
	} else if err := json.Unmarshal(jr.Source, &r.Sources); err != nil {
		return Rule{}, false
	}
	if len(r.Sources) == 0 {
		return Rule{}, false
	}

	if len(jr.Target) > 0 {
		var target string
		if err := json.Unmarshal(jr.Target, &target); err != nil {
			return Rule{}, false
		}
		r.Target = target
	}
	return r, true
}

// Merge overlays another catalog on top of this one, appending rule lists on
// key collisions. Used to combine built-in generator rules with the remote
// catalog.
func (c Catalog) Merge(other Catalog) Catalog {
	out := make(Catalog, len(c)+len(other))
	for dom, rs := range c {
		out[dom] = rs
	}
	for dom, rs := range other {
		existing, ok := out[dom]
		if !ok {
			out[dom] = rs
			continue
		}
		merged := make(RuleSet, len(existing)+len(rs))
		for k, v := range existing {
			merged[k] = v
		}
		for k, v := range rs {
			// copy, appending in place could scribble over the receiver's slice
			combined := make([]Rule, 0, len(merged[k])+len(v))
			combined = append(combined, merged[k]...)
			merged[k] = append(combined, v...)
		}
		out[dom] = merged
	}
	return out
}
