package discover

import (
	"net/url"
	"regexp"
	"sort"
	"strings"

	"github.com/go-pkgz/lgr"
	"golang.org/x/net/publicsuffix"

	"github.com/feedclip/feedclip/pkg/domain"
	"github.com/feedclip/feedclip/pkg/rules"
)

// Resolver turns a page URL into ranked feed candidates. Resolution order:
// feeds already detected on the page, then a platform fast-path extractor
// (which short-circuits the catalog), then the per-domain rule catalog.
type Resolver struct {
	platforms map[string]PlatformFunc
}

// New creates a resolver with the built-in platform table
func New() *Resolver {
	return &Resolver{platforms: platformTable()}
}

// leftoverToken finds placeholder tokens the target substitution left behind
var leftoverToken = regexp.MustCompile(`:(\w+)\??`)

// Resolve returns an ordered, de-duplicated candidate list for the page.
// detected carries feed URLs the caller already found on the page itself
// (link tags); they rank first with kind "standard". An invalid page URL
// yields an empty list, never an error.
func (r *Resolver) Resolve(pageURL string, detected []domain.FeedCandidate, catalog rules.Catalog) []domain.FeedCandidate {
	u, err := url.Parse(pageURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return nil
	}

	out := make([]domain.FeedCandidate, 0, len(detected)+2)
	seen := map[string]bool{}
	add := func(c domain.FeedCandidate) {
		if c.URL == "" || seen[c.URL] {
			return
		}
		seen[c.URL] = true
		out = append(out, c)
	}

	for _, d := range detected {
		d.Kind = domain.KindStandard
		add(d)
	}

	if title, feedURL, ok := r.fastPath(u); ok {
		add(domain.FeedCandidate{Title: title, URL: feedURL, Kind: domain.KindPlatform})
		return out // platform hit short-circuits the catalog
	}

	for _, c := range r.fromCatalog(u, catalog) {
		add(c)
	}
	return out
}

// fastPath tries the platform extractor for the page's registrable domain
// and for its www-stripped host
func (r *Resolver) fastPath(u *url.URL) (title, feedURL string, ok bool) {
	host := strings.ToLower(u.Hostname())

	keys := []string{strings.TrimPrefix(host, "www.")}
	if etld, err := publicsuffix.EffectiveTLDPlusOne(host); err == nil && etld != keys[0] {
		keys = append(keys, etld)
	}

	for _, key := range keys {
		fn, found := r.platforms[key]
		if !found {
			continue
		}
		if title, feedURL, ok = fn(u); ok {
			return title, feedURL, true
		}
	}
	return "", "", false
}

// fromCatalog applies every rule of the domain's rule set against the page
// path. Templates match the path alone; generators that need the query or
// fragment read them from the parsed URL. A rule that fails to compile or
// whose generator errors is skipped, the rest still apply.
func (r *Resolver) fromCatalog(u *url.URL, catalog rules.Catalog) []domain.FeedCandidate {
	ruleSet, ok := catalog.Lookup(strings.ToLower(u.Hostname()))
	if !ok {
		return nil
	}

	// map order is random; keep candidate order stable across calls
	keys := make([]string, 0, len(ruleSet))
	for k := range ruleSet {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var out []domain.FeedCandidate
	for _, key := range keys {
		for _, rule := range ruleSet[key] {
			if c, ok := r.applyRule(rule, u); ok {
				out = append(out, c)
			}
		}
	}
	return out
}

// applyRule attempts every source template of one rule and resolves its
// target on the first match
func (r *Resolver) applyRule(rule rules.Rule, u *url.URL) (domain.FeedCandidate, bool) {
	for _, source := range rule.Sources {
		matcher, err := rules.Compile(source)
		if err != nil {
			lgr.Printf("[DEBUG] skipping malformed rule template %q: %v", source, err)
			continue
		}
		params, ok := matcher.Match(u.Path)
		if !ok {
			continue
		}

		target, ok := r.resolveTarget(rule, params, u, source)
		if !ok {
			continue
		}

		feedURL, ok := r.finalURL(u, target)
		if !ok {
			continue
		}

		title := rule.Title
		if title == "" {
			title = u.Hostname()
		}
		return domain.FeedCandidate{Title: title, URL: feedURL, Kind: domain.KindRule}, true
	}
	return domain.FeedCandidate{}, false
}

// resolveTarget produces the target path, via the generator when present or
// by template substitution otherwise. A target that still carries an
// unresolved placeholder is discarded.
func (r *Resolver) resolveTarget(rule rules.Rule, params map[string]string, u *url.URL, source string) (string, bool) {
	if rule.Generate != nil {
		target, err := r.generate(rule.Generate, params, u, source)
		if err != nil {
			lgr.Printf("[DEBUG] rule generator failed for %s: %v", u.Hostname(), err)
			return "", false
		}
		return target, target != ""
	}

	if rule.Target == "" {
		return "", false
	}

	target := rule.Target
	for name, val := range params {
		target = strings.ReplaceAll(target, ":"+name+"?", val)
		target = strings.ReplaceAll(target, ":"+name, val)
	}
	if leftoverToken.MatchString(target) {
		return "", false
	}
	if !strings.Contains(target, "://") { // keep absolute targets intact
		target = strings.ReplaceAll(target, "//", "/")
	}
	target = strings.TrimSuffix(target, "/")
	return target, target != ""
}

// generate invokes a rule generator, converting a panic into a skip so one
// bad rule cannot take down the resolution pass
func (r *Resolver) generate(fn rules.GeneratorFunc, params map[string]string, u *url.URL, source string) (target string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			lgr.Printf("[WARN] rule generator panicked for %s: %v", u.Hostname(), rec)
			target, err = "", nil
		}
	}()
	return fn(params, u, source)
}

// finalURL absolutizes a resolved target against the page origin and rejects
// anything that does not end up on a secure scheme
func (r *Resolver) finalURL(page *url.URL, target string) (string, bool) {
	ref, err := url.Parse(target)
	if err != nil {
		return "", false
	}
	abs := page.ResolveReference(ref)
	if abs.Scheme != "https" {
		return "", false
	}
	return abs.String(), true
}
