package pageaudit

import "strings"

// MirrorIndex is the document name appended to every mirror path.
const MirrorIndex = "/index.html"

// Mirror maps canonical page URLs on a site origin to the location of their
// pre-rendered static copies.
type Mirror struct {
	origin string
	base   string
}

// NewMirror returns a Mirror that rewrites URLs under origin to base.
// Trailing slashes on both are ignored.
func NewMirror(origin, base string) *Mirror {
	return &Mirror{
		origin: strings.TrimRight(origin, "/"),
		base:   strings.TrimRight(base, "/"),
	}
}

// Rewrite returns the mirror URL for a canonical page URL:
// the base, the page path without one trailing slash, then /index.html.
// URLs outside the origin return EINVALID rather than a broken mirror URL.
func (m *Mirror) Rewrite(pageURL string) (string, error) {
	rest, ok := strings.CutPrefix(pageURL, m.origin)
	if !ok || (rest != "" && !strings.HasPrefix(rest, "/")) {
		return "", Errorf(EINVALID, "%s is not under origin %s", pageURL, m.origin)
	}
	rest = strings.TrimSuffix(rest, "/")
	return m.base + rest + MirrorIndex, nil
}
