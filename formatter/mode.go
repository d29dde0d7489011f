package formatter

import "strings"

// Mode selects the document envelope for XML-producing calls. JSON calls
// never consult the mode.
type Mode string

const (
	ModeGeneric Mode = "generic"
	ModeRSS     Mode = "rss"
	ModeXSPF    Mode = "xspf"
	ModeITunes  Mode = "itunes"
)

// ParseMode maps a mode literal to a Mode. Unrecognized values report
// false so callers can keep their prior mode.
func ParseMode(s string) (Mode, bool) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeGeneric:
		return ModeGeneric, true
	case ModeRSS:
		return ModeRSS, true
	case ModeXSPF:
		return ModeXSPF, true
	case ModeITunes:
		return ModeITunes, true
	}
	return "", false
}

// SiteInfo carries the site-level metadata rendered into envelope headers.
type SiteInfo struct {
	Title   string
	WebPath string
	Charset string
	Version string
}

// Envelope renders the header/footer pair for each output mode. No
// transitions occur mid-document: one call renders with one mode.
type Envelope struct {
	Site SiteInfo
}

func (e Envelope) charset() string {
	if e.Site.Charset == "" {
		return "UTF-8"
	}
	return e.Site.Charset
}

// Header returns the document preamble for mode. title is only consulted
// by the XSPF envelope, which allows a custom playlist title.
func (e Envelope) Header(mode Mode, title string) string {
	switch mode {
	case ModeXSPF:
		if title == "" {
			title = e.Site.Title + " XSPF Playlist"
		}
		return "<?xml version=\"1.0\" encoding=\"utf-8\" ?>\n" +
			"<playlist version=\"1\" xmlns=\"http://xspf.org/ns/0/\">\n" +
			"<title>" + xmlEscape(title) + "</title>\n" +
			"<creator>" + xmlEscape(e.Site.Title) + "</creator>\n" +
			"<annotation>" + xmlEscape(e.Site.Title) + "</annotation>\n" +
			"<info>" + xmlEscape(e.Site.WebPath) + "</info>\n" +
			"<trackList>\n"
	case ModeITunes:
		return "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n" +
			"<!-- XML Generated by " + e.Site.Title + " v." + e.Site.Version + " -->\n" +
			"<!DOCTYPE plist PUBLIC \"-//Apple Computer//DTD PLIST 1.0//EN\"\n" +
			"\"http://www.apple.com/DTDs/PropertyList-1.0.dtd\">\n" +
			"<plist version=\"1.0\">\n" +
			"<dict>\n" +
			"\t<key>Major Version</key><integer>1</integer>\n" +
			"\t<key>Minor Version</key><integer>1</integer>\n" +
			"\t<key>Application Version</key><string>" + xmlEscape(e.Site.Version) + "</string>\n" +
			"\t<key>Features</key><integer>1</integer>\n" +
			"\t<key>Show Content Ratings</key><true/>\n" +
			"\t<key>Tracks</key>\n" +
			"\t<dict>\n"
	case ModeRSS:
		return "<?xml version=\"1.0\" encoding=\"" + e.charset() + "\" ?>\n" +
			"<!-- RSS Generated by " + e.Site.Title + " v." + e.Site.Version + " -->\n" +
			"<rss version=\"2.0\">\n<channel>\n"
	default:
		return "<?xml version=\"1.0\" encoding=\"" + e.charset() + "\" ?>\n<root>\n"
	}
}

// Footer closes every tag the matching Header opened.
func (e Envelope) Footer(mode Mode) string {
	switch mode {
	case ModeXSPF:
		return "</trackList>\n</playlist>\n"
	case ModeITunes:
		return "\t</dict>\n</dict>\n</plist>\n"
	case ModeRSS:
		return "\n</channel>\n</rss>\n"
	default:
		return "\n</root>\n"
	}
}

// Document wraps a rendered fragment body in the mode's envelope.
func (e Envelope) Document(mode Mode, title, body string) string {
	return e.Header(mode, title) + body + e.Footer(mode)
}
