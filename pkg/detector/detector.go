// Package detector derives page metadata that is stored next to each vector:
// the page language, its title and site name, and URL-based guesses about the
// kind of site.
package detector

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
	"github.com/pemistahl/lingua-go"
)

// minLanguageText is the shortest text worth handing to the language model.
// Login pages often carry only a few words.
const minLanguageText = 12

// PageMeta describes a captured page.
type PageMeta struct {
	Language           string  `json:"language,omitempty" yaml:"language,omitempty"`
	LanguageConfidence float64 `json:"language_confidence,omitempty" yaml:"language_confidence,omitempty"`
	DeclaredLanguage   string  `json:"declared_language,omitempty" yaml:"declared_language,omitempty"`
	Title              string  `json:"title,omitempty" yaml:"title,omitempty"`
	SiteName           string  `json:"site_name,omitempty" yaml:"site_name,omitempty"`
	Excerpt            string  `json:"excerpt,omitempty" yaml:"excerpt,omitempty"`
	DomainType         string  `json:"domain_type" yaml:"domain_type"` // gov, edu, academic, mobile, commercial
	Country            string  `json:"country" yaml:"country"`         // TLD-based guess
}

// Languages are the languages the vocabulary covers. Detection is limited to
// them so short pages do not resolve to an unrelated language.
var Languages = []lingua.Language{
	lingua.English, lingua.French, lingua.German, lingua.Spanish, lingua.Italian,
	lingua.Portuguese, lingua.Dutch, lingua.Polish, lingua.Russian, lingua.Turkish,
	lingua.Swedish, lingua.Japanese, lingua.Chinese,
}

// Detector holds the language model. Building it is costly, so create one and
// share it; it is safe for concurrent use.
type Detector struct {
	languages lingua.LanguageDetector
}

func New() *Detector {
	return &Detector{
		languages: lingua.NewLanguageDetectorBuilder().
			FromLanguages(Languages...).
			WithPreloadedLanguageModels().
			Build(),
	}
}

// Analyze derives metadata for the page at rawURL. Readability failures are
// not fatal; the document title and body text are used instead.
func (d *Detector) Analyze(rawURL string, html []byte) (*PageMeta, error) {
	meta := &PageMeta{DomainType: "unknown", Country: "unknown"}

	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return nil, err
	}
	meta.DomainType = detectDomainType(parsedURL)
	meta.Country = detectCountry(parsedURL)

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil, err
	}
	meta.DeclaredLanguage = declaredLanguage(doc)
	text := normalizeSpace(doc.Find("body").Text())
	meta.Title = normalizeSpace(doc.Find("title").First().Text())

	rp := readability.NewParser()
	article, err := rp.Parse(bytes.NewReader(html), parsedURL)
	if err == nil {
		if article.Title != "" {
			meta.Title = normalizeSpace(article.Title)
		}
		meta.SiteName = article.SiteName
		meta.Excerpt = article.Excerpt
		if t := normalizeSpace(article.TextContent); len(t) > len(text)/2 {
			text = t
		}
	}

	meta.Language, meta.LanguageConfidence = d.detectLanguage(meta.Title + " " + text)
	return meta, nil
}

// detectLanguage returns the ISO 639-1 code of the text's language and the
// model's confidence in it, or empty values when the text is too short.
func (d *Detector) detectLanguage(text string) (string, float64) {
	text = strings.TrimSpace(text)
	if len([]rune(text)) < minLanguageText {
		return "", 0
	}
	language, ok := d.languages.DetectLanguageOf(text)
	if !ok {
		return "", 0
	}
	code := strings.ToLower(language.IsoCode639_1().String())
	return code, d.languages.ComputeLanguageConfidence(text, language)
}

// declaredLanguage reads the primary subtag of <html lang>.
func declaredLanguage(doc *goquery.Document) string {
	lang, ok := doc.Find("html").First().Attr("lang")
	if !ok {
		return ""
	}
	lang = strings.ToLower(strings.TrimSpace(lang))
	if i := strings.IndexAny(lang, "-_"); i > 0 {
		lang = lang[:i]
	}
	return lang
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// detectDomainType identifies domain classification
func detectDomainType(u *url.URL) string {
	host := strings.ToLower(u.Hostname())
	if host == "" {
		return "unknown"
	}

	if strings.HasSuffix(host, ".gov") || strings.HasSuffix(host, ".mil") {
		return "gov"
	}
	if strings.HasSuffix(host, ".edu") {
		return "edu"
	}

	academicDomains := []string{
		"arxiv.org", "doi.org", "researchgate.net", "academia.edu", "ssrn.com",
	}
	for _, domain := range academicDomains {
		if strings.Contains(host, domain) {
			return "academic"
		}
	}

	if strings.HasPrefix(host, "m.") || strings.HasPrefix(host, "mobile.") {
		return "mobile"
	}

	return "commercial"
}

// detectCountry extracts country from TLD
func detectCountry(u *url.URL) string {
	parts := strings.Split(strings.ToLower(u.Hostname()), ".")
	if len(parts) < 2 {
		return "unknown"
	}

	tld := parts[len(parts)-1]

	countries := map[string]string{
		"uk": "uk", "de": "de", "fr": "fr", "jp": "jp", "cn": "cn",
		"au": "au", "ca": "ca", "in": "in", "br": "br", "ru": "ru",
		"it": "it", "es": "es", "nl": "nl", "se": "se", "ch": "ch",
		"pl": "pl", "tr": "tr", "pt": "pt", "tw": "tw",
	}
	if country, ok := countries[tld]; ok {
		return country
	}

	// US implied for .gov, .edu, .mil
	if tld == "gov" || tld == "edu" || tld == "mil" {
		return "us"
	}

	return "unknown"
}
