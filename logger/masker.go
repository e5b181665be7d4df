package logger

import (
	"fmt"
	"regexp"
)

const maskValue = "xxxxx"

// Masker redact sensitive value from text
type Masker interface {
	Mask(text string) string
}

type maskImpl struct {
	jsonPatterns  []*regexp.Regexp
	queryPatterns []*regexp.Regexp
}

// NewMasker create masker for given field names, default keywords is "password" and "token"
func NewMasker(keywords ...string) Masker {
	if len(keywords) == 0 {
		keywords = []string{"password", "token"}
	}

	m := &maskImpl{}
	for _, keyword := range keywords {
		k := regexp.QuoteMeta(keyword)
		m.jsonPatterns = append(m.jsonPatterns,
			regexp.MustCompile(fmt.Sprintf(`(?i)("%s"\s*:\s*)("(?:[^"\\]|\\.)*"|[^,}\s]+)`, k)))
		m.queryPatterns = append(m.queryPatterns,
			regexp.MustCompile(fmt.Sprintf(`(?i)((?:^|[?&\s])%s=)([^&\s]*)`, k)))
	}
	return m
}

func (m *maskImpl) Mask(text string) string {
	for _, p := range m.jsonPatterns {
		text = p.ReplaceAllString(text, `${1}"`+maskValue+`"`)
	}
	for _, p := range m.queryPatterns {
		text = p.ReplaceAllString(text, "${1}"+maskValue)
	}
	return text
}
