package domain

import "strings"

// entityReplacer decodes the fixed entity table in a single pass. Output of one
// replacement is never rescanned, so "&amp;lt;" becomes "&lt;" and stops there.
var entityReplacer = strings.NewReplacer(
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#039;", "'",
	"&eacute;", "é",
	"&Eacute;", "É",
	"&egrave;", "è",
	"&aacute;", "á",
	"&iacute;", "í",
	"&oacute;", "ó",
	"&uacute;", "ú",
	"&ntilde;", "ñ",
	"&ouml;", "ö",
	"&uuml;", "ü",
	"&auml;", "ä",
	"&ldquo;", "“",
	"&rdquo;", "”",
	"&lsquo;", "‘",
	"&rsquo;", "’",
	"&hellip;", "…",
	"&shy;", "­",
	"&amp;", "&",
)

// DecodeEntities replaces the HTML entities the trivia API emits with their literal characters.
// Anything outside the fixed table is left untouched.
func DecodeEntities(s string) string {
	if !strings.Contains(s, "&") {
		return s
	}
	return entityReplacer.Replace(s)
}
