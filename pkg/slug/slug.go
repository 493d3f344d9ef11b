package slug

import (
	"strings"
	"unicode"
)

// Option configures Make.
type Option func(*config)

type config struct {
	maxLength int
	separator string
	lowercase bool
}

// MaxLength caps the slug at n runes. Zero means no limit.
func MaxLength(n int) Option {
	return func(c *config) {
		c.maxLength = n
	}
}

// Separator replaces the default "-".
func Separator(s string) Option {
	return func(c *config) {
		c.separator = s
	}
}

// Lowercase toggles lowercasing, enabled by default.
func Lowercase(enabled bool) Option {
	return func(c *config) {
		c.lowercase = enabled
	}
}

// Make builds a slug from s. The result never starts or ends with the
// separator and may be empty.
func Make(s string, opts ...Option) string {
	cfg := &config{separator: "-", lowercase: true}
	for _, opt := range opts {
		opt(cfg)
	}
	sepLen := len([]rune(cfg.separator))

	var b strings.Builder
	b.Grow(len(s))

	pendingSep := false
	count := 0
	for _, r := range s {
		if folded, ok := diacritics[r]; ok {
			r = folded
		}
		if !isAlnum(r) {
			pendingSep = count > 0
			continue
		}

		if pendingSep {
			if cfg.maxLength > 0 && count+sepLen+1 > cfg.maxLength {
				break
			}
			b.WriteString(cfg.separator)
			count += sepLen
			pendingSep = false
		}
		if cfg.maxLength > 0 && count >= cfg.maxLength {
			break
		}
		if cfg.lowercase {
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
		count++
	}

	return b.String()
}

func isAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// diacritics folds common Latin letters to ASCII.
var diacritics = map[rune]rune{
	'à': 'a', 'á': 'a', 'â': 'a', 'ã': 'a', 'ä': 'a', 'å': 'a', 'ā': 'a', 'ă': 'a', 'ą': 'a', 'æ': 'a',
	'À': 'A', 'Á': 'A', 'Â': 'A', 'Ã': 'A', 'Ä': 'A', 'Å': 'A', 'Ā': 'A', 'Ă': 'A', 'Ą': 'A', 'Æ': 'A',
	'ç': 'c', 'ć': 'c', 'č': 'c', 'Ç': 'C', 'Ć': 'C', 'Č': 'C',
	'đ': 'd', 'ď': 'd', 'Đ': 'D', 'Ď': 'D',
	'è': 'e', 'é': 'e', 'ê': 'e', 'ë': 'e', 'ē': 'e', 'ė': 'e', 'ę': 'e', 'ě': 'e',
	'È': 'E', 'É': 'E', 'Ê': 'E', 'Ë': 'E', 'Ē': 'E', 'Ė': 'E', 'Ę': 'E', 'Ě': 'E',
	'ì': 'i', 'í': 'i', 'î': 'i', 'ï': 'i', 'ī': 'i', 'į': 'i',
	'Ì': 'I', 'Í': 'I', 'Î': 'I', 'Ï': 'I', 'Ī': 'I', 'Į': 'I',
	'ł': 'l', 'Ł': 'L',
	'ñ': 'n', 'ń': 'n', 'ň': 'n', 'Ñ': 'N', 'Ń': 'N', 'Ň': 'N',
	'ò': 'o', 'ó': 'o', 'ô': 'o', 'õ': 'o', 'ö': 'o', 'ø': 'o', 'ō': 'o', 'ơ': 'o', 'œ': 'o',
	'Ò': 'O', 'Ó': 'O', 'Ô': 'O', 'Õ': 'O', 'Ö': 'O', 'Ø': 'O', 'Ō': 'O', 'Ơ': 'O', 'Œ': 'O',
	'ř': 'r', 'Ř': 'R',
	'ś': 's', 'š': 's', 'ș': 's', 'ß': 's', 'Ś': 'S', 'Š': 'S', 'Ș': 'S',
	'ť': 't', 'ț': 't', 'Ť': 'T', 'Ț': 'T',
	'ù': 'u', 'ú': 'u', 'û': 'u', 'ü': 'u', 'ū': 'u', 'ů': 'u', 'ų': 'u', 'ư': 'u',
	'Ù': 'U', 'Ú': 'U', 'Û': 'U', 'Ü': 'U', 'Ū': 'U', 'Ů': 'U', 'Ų': 'U', 'Ư': 'U',
	'ý': 'y', 'ÿ': 'y', 'Ý': 'Y', 'Ÿ': 'Y',
	'ź': 'z', 'ž': 'z', 'ż': 'z', 'Ź': 'Z', 'Ž': 'Z', 'Ż': 'Z',
}
