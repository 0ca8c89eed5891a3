package checker

import (
	"strconv"
	"strings"
	"unicode"
)

// MakeUsername derives the ASCII slug identity used to key a lifter
// across meets: the name lowercased with diacritics and punctuation
// stripped to bare ASCII letters/digits, plus the "#N" disambiguation
// suffix carried through numerically when present. The input is the
// already-NFKC-normalized Name column (or its script-name
// fallback), and the derivation happens during the post-file inference
// pass, not per-field.
func MakeUsername(name string) string {
	base := name
	disambig := ""
	if i := strings.IndexByte(name, '#'); i >= 0 {
		base = strings.TrimRight(name[:i], " ")
		disambig = strings.TrimSpace(name[i+1:])
	}

	var sb strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			sb.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			sb.WriteRune(unicode.ToLower(r))
		case unicode.IsLetter(r):
			if folded := foldToASCII(r); folded != 0 {
				sb.WriteRune(folded)
			}
		}
	}

	username := sb.String()
	if disambig != "" {
		if n, err := strconv.Atoi(disambig); err == nil && n > 0 {
			username += "#" + strconv.Itoa(n)
		}
	}
	return username
}

// foldToASCII maps common Latin-1 Supplement and Latin Extended-A
// diacritic letters to their base ASCII letter, covering the common
// transliterations lifter names actually use. Letters
// outside this table (CJK, Cyrillic, Greek, Hangul) fold to nothing,
// matching the rule that a non-Latin name's username comes from its
// fallback spelling, not from its native script.
func foldToASCII(r rune) rune {
	switch unicode.ToLower(r) {
	case 'à', 'á', 'â', 'ã', 'ä', 'å', 'ā', 'ă', 'ą':
		return 'a'
	case 'ç', 'ć', 'č', 'ĉ', 'ċ':
		return 'c'
	case 'ð', 'đ', 'ď':
		return 'd'
	case 'è', 'é', 'ê', 'ë', 'ē', 'ĕ', 'ė', 'ę', 'ě':
		return 'e'
	case 'ĝ', 'ğ', 'ġ', 'ģ':
		return 'g'
	case 'ĥ', 'ħ':
		return 'h'
	case 'ì', 'í', 'î', 'ï', 'ĩ', 'ī', 'ĭ', 'į':
		return 'i'
	case 'ĵ':
		return 'j'
	case 'ķ':
		return 'k'
	case 'ĺ', 'ļ', 'ľ', 'ŀ', 'ł':
		return 'l'
	case 'ñ', 'ń', 'ņ', 'ň':
		return 'n'
	case 'ò', 'ó', 'ô', 'õ', 'ö', 'ø', 'ō', 'ŏ', 'ő':
		return 'o'
	case 'ŕ', 'ŗ', 'ř':
		return 'r'
	case 'ś', 'ŝ', 'ş', 'š':
		return 's'
	case 'ţ', 'ť', 'ŧ':
		return 't'
	case 'ù', 'ú', 'û', 'ü', 'ũ', 'ū', 'ŭ', 'ů', 'ű', 'ų':
		return 'u'
	case 'ý', 'ÿ', 'ŷ':
		return 'y'
	case 'ź', 'ż', 'ž':
		return 'z'
	default:
		return 0
	}
}
