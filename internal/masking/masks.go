package masking

import (
	"sort"
	"strings"
	"unicode"

	"github.com/MKhiriev/go-privacy-pipeline/models"
)

const maskRune = '*'

// minLocalDigits is the least number of digits after a country prefix for
// the prefix to be kept by the phone mask.
const minLocalDigits = 7

func stars(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(string(maskRune), n)
}

// keepEnds keeps head leading and tail trailing runes of r and masks the rest.
func keepEnds(r []rune, head, tail int) string {
	if head+tail >= len(r) {
		return string(r)
	}
	return string(r[:head]) + stars(len(r)-head-tail) + string(r[len(r)-tail:])
}

func maskAccountID(v string) string {
	r := []rune(v)
	switch {
	case len(r) <= 2:
		return v
	case len(r) <= 5:
		return keepEnds(r, 1, 0)
	default:
		return keepEnds(r, 3, 2)
	}
}

// maskNationalID keeps the first letter and the parenthesized check digit.
func maskNationalID(v string) string {
	r := []rune(v)
	if len(r) == 0 {
		return v
	}
	open := strings.IndexRune(v, '(')
	if open > 0 && strings.HasSuffix(v, ")") {
		openRunes := len([]rune(v[:open]))
		return string(r[0]) + stars(openRunes-1) + string(r[openRunes:])
	}
	return keepEnds(r, 1, 0)
}

func maskEmail(v string) string {
	local, domain, ok := strings.Cut(v, "@")
	if !ok {
		return v
	}

	lr := []rune(local)
	if len(lr) > 1 {
		local = keepEnds(lr, 1, 0)
	}

	// Every label but the TLD is masked, whatever its length.
	labels := strings.Split(domain, ".")
	last := len(labels) - 1
	if last == 0 {
		last = 1
	}
	for i := range labels[:last] {
		labels[i] = stars(len([]rune(labels[i])))
	}
	domain = strings.Join(labels, ".")

	return local + "@" + domain
}

// phoneMasker keeps a recognised country prefix and the last four digits.
type phoneMasker struct {
	prefixes []string
}

func newPhoneMasker(prefixes []string) phoneMasker {
	p := make([]string, 0, len(prefixes))
	for _, s := range prefixes {
		if s = strings.TrimSpace(s); s != "" {
			if !strings.HasPrefix(s, "+") {
				s = "+" + s
			}
			p = append(p, s)
		}
	}
	// longest first so that +852 wins over +8
	sort.SliceStable(p, func(i, j int) bool { return len(p[i]) > len(p[j]) })
	return phoneMasker{prefixes: p}
}

func (m phoneMasker) mask(v string) string {
	var b strings.Builder
	for _, c := range v {
		if unicode.IsDigit(c) || c == '+' {
			b.WriteRune(c)
		}
	}
	clean := b.String()

	for _, p := range m.prefixes {
		if strings.HasPrefix(clean, p) && len(clean)-len(p) >= minLocalDigits {
			return p + " " + stars(4) + clean[len(clean)-4:]
		}
	}

	if len(clean) >= 8 {
		return stars(4) + clean[len(clean)-4:]
	}
	return stars(len([]rune(v)))
}

func maskName(v string) string {
	parts := strings.Fields(v)
	for i, p := range parts {
		r := []rune(p)
		if len(r) > 1 {
			parts[i] = keepEnds(r, 1, 0)
		}
	}
	return strings.Join(parts, " ")
}

// maskAddress keeps only the trailing locality.
func maskAddress(v string) string {
	if parts := strings.Split(v, ","); len(parts) > 1 {
		return "*** " + strings.TrimSpace(parts[len(parts)-1])
	}
	words := strings.Fields(v)
	if len(words) == 0 {
		return v
	}
	return "*** " + words[len(words)-1]
}

func maskPassport(v string) string {
	r := []rune(v)
	if len(r) <= 2 {
		return v
	}
	if len(r) <= 4 {
		return keepEnds(r, 2, 0)
	}
	return keepEnds(r, 2, 2)
}

func maskDriversLicense(v string) string {
	r := []rune(v)
	if len(r) <= 2 {
		return v
	}
	if len(r) <= 5 {
		return keepEnds(r, 2, 0)
	}
	return keepEnds(r, 2, 3)
}

// maskCreditCard keeps the last four digits. Separators stay where they are.
func maskCreditCard(v string) string {
	digits := 0
	for _, c := range v {
		if unicode.IsDigit(c) {
			digits++
		}
	}
	if digits < 12 {
		return stars(len([]rune(v)))
	}

	var b strings.Builder
	seen := 0
	for _, c := range v {
		if unicode.IsDigit(c) {
			if seen < digits-4 {
				c = maskRune
			}
			seen++
		}
		b.WriteRune(c)
	}
	return b.String()
}

func maskBankAccount(v string) string {
	if parts := strings.Split(v, "-"); len(parts) >= 2 {
		for i := 0; i < len(parts)-1; i++ {
			parts[i] = stars(len([]rune(parts[i])))
		}
		return strings.Join(parts, "-")
	}

	r := []rune(v)
	if len(r) > 4 {
		return keepEnds(r, 0, 4)
	}
	return v
}

// maskIPAddress keeps the network part: two octets of IPv4, four groups of
// IPv6.
func maskIPAddress(v string) string {
	if parts := strings.Split(v, "."); len(parts) == 4 {
		return parts[0] + "." + parts[1] + ".***.***"
	}
	if parts := strings.Split(v, ":"); len(parts) > 4 {
		for i := 4; i < len(parts); i++ {
			parts[i] = stars(4)
		}
		return strings.Join(parts, ":")
	}
	return maskGeneral(v)
}

// maskDateOfBirth keeps only the day.
func maskDateOfBirth(v string) string {
	for _, sep := range []string{"-", "/"} {
		parts := strings.Split(v, sep)
		if len(parts) != 3 {
			continue
		}
		if len(parts[0]) == 4 {
			return stars(4) + sep + stars(len(parts[1])) + sep + parts[2]
		}
		return parts[0] + sep + stars(len(parts[1])) + sep + stars(len(parts[2]))
	}

	r := []rune(v)
	if len(r) <= 2 {
		return v
	}
	return keepEnds(r, 0, 2)
}

func maskGeneral(v string) string {
	r := []rune(v)
	switch {
	case len(r) <= 2:
		return v
	case len(r) <= 4:
		return keepEnds(r, 1, 0)
	default:
		return keepEnds(r, 2, 2)
	}
}

// maskFor returns the mask function of ft. Unknown types use the general
// mask.
func (m *Masker) maskFor(ft models.FieldType) func(string) string {
	switch ft {
	case models.FieldAccountID:
		return maskAccountID
	case models.FieldNationalID:
		return maskNationalID
	case models.FieldEmail:
		return maskEmail
	case models.FieldPhone:
		return m.phone.mask
	case models.FieldName:
		return maskName
	case models.FieldAddress:
		return maskAddress
	case models.FieldPassport:
		return maskPassport
	case models.FieldDriversLicense:
		return maskDriversLicense
	case models.FieldCreditCard:
		return maskCreditCard
	case models.FieldBankAccount:
		return maskBankAccount
	case models.FieldIPAddress:
		return maskIPAddress
	case models.FieldDateOfBirth:
		return maskDateOfBirth
	default:
		return maskGeneral
	}
}
