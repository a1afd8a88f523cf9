package classifier

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-privacy-pipeline/models"
)

// Rule describes how one field type is recognised: by keywords in the
// column name and by patterns over sample values.
type Rule struct {
	FieldType   models.FieldType `json:"field_type" yaml:"field_type"`
	Keywords    []string         `json:"column_keywords" yaml:"column_keywords"`
	Patterns    []string         `json:"value_patterns" yaml:"value_patterns"`
	Weight      float64          `json:"confidence_weight" yaml:"confidence_weight"`
	Description string           `json:"description" yaml:"description"`
	Regional    bool             `json:"regional" yaml:"regional"`

	compiled []*regexp.Regexp
}

// DefaultRuleWeight applies to custom rules that omit confidence_weight.
const DefaultRuleWeight = 0.5

// compile validates r and prepares its patterns. Patterns are anchored at
// the start of the value.
func (r *Rule) compile() error {
	if !r.FieldType.IsValid() {
		return fmt.Errorf("%w: unknown field type %q", ErrInvalidRule, r.FieldType)
	}
	if r.Weight == 0 {
		r.Weight = DefaultRuleWeight
	}
	if r.Weight < 0 || r.Weight > 1 {
		return fmt.Errorf("%w: %s weight %.2f outside [0,1]", ErrInvalidRule, r.FieldType, r.Weight)
	}

	keywords := make([]string, len(r.Keywords))
	for i, kw := range r.Keywords {
		keywords[i] = strings.ToLower(kw)
	}
	r.Keywords = keywords

	r.compiled = make([]*regexp.Regexp, 0, len(r.Patterns))
	for _, p := range r.Patterns {
		expr := p
		if !strings.HasPrefix(expr, "^") {
			expr = "^(?:" + expr + ")"
		}
		re, err := regexp.Compile(expr)
		if err != nil {
			return fmt.Errorf("%w: %s pattern %q: %w", ErrInvalidRule, r.FieldType, p, err)
		}
		r.compiled = append(r.compiled, re)
	}
	return nil
}

func (r *Rule) matchesColumn(lowerColumn string) bool {
	for _, kw := range r.Keywords {
		if kw != "" && strings.Contains(lowerColumn, kw) {
			return true
		}
	}
	return false
}

// matchValue returns the first pattern matching v.
func (r *Rule) matchValue(v string) (string, bool) {
	for i, re := range r.compiled {
		if re.MatchString(v) {
			return r.Patterns[i], true
		}
	}
	return "", false
}

// DefaultRules returns a fresh copy of the built-in rule table. Order
// matters: on equal scores the earlier rule wins.
func DefaultRules() []Rule {
	return []Rule{
		{
			FieldType:   models.FieldAccountID,
			Keywords:    []string{"account", "customer_id", "acct", "id", "reference"},
			Patterns:    []string{`^ACCT\d+$`, `^[A-Z]{2,4}\d{6,12}$`, `^\d{8,15}$`},
			Weight:      0.9,
			Description: "Account and customer identification numbers",
		},
		{
			FieldType:   models.FieldNationalID,
			Keywords:    []string{"hkid", "national_id", "id_number", "identity", "id_card"},
			Patterns:    []string{`^[A-Z]\d{6}\(\d\)$`, `^[A-Z]{1,2}\d{6}\(\d\)$`},
			Weight:      0.95,
			Description: "National identity document numbers with check digit",
			Regional:    true,
		},
		{
			FieldType:   models.FieldEmail,
			Keywords:    []string{"email", "mail", "e_mail", "contact_email"},
			Patterns:    []string{`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`},
			Weight:      0.95,
			Description: "Email addresses",
		},
		{
			FieldType: models.FieldPhone,
			Keywords:  []string{"phone", "mobile", "tel", "telephone", "contact", "number"},
			Patterns: []string{
				`^[+]?852[\s\-]?\d{4}[\s\-]?\d{4}$`,
				`^[+]?[\d\s()\-]{7,15}$`,
				`^\d{8}$`,
				`^[+]?1[\s\-]?\d{3}[\s\-]?\d{3}[\s\-]?\d{4}$`,
			},
			Weight:      0.8,
			Description: "Phone numbers, local and international",
			Regional:    true,
		},
		{
			FieldType: models.FieldName,
			Keywords:  []string{"name", "customer", "person", "contact", "first_name", "last_name", "full_name"},
			Patterns: []string{
				`^[A-Z][a-z]+\s[A-Z][a-z]+$`,
				`^[A-Z][a-z]+\s[A-Z][a-z]+\s[A-Z][a-z]+$`,
				`^[A-Z][a-z]+,\s[A-Z][a-z]+$`,
				`^[\x{4e00}-\x{9fff}]{2,4}$`,
				`^[A-Z][a-z]+\s[\x{4e00}-\x{9fff}]{2,4}$`,
			},
			Weight:      0.7,
			Description: "Personal names including CJK names",
		},
		{
			FieldType: models.FieldAddress,
			Keywords:  []string{"address", "location", "street", "home", "residence", "postal"},
			Patterns: []string{
				`^\d+\s[A-Z][a-z]+\s(St|Ave|Rd|Dr|Blvd|Lane)`,
				`^.+,\s(Hong Kong|Kowloon|New Territories)$`,
				`^Flat\s\d+[A-Z]?,\s\d+[A-Z]?\s.+$`,
				`^.+\s\d{5}$`,
			},
			Weight:      0.8,
			Description: "Street and flat-style addresses",
			Regional:    true,
		},
		{
			FieldType:   models.FieldPassport,
			Keywords:    []string{"passport", "travel_document", "passport_number"},
			Patterns:    []string{`^[A-Z]\d{8}$`, `^[A-Z]{2}\d{7}$`, `^[A-Z]\d{7}$`, `^[A-Z0-9]{6,9}$`},
			Weight:      0.9,
			Description: "Passport numbers",
		},
		{
			FieldType:   models.FieldDriversLicense,
			Keywords:    []string{"license", "licence", "driving", "driver", "dl"},
			Patterns:    []string{`^[A-Z]\d{8}$`, `^[A-Z]{1,2}\d{6,8}$`, `^\d{8,10}$`},
			Weight:      0.85,
			Description: "Driver's license numbers",
		},
		{
			FieldType: models.FieldCreditCard,
			Keywords:  []string{"credit_card", "card", "payment", "cc", "card_number"},
			Patterns: []string{
				`^4\d{12}(\d{3})?$`,
				`^5[1-5]\d{14}$`,
				`^3[47]\d{13}$`,
				`^\d{4}[\s\-]?\d{4}[\s\-]?\d{4}[\s\-]?\d{4}$`,
			},
			Weight:      0.95,
			Description: "Credit card numbers",
		},
		{
			FieldType: models.FieldBankAccount,
			Keywords:  []string{"bank", "account", "banking", "acc_no", "account_number"},
			Patterns: []string{
				`^\d{3}-\d{6}-\d{3}$`,
				`^\d{9,18}$`,
				`^[A-Z]{2}\d{2}[A-Z0-9]{4}\d{7}[A-Z0-9]{1,31}$`,
			},
			Weight:      0.9,
			Description: "Bank account numbers and IBANs",
		},
		{
			FieldType: models.FieldIPAddress,
			Keywords:  []string{"ip", "ip_address", "address", "network"},
			Patterns: []string{
				`^(?:(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)\.){3}(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)$`,
				`^(?:[0-9a-fA-F]{1,4}:){7}[0-9a-fA-F]{1,4}$`,
			},
			Weight:      0.9,
			Description: "IPv4 and IPv6 addresses",
		},
		{
			FieldType:   models.FieldDateOfBirth,
			Keywords:    []string{"birth", "dob", "date_of_birth", "birthday", "born"},
			Patterns:    []string{`^\d{4}-\d{2}-\d{2}$`, `^\d{2}/\d{2}/\d{4}$`, `^\d{2}-\d{2}-\d{4}$`},
			Weight:      0.8,
			Description: "Dates of birth",
		},
	}
}
