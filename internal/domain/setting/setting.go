package setting

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"travel-backoffice/internal/domain/contact"
	"travel-backoffice/internal/domain/invoice"

	"github.com/shopspring/decimal"
)

var (
	ErrUnknownKey     = errors.New("unknown setting")
	ErrInvalidTaxRate = errors.New("tax_rate must be a number between 0 and 100")
	ErrInvalidPrefix  = errors.New("invoice_prefix must not be empty")
	ErrInvalidPort    = errors.New("smtp_port must be an integer between 1 and 65535")
	ErrInvalidEmail   = errors.New("company_email must be a valid email address")
	ErrNoChanges      = errors.New("no settings to update")
)

type Key string

const (
	KeyCompanyName    Key = "company_name"
	KeyCompanyAddress Key = "company_address"
	KeyCompanyPhone   Key = "company_phone"
	KeyCompanyEmail   Key = "company_email"
	KeyCurrency       Key = "currency"
	KeyTaxRate        Key = "tax_rate"
	KeyInvoicePrefix  Key = "invoice_prefix"
	KeySMTPHost       Key = "smtp_host"
	KeySMTPPort       Key = "smtp_port"
	KeySMTPUsername   Key = "smtp_username"
	KeySMTPPassword   Key = "smtp_password"
	KeyEmailFromName  Key = "email_from_name"
	KeyInvoiceFooter  Key = "invoice_footer"
)

var knownKeys = map[Key]struct{}{
	KeyCompanyName: {}, KeyCompanyAddress: {}, KeyCompanyPhone: {}, KeyCompanyEmail: {},
	KeyCurrency: {}, KeyTaxRate: {}, KeyInvoicePrefix: {}, KeySMTPHost: {}, KeySMTPPort: {},
	KeySMTPUsername: {}, KeySMTPPassword: {}, KeyEmailFromName: {}, KeyInvoiceFooter: {},
}

const (
	DefaultTaxRate  = "10"
	DefaultCurrency = "USD"
	DefaultSMTPPort = 587
)

func (k Key) IsKnown() bool {
	_, ok := knownKeys[k]
	return ok
}

// Settings is the typed view of the key/value store, with defaults applied.
type Settings struct {
	CompanyName    string          `json:"company_name"`
	CompanyAddress string          `json:"company_address"`
	CompanyPhone   string          `json:"company_phone"`
	CompanyEmail   string          `json:"company_email"`
	Currency       string          `json:"currency"`
	TaxRate        decimal.Decimal `json:"tax_rate"`
	InvoicePrefix  string          `json:"invoice_prefix"`
	SMTPHost       string          `json:"smtp_host"`
	SMTPPort       int             `json:"smtp_port"`
	SMTPUsername   string          `json:"smtp_username"`
	SMTPPassword   string          `json:"-"`
	EmailFromName  string          `json:"email_from_name"`
	InvoiceFooter  string          `json:"invoice_footer"`
}

func Defaults() Settings {
	return Settings{
		Currency:      DefaultCurrency,
		TaxRate:       decimal.RequireFromString(DefaultTaxRate),
		InvoicePrefix: invoice.DefaultNumberPrefix,
		SMTPPort:      DefaultSMTPPort,
	}
}

// FromValues overlays stored values on the defaults. Unparseable or empty
// numeric values and an empty prefix keep their defaults.
func FromValues(values map[Key]string) Settings {
	s := Defaults()
	for k, v := range values {
		switch k {
		case KeyCompanyName:
			s.CompanyName = v
		case KeyCompanyAddress:
			s.CompanyAddress = v
		case KeyCompanyPhone:
			s.CompanyPhone = v
		case KeyCompanyEmail:
			s.CompanyEmail = v
		case KeyCurrency:
			if v != "" {
				s.Currency = v
			}
		case KeyTaxRate:
			if rate, err := parseTaxRate(v); err == nil {
				s.TaxRate = rate
			}
		case KeyInvoicePrefix:
			if v != "" {
				s.InvoicePrefix = v
			}
		case KeySMTPHost:
			s.SMTPHost = v
		case KeySMTPPort:
			if port, err := parsePort(v); err == nil {
				s.SMTPPort = port
			}
		case KeySMTPUsername:
			s.SMTPUsername = v
		case KeySMTPPassword:
			s.SMTPPassword = v
		case KeyEmailFromName:
			s.EmailFromName = v
		case KeyInvoiceFooter:
			s.InvoiceFooter = v
		}
	}
	return s
}

// ValidateUpdate checks a batch of changes before anything is written and
// returns the values normalized for storage.
func ValidateUpdate(updates map[Key]string) (map[Key]string, error) {
	if len(updates) == 0 {
		return nil, ErrNoChanges
	}
	out := make(map[Key]string, len(updates))
	for k, v := range updates {
		if !k.IsKnown() {
			return nil, fmt.Errorf("%w: %s", ErrUnknownKey, k)
		}
		v = strings.TrimSpace(v)
		switch k {
		case KeyTaxRate:
			rate, err := parseTaxRate(v)
			if err != nil {
				return nil, err
			}
			v = rate.String()
		case KeyInvoicePrefix:
			if v == "" {
				return nil, ErrInvalidPrefix
			}
		case KeySMTPPort:
			port, err := parsePort(v)
			if err != nil {
				return nil, err
			}
			v = strconv.Itoa(port)
		case KeyCompanyEmail:
			if v != "" {
				if _, err := contact.NewEmail(v); err != nil {
					return nil, ErrInvalidEmail
				}
			}
		case KeySMTPPassword:
			// Passwords keep surrounding whitespace.
			v = updates[k]
		}
		out[k] = v
	}
	return out, nil
}

func parseTaxRate(v string) (decimal.Decimal, error) {
	rate, err := decimal.NewFromString(strings.TrimSpace(v))
	if err != nil || rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(100)) {
		return decimal.Zero, ErrInvalidTaxRate
	}
	return rate, nil
}

func parsePort(v string) (int, error) {
	port, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || port < 1 || port > 65535 {
		return 0, ErrInvalidPort
	}
	return port, nil
}
