// Package validation holds the signup rules for email shape and
// password strength.
package validation

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dmitrijs2005/feelflow/internal/common"
)

const MinPasswordLength = 8

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// digitForms lists the characters with Unicode Numeric_Type=Digit that are
// not decimal digits (Nd): superscripts, subscripts, circled, parenthesized
// and full-stop digits and a few script-specific digit signs.
var digitForms = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x00b2, Hi: 0x00b3, Stride: 1},
		{Lo: 0x00b9, Hi: 0x00b9, Stride: 1},
		{Lo: 0x1369, Hi: 0x1371, Stride: 1},
		{Lo: 0x19da, Hi: 0x19da, Stride: 1},
		{Lo: 0x2070, Hi: 0x2070, Stride: 1},
		{Lo: 0x2074, Hi: 0x2079, Stride: 1},
		{Lo: 0x2080, Hi: 0x2089, Stride: 1},
		{Lo: 0x2460, Hi: 0x2468, Stride: 1},
		{Lo: 0x2474, Hi: 0x247c, Stride: 1},
		{Lo: 0x2488, Hi: 0x2490, Stride: 1},
		{Lo: 0x24ea, Hi: 0x24ea, Stride: 1},
		{Lo: 0x24f5, Hi: 0x24fd, Stride: 1},
		{Lo: 0x24ff, Hi: 0x24ff, Stride: 1},
		{Lo: 0x2776, Hi: 0x277e, Stride: 1},
		{Lo: 0x2780, Hi: 0x2788, Stride: 1},
		{Lo: 0x278a, Hi: 0x2792, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: 0x10a40, Hi: 0x10a43, Stride: 1},
		{Lo: 0x10e60, Hi: 0x10e68, Stride: 1},
		{Lo: 0x11052, Hi: 0x1105a, Stride: 1},
		{Lo: 0x1f100, Hi: 0x1f10a, Stride: 1},
	},
	LatinOffset: 2,
}

// isDigit accepts decimal digits in any script plus digitForms.
// Fractions and other numeric symbols (½, Ⅻ) do not count.
func isDigit(r rune) bool {
	return unicode.IsDigit(r) || unicode.Is(digitForms, r)
}

// NormalizeEmail trims surrounding whitespace and lower-cases the address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateEmail expects an already normalized address.
func ValidateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return common.ErrorInvalidFormat
	}
	return nil
}

// ValidatePassword checks length, then uppercase, then digit, and reports
// the first rule that fails as a *common.WeakPasswordError.
func ValidatePassword(password string) error {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return &common.WeakPasswordError{Reason: "Password must be at least 8 characters long"}
	}
	if !strings.ContainsFunc(password, unicode.IsUpper) {
		return &common.WeakPasswordError{Reason: "Password must contain at least one uppercase letter"}
	}
	if !strings.ContainsFunc(password, isDigit) {
		return &common.WeakPasswordError{Reason: "Password must contain at least one number"}
	}
	return nil
}
