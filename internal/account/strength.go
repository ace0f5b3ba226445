package account

import "unicode/utf16"

// Strength is the result of scoring a password.
type Strength struct {
	Score int    `json:"score"` // 0-4
	Label string `json:"label"`
	Color string `json:"color"`
}

// Percent is the width of the strength meter.
func (s Strength) Percent() int {
	return s.Score * 25
}

// PasswordStrength counts how many of four independent rules the password
// satisfies: at least 8 characters, an uppercase ASCII letter, a digit, and a
// character that is not an ASCII letter or digit. Length is measured in
// UTF-16 code units so the score agrees with the browser's meter.
func PasswordStrength(pw string) int {
	var upper, digit, symbol bool
	n := 0
	for _, r := range pw {
		n += utf16.RuneLen(r)
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case r >= 'a' && r <= 'z':
		default:
			symbol = true
		}
	}

	score := 0
	for _, ok := range []bool{n >= 8, upper, digit, symbol} {
		if ok {
			score++
		}
	}
	return score
}

// StrengthLabel maps a score to its qualitative label.
func StrengthLabel(score int) string {
	switch score {
	case 0, 1:
		return "Weak"
	case 2:
		return "Fair"
	case 3:
		return "Good"
	case 4:
		return "Strong"
	default:
		return ""
	}
}

// StrengthColor maps a score to the meter colour.
func StrengthColor(score int) string {
	switch score {
	case 0, 1:
		return "red"
	case 2:
		return "yellow"
	case 3:
		return "blue"
	case 4:
		return "green"
	default:
		return "gray"
	}
}

// Evaluate scores pw and labels the result.
func Evaluate(pw string) Strength {
	score := PasswordStrength(pw)
	return Strength{Score: score, Label: StrengthLabel(score), Color: StrengthColor(score)}
}
