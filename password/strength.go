package password

import "strings"

// Strength labels.
const (
	LabelNone   = "No password"
	LabelWeak   = "Weak"
	LabelMedium = "Medium"
	LabelStrong = "Strong"
)

// Strength is a coarse password score.
type Strength struct {
	// Score is 0..6: one point each for length >= 8, length >= 12, a
	// lowercase letter, an uppercase letter, a digit and any other character.
	Score int    `json:"score" yaml:"score"`
	Label string `json:"label" yaml:"label"`
}

// Score rates pw. Scores up to 2 are weak, up to 4 medium, above that strong.
func Score(pw string) Strength {
	if pw == "" {
		return Strength{Label: LabelNone}
	}
	score := 0
	if len(pw) >= 8 {
		score++
	}
	if len(pw) >= 12 {
		score++
	}
	for _, class := range []func(rune) bool{isLower, isUpper, isDigit, isOther} {
		if strings.ContainsFunc(pw, class) {
			score++
		}
	}

	switch {
	case score <= 2:
		return Strength{Score: score, Label: LabelWeak}
	case score <= 4:
		return Strength{Score: score, Label: LabelMedium}
	}
	return Strength{Score: score, Label: LabelStrong}
}

func isLower(r rune) bool { return r >= 'a' && r <= 'z' }
func isUpper(r rune) bool { return r >= 'A' && r <= 'Z' }
func isDigit(r rune) bool { return r >= '0' && r <= '9' }
func isOther(r rune) bool { return !isLower(r) && !isUpper(r) && !isDigit(r) }
