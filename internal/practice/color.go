package practice

import "strings"

const (
	colorMastered = "green"
	colorLearning = "yellow"
)

// MasteredFromColor maps the highlight color picked in the UI to the stored
// mastery flag: any color naming green means the user already knows the word.
func MasteredFromColor(color string) bool {
	return strings.Contains(strings.ToLower(color), "green")
}

// DisplayColor is the reverse mapping used when rendering the highlight list.
func DisplayColor(mastered bool) string {
	if mastered {
		return colorMastered
	}
	return colorLearning
}
