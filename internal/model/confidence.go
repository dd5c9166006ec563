package model

import (
	"fmt"
	"strings"
)

// Confidence is the user's self-assessment for one skill.
type Confidence string

// Confidence levels.
const (
	ConfidenceKnow     Confidence = "know"
	ConfidencePractice Confidence = "practice"
)

// ConfidenceStep is the score delta applied per skill.
const ConfidenceStep = 2

// ParseConfidence converts user input into a Confidence.
func ParseConfidence(s string) (Confidence, error) {
	switch Confidence(strings.ToLower(strings.TrimSpace(s))) {
	case ConfidenceKnow:
		return ConfidenceKnow, nil
	case ConfidencePractice:
		return ConfidencePractice, nil
	default:
		return "", fmt.Errorf("invalid confidence %q: must be %q or %q", s, ConfidenceKnow, ConfidencePractice)
	}
}

// Toggle flips between know and practice.
func (c Confidence) Toggle() Confidence {
	if c == ConfidenceKnow {
		return ConfidencePractice
	}
	return ConfidenceKnow
}

// FinalScore adjusts base by +2 per known skill and -2 per skill that still
// needs practice, clamped to [0,100].
func FinalScore(base int, confidence map[string]Confidence) int {
	score := base
	for _, c := range confidence {
		switch c {
		case ConfidenceKnow:
			score += ConfidenceStep
		case ConfidencePractice:
			score -= ConfidenceStep
		}
	}
	return ClampScore(score)
}

// ClampScore bounds a score to [0,100].
func ClampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
