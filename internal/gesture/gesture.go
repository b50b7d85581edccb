// Package gesture resolves class indices to the gesture names shown to users.
package gesture

import (
	"strings"

	"github.com/go-sod/gesture/internal/predictor"
)

// LiveLabel names anything without a known gesture, such as the live sample itself.
const LiveLabel = "Live"

// Lookup resolves a class index to a gesture name.
type Lookup interface {
	Name(classIndex int) (string, bool)
}

var _ Lookup = List(nil)

// List is an ordered set of gesture names where the position is the class index.
type List []string

// ParseList splits a comma separated list of names, dropping blanks around each name.
func ParseList(s string) List {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	list := make(List, len(parts))
	for i := range parts {
		list[i] = strings.TrimSpace(parts[i])
	}
	return list
}

func (l List) Name(classIndex int) (string, bool) {
	if classIndex < 0 || classIndex >= len(l) || l[classIndex] == "" {
		return "", false
	}
	return l[classIndex], true
}

// LabelFor returns the gesture name for classIndex or LiveLabel when lookup has none.
func LabelFor(lookup Lookup, classIndex int) string {
	if lookup == nil {
		return LiveLabel
	}
	if name, ok := lookup.Name(classIndex); ok {
		return name
	}
	return LiveLabel
}

// Top returns the best scoring class. The lowest index wins a tie, -1 is returned for an empty vector.
func Top(confidences predictor.Confidences) (int, float64) {
	best, score := -1, 0.0
	for i, c := range confidences {
		if best == -1 || c > score {
			best, score = i, c
		}
	}
	return best, score
}
