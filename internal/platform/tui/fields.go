package tui

import (
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/vovakirdan/neon-rain/internal/core"
	"github.com/vovakirdan/neon-rain/internal/rain"
)

// focusArea is the part of the view receiving keys.
type focusArea int

const (
	focusGrid focusArea = iota
	focusRows
	focusCols
)

// next cycles grid -> rows -> cols -> grid.
func (f focusArea) next() focusArea {
	return (f + 1) % 3
}

// prev cycles in the opposite direction.
func (f focusArea) prev() focusArea {
	return (f + 2) % 3
}

// ParseDim reads a dimension typed by the user.
// Leading digits are used ("12x" is 12); anything unreadable or zero becomes 1.
// The result is clamped to the grid bounds.
func ParseDim(s string) int {
	s = strings.TrimSpace(s)

	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}

	n, err := strconv.Atoi(s[:end])
	if errors.Is(err, strconv.ErrRange) {
		if s[0] == '-' {
			return rain.MinDim
		}
		return rain.MaxDim
	}
	if err != nil || n == 0 {
		n = 1
	}
	return core.Clamp(n, rain.MinDim, rain.MaxDim)
}

// newDimField creates a short numeric input field.
func newDimField(placeholder string, value int) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = placeholder
	ti.CharLimit = 3
	ti.Width = 3
	ti.SetValue(strconv.Itoa(value))
	return ti
}
