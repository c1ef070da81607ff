package model

import (
	"fmt"
	"strings"
)

// Render draws the board as text, with coordinates shown on empty cells:
//
//	  Score: Black(@@) 0 - 0 White(OO)
//
//	      OO OO OO OO OO               i
//	    OO OO OO OO OO OO              h
//	   g3 g4 OO OO OO g8 g9            g
//	  ...
func (b *Board) Render() string {
	var sb strings.Builder
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "  Score: Black(@@) %d - %d White(OO)\n\n", b.Score(Black), b.Score(White))

	for r := 8; r >= 0; r-- {
		letter := rowLetters[r]
		indent := r - 4
		if indent < 0 {
			indent = -indent
		}
		lo, hi := rowSpan(r)

		var cells []string
		for c := lo; c <= hi; c++ {
			switch b.Get(Position{Row: r, Col: c}) {
			case Black:
				cells = append(cells, "@@")
			case White:
				cells = append(cells, "OO")
			default:
				cells = append(cells, fmt.Sprintf("%c%d", letter, c))
			}
		}

		row := fmt.Sprintf("  %s%s", strings.Repeat("  ", indent), strings.Join(cells, " "))
		fmt.Fprintf(&sb, "%-40s%c\n", row, letter)
	}

	sb.WriteString("\n")
	return sb.String()
}
