package model

// Named starting layouts. Coordinates are (row, col) with row a=0 at the
// bottom; each side starts with 14 marbles.

// LayoutStandard is the official Abalone starting position
const LayoutStandard = "standard"

// LayoutBelgianDaisy places each side's marbles as two flowers in opposing corners
const LayoutBelgianDaisy = "belgian_daisy"

// LayoutGermanDaisy shifts the daisy flowers one row off the board edge
const LayoutGermanDaisy = "german_daisy"

var standardBlack = []Position{
	{0, 1}, {0, 2}, {0, 3}, {0, 4}, {0, 5},
	{1, 1}, {1, 2}, {1, 3}, {1, 4}, {1, 5}, {1, 6},
	{2, 3}, {2, 4}, {2, 5},
}

var standardWhite = []Position{
	{6, 5}, {6, 6}, {6, 7},
	{7, 4}, {7, 5}, {7, 6}, {7, 7}, {7, 8}, {7, 9},
	{8, 5}, {8, 6}, {8, 7}, {8, 8}, {8, 9},
}

var belgianDaisyBlack = []Position{
	{0, 1}, {0, 2}, {1, 1}, {1, 2}, {1, 3}, {2, 1}, {2, 2}, // bottom-left flower
	{6, 8}, {6, 9}, {7, 7}, {7, 8}, {7, 9}, {8, 8}, {8, 9}, // top-right flower
}

var belgianDaisyWhite = []Position{
	{0, 4}, {0, 5}, {1, 4}, {1, 5}, {1, 6}, {2, 6}, {2, 7}, // bottom-right flower
	{6, 3}, {6, 4}, {7, 4}, {7, 5}, {7, 6}, {8, 5}, {8, 6}, // top-left flower
}

var germanDaisyBlack = []Position{
	{1, 1}, {1, 2}, {2, 1}, {2, 2}, {2, 3}, {3, 1}, {3, 2}, // bottom-left flower
	{5, 8}, {5, 9}, {6, 7}, {6, 8}, {6, 9}, {7, 8}, {7, 9}, // top-right flower
}

var germanDaisyWhite = []Position{
	{1, 5}, {1, 6}, {2, 5}, {2, 6}, {2, 7}, {3, 7}, {3, 8}, // bottom-right flower
	{5, 2}, {5, 3}, {6, 3}, {6, 4}, {6, 5}, {7, 4}, {7, 5}, // top-left flower
}

var layouts = map[string][2][]Position{
	LayoutStandard:     {standardBlack, standardWhite},
	LayoutBelgianDaisy: {belgianDaisyBlack, belgianDaisyWhite},
	LayoutGermanDaisy:  {germanDaisyBlack, germanDaisyWhite},
}

// ValidLayouts returns the recognized layout names
func ValidLayouts() []string {
	return []string{LayoutStandard, LayoutBelgianDaisy, LayoutGermanDaisy}
}

// SetupStandard arranges the standard starting position
func (b *Board) SetupStandard() {
	_ = b.SetupLayout(LayoutStandard)
}

// SetupLayout clears the board and arranges a named starting layout
func (b *Board) SetupLayout(name string) error {
	layout, ok := layouts[name]
	if !ok {
		return ErrUnknownLayout
	}
	b.Clear()
	for _, pos := range layout[0] {
		b.Set(pos, Black)
	}
	for _, pos := range layout[1] {
		b.Set(pos, White)
	}
	return nil
}
