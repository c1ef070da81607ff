package eval

import (
	"github.com/metamatong/comp3981-abalone-sumitoq/internal/model"
	"github.com/metamatong/comp3981-abalone-sumitoq/internal/services/rules"
)

// center is the cell all center-control distances are measured from
var center = model.Position{Row: 4, Col: 5}

// Weights are the term coefficients of the evaluation function
type Weights struct {
	Score    float64
	Material float64
	Center   float64
	Mobility float64
}

// PresetBalanced favors score and material heavily with light positional
// influence; PresetMaterial ignores position entirely.
const (
	PresetBalanced = "balanced"
	PresetMaterial = "material"
)

var presets = map[string]Weights{
	PresetBalanced: {Score: 1400, Material: 40, Center: 4, Mobility: 1},
	PresetMaterial: {Score: 1800, Material: 50, Center: 0, Mobility: 0},
}

// PresetWeights resolves a preset name, falling back to balanced for
// unknown names rather than failing
func PresetWeights(name string) Weights {
	if w, ok := presets[name]; ok {
		return w
	}
	return presets[PresetBalanced]
}

// ValidPresets returns the recognized preset names
func ValidPresets() []string {
	return []string{PresetBalanced, PresetMaterial}
}

// Service scores board positions from one player's perspective
type Service struct {
	rules *rules.Service
}

// New creates a new evaluation Service
func New(rulesService *rules.Service) *Service {
	return &Service{rules: rulesService}
}

// Evaluate returns a scalar score for the position from the player's
// perspective; strictly higher is better for that player. All four terms
// are symmetric differentials (player minus opponent).
func (s *Service) Evaluate(b *model.Board, player model.Player, preset string) float64 {
	w := PresetWeights(preset)
	return w.Score*s.ScoreAdvantage(b, player) +
		w.Material*s.MaterialAdvantage(b, player) +
		w.Center*s.CenterControl(b, player) +
		w.Mobility*s.Mobility(b, player)
}

// ScoreAdvantage is the pushed-off counter differential
func (s *Service) ScoreAdvantage(b *model.Board, player model.Player) float64 {
	return float64(b.Score(player) - b.Score(player.Opponent()))
}

// MaterialAdvantage is the live marble count differential
func (s *Service) MaterialAdvantage(b *model.Board, player model.Player) float64 {
	return float64(b.MarbleCount(player) - b.MarbleCount(player.Opponent()))
}

// CenterControl rewards marbles close to the center cell: the opponent's
// summed hex distance from center minus the player's
func (s *Service) CenterControl(b *model.Board, player model.Player) float64 {
	return float64(centerSum(b, player.Opponent()) - centerSum(b, player))
}

func centerSum(b *model.Board, player model.Player) int {
	total := 0
	for _, pos := range b.Marbles(player) {
		total += abs(pos.Row-center.Row) + abs(pos.Col-center.Col)
	}
	return total
}

// Mobility is the legal-move count differential. This generates moves for
// both sides, which dominates evaluation cost at deeper searches.
func (s *Service) Mobility(b *model.Board, player model.Player) float64 {
	own := len(s.rules.LegalMoves(b, player))
	opp := len(s.rules.LegalMoves(b, player.Opponent()))
	return float64(own - opp)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
