package langton

import "fmt"

// Preset is the declarative form of a rule: a turn string and the two
// gradient endpoints as packed 0xRRGGBB colors.
type Preset struct {
	Name  string
	Turns string
	Start uint32
	End   uint32
}

// Build constructs the Rule described by the preset.
func (p Preset) Build() (*Rule, error) {
	return NewNamedRule(p.Name, p.Turns, p.Start, p.End)
}

// DefaultPresets returns the built-in rule catalog.
func DefaultPresets() []Preset {
	return []Preset{
		{Name: "Classic", Turns: "RL", Start: 0x000000, End: 0xAAAAAA},
		{Name: "Lettuce", Turns: "LRL", Start: 0x005524, End: 0x2BB25A},
		{Name: "Amethyst Cube", Turns: "RLLLLLRRL", Start: 0x260511, End: 0x95097E},
		{Name: "Saphyre Triangle", Turns: "RRLLLRLLLRRR", Start: 0x000021, End: 0x06D7B4},
		{Name: "Brain", Turns: "RRLL", Start: 0x120021, End: 0xFF00AA},
		{Name: "Yellow Highway", Turns: "LLRRRLRLRLLR", Start: 0x333300, End: 0xFFFF00},
		{Name: "Cubic Crystal", Turns: "RLLR", Start: 0x00AAAA, End: 0xFF5500},
		{Name: "Mini Brain", Turns: "RRLLRR", Start: 0xDAF7A6, End: 0x581845},
		{Name: "Pollen", Turns: "LRRLRL", Start: 0xFFC300, End: 0xFF5733},
		{Name: "Ocean", Turns: "RRRLLLL", Start: 0x11998E, End: 0x3B5998},
		{Name: "Cubic Crystal II", Turns: "RLLLRRR", Start: 0x00FFFF, End: 0xFF00FF},
	}
}

// BuildRules constructs every preset, failing on the first malformed one.
func BuildRules(presets []Preset) ([]*Rule, error) {
	if len(presets) == 0 {
		return nil, ErrEmptyCatalog
	}
	rules := make([]*Rule, 0, len(presets))
	for i, p := range presets {
		r, err := p.Build()
		if err != nil {
			return nil, fmt.Errorf("preset %d: %w", i, err)
		}
		rules = append(rules, r)
	}
	return rules, nil
}
