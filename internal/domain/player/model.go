package player

import "fmt"

// Position represents football position categories used in scoring rules.
type Position string

const (
	PositionGoalkeeper Position = "GK"
	PositionDefender   Position = "DEF"
	PositionMidfielder Position = "MID"
	PositionForward    Position = "FWD"
)

var AllPositions = map[Position]struct{}{
	PositionGoalkeeper: {},
	PositionDefender:   {},
	PositionMidfielder: {},
	PositionForward:    {},
}

// FromElementType maps the bootstrap export's numeric position code.
func FromElementType(elementType int) (Position, error) {
	switch elementType {
	case 1:
		return PositionGoalkeeper, nil
	case 2:
		return PositionDefender, nil
	case 3:
		return PositionMidfielder, nil
	case 4:
		return PositionForward, nil
	default:
		return "", fmt.Errorf("unknown element type: %d", elementType)
	}
}

// Player is one entry of the season's player directory. Records are
// immutable after load.
type Player struct {
	ID         int
	Name       string
	Team       string
	Position   Position
	Price      float64
	SelectedBy float64
}

func (p Player) Validate() error {
	if p.ID <= 0 {
		return fmt.Errorf("player id must be greater than zero")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if _, ok := AllPositions[p.Position]; !ok {
		return fmt.Errorf("invalid player position: %s", p.Position)
	}
	if p.Price < 0 {
		return fmt.Errorf("player price cannot be negative")
	}
	if p.SelectedBy < 0 || p.SelectedBy > 100 {
		return fmt.Errorf("player selection percent must be within [0, 100]")
	}

	return nil
}
