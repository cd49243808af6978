package navigation

// Direction is a single step through the choice list
type Direction int

const (
	DirectionUp   Direction = -1
	DirectionDown Direction = 1
)

// NotFound is returned when no index satisfies a search
const NotFound = -1

// String returns the direction name used in logs
func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	default:
		return "none"
	}
}
