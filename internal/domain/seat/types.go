package seat

// State is the tagged seat state. A LEASED seat still counts as available
// once its lease has outlived the configured TTL; only the state field plus
// the lease timestamp decide availability, never an overloaded boolean.
type State string

const (
	StateFree   State = "FREE"
	StateLeased State = "LEASED"
	StateBooked State = "BOOKED"
)

func (s State) String() string {
	return string(s)
}

func (s State) IsValid() bool {
	switch s {
	case StateFree, StateLeased, StateBooked:
		return true
	default:
		return false
	}
}

type Type string

const (
	TypeNormal  Type = "NORMAL"
	TypePremium Type = "PREMIUM"
)

func (t Type) IsValid() bool {
	switch t {
	case TypeNormal, TypePremium:
		return true
	default:
		return false
	}
}
