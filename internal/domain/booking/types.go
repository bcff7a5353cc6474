package booking

type Status string

const (
	StatusBooked    Status = "BOOKED"
	StatusCancelled Status = "CANCELLED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusBooked, StatusCancelled:
		return true
	default:
		return false
	}
}

// Channel is the origin of a booking request.
type Channel string

const (
	ChannelOnline    Channel = "ONLINE"
	ChannelBoxOffice Channel = "BOX_OFFICE"
)

func (c Channel) String() string {
	return string(c)
}

func (c Channel) IsValid() bool {
	switch c {
	case ChannelOnline, ChannelBoxOffice:
		return true
	default:
		return false
	}
}

// Actor identifies who performed a cancellation. Callers thread it
// explicitly; ActorUnknown falls back to inference from the customer
// reference.
type Actor string

const (
	ActorUnknown  Actor = ""
	ActorCustomer Actor = "CUSTOMER"
	ActorStaff    Actor = "STAFF"
	ActorSystem   Actor = "SYSTEM"
)

func (a Actor) String() string {
	return string(a)
}

func (a Actor) IsValid() bool {
	switch a {
	case ActorCustomer, ActorStaff, ActorSystem:
		return true
	default:
		return false
	}
}
