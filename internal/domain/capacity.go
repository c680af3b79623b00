package domain

// CapacityUsage is the spots reserved against an event's capacity.
type CapacityUsage struct {
	EventID  string
	Capacity int
	Reserved int
}

func (u CapacityUsage) Remaining() int {
	return u.Capacity - u.Reserved
}

// Fits reports whether spots more can be reserved without exceeding capacity.
func (u CapacityUsage) Fits(spots int) bool {
	return spots <= u.Remaining()
}

func (u CapacityUsage) Overbooked() bool {
	return u.Reserved > u.Capacity
}
