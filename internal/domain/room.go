package domain

// Equipment represents a piece of equipment owned by exactly one room
// (in practice a room has at most one projector).
type Equipment struct {
	ID       int64
	RoomID   int64
	Name     string
	IsBroken bool
}

// Room represents a bookable department room
type Room struct {
	ID        int64
	Name      string
	Capacity  int
	Equipment []Equipment
}

// HasWorkingEquipment returns true if the room owns at least one
// equipment instance that is not broken
func (r *Room) HasWorkingEquipment() bool {
	for _, eq := range r.Equipment {
		if !eq.IsBroken {
			return true
		}
	}
	return false
}

// HasBrokenEquipment returns true if any equipment in the room is broken
func (r *Room) HasBrokenEquipment() bool {
	for _, eq := range r.Equipment {
		if eq.IsBroken {
			return true
		}
	}
	return false
}
