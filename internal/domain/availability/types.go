package availability

// Kind discriminates the resource behind an availability. The string
// values are the ones stored in the availabilities table.
type Kind string

const (
	KindMachines Kind = "machines"
	KindSpace    Kind = "space"
	KindTraining Kind = "training"
	KindEvent    Kind = "event"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindMachines, KindSpace, KindTraining, KindEvent:
		return true
	default:
		return false
	}
}

// BilledByDivision reports whether slots of this kind are billed
// proportionally to their duration. Trainings and events are billed as
// a flat unit covering the whole availability.
func (k Kind) BilledByDivision() bool {
	return k == KindMachines || k == KindSpace
}

// Level selects the granularity of a calendar query.
type Level string

const (
	LevelSlot         Level = "slot"
	LevelAvailability Level = "availability"
)
