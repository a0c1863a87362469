package core

// Intent is a discrete movement intent delivered to the simulation as an
// instantaneous edge event (press or release), not a polled level.
// The platform layer is responsible for turning raw terminal input into
// clean press/release pairs.
type Intent int

const (
	IntentNone Intent = iota
	PressLeft
	ReleaseLeft
	PressRight
	ReleaseRight
	PressJump
	ReleaseJump
)

// String returns a human-readable name for the intent.
func (in Intent) String() string {
	switch in {
	case IntentNone:
		return "None"
	case PressLeft:
		return "PressLeft"
	case ReleaseLeft:
		return "ReleaseLeft"
	case PressRight:
		return "PressRight"
	case ReleaseRight:
		return "ReleaseRight"
	case PressJump:
		return "PressJump"
	case ReleaseJump:
		return "ReleaseJump"
	default:
		return "Unknown"
	}
}

// IsPress returns true for the press half of a press/release pair.
func (in Intent) IsPress() bool {
	switch in {
	case PressLeft, PressRight, PressJump:
		return true
	}
	return false
}

// Release returns the release intent paired with a press intent, or
// IntentNone if the intent is not a press.
func (in Intent) Release() Intent {
	switch in {
	case PressLeft:
		return ReleaseLeft
	case PressRight:
		return ReleaseRight
	case PressJump:
		return ReleaseJump
	}
	return IntentNone
}
