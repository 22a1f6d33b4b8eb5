package domain

// Activity identifies one of the two timed action lines.
type Activity string

const (
	ActivityFishing     Activity = "fishing"
	ActivityWoodcutting Activity = "woodcutting"
)

// Activities lists every activity in a stable order.
var Activities = []Activity{ActivityFishing, ActivityWoodcutting}

// ParseActivity maps a user-supplied string to an Activity.
func ParseActivity(s string) (Activity, bool) {
	switch Activity(s) {
	case ActivityFishing, ActivityWoodcutting:
		return Activity(s), true
	default:
		return "", false
	}
}
