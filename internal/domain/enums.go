package domain

// Tier is the adherence classification for a day's (or an averaged)
// calorie or protein figure against the user's goals.
type Tier string

const (
	TierOnTrack   Tier = "ON_TRACK"
	TierClose     Tier = "CLOSE"
	TierNeedsWork Tier = "NEEDS_WORK"
	TierOffTrack  Tier = "OFF_TRACK"
	TierNoData    Tier = "NO_DATA"
)

func (t Tier) String() string { return string(t) }

func (t Tier) IsValid() bool {
	switch t {
	case TierOnTrack, TierClose, TierNeedsWork, TierOffTrack, TierNoData:
		return true
	}
	return false
}

// GoalMode describes the relation of target to maintenance calories.
type GoalMode string

const (
	GoalModeCut      GoalMode = "CUT"      // target below maintenance
	GoalModeBulk     GoalMode = "BULK"     // target above maintenance
	GoalModeMaintain GoalMode = "MAINTAIN" // target equals maintenance
)

func (m GoalMode) String() string { return string(m) }

// UserRole represents the access level of a user.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleAdmin:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}
