package constants

// User status
const (
	UserStatusActive   = 1
	UserStatusInactive = 0
)

// User role
const (
	RoleMember = 0
	RoleAdmin  = 1
	RoleLeader = 2
)

// Member status
const (
	MemberStatusActive   = "ACTIVE"
	MemberStatusInactive = "INACTIVE"
	MemberStatusVisitor  = "VISITOR"
)

// Event type
const (
	EventTypeService       = "SERVICE"
	EventTypePrayerMeeting = "PRAYER_MEETING"
	EventTypeBibleStudy    = "BIBLE_STUDY"
	EventTypeSpecial       = "SPECIAL"
)

// Registration status
const (
	RegistrationStatusRegistered = "REGISTERED"
	RegistrationStatusConfirmed  = "CONFIRMED"
	RegistrationStatusCancelled  = "CANCELLED"
)

// Attendance status
const (
	AttendanceStatusAttended = "ATTENDED"
)

// Ngày trong tuần (0 = Chủ nhật .. 6 = Thứ bảy)
const (
	DayOfWeekSunday   = 0
	DayOfWeekSaturday = 6
)
