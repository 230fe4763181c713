package requests

type FindAttendance struct {
	Date   string `validate:"omitempty"`
	UserID string `validate:"omitempty,object_id"`
}
