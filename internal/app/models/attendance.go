package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Attendance is one time-in/time-out pair. Day is the business day of the
// time-in, formatted YYYY-MM-DD.
type Attendance struct {
	ID      primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID  primitive.ObjectID `json:"userId" bson:"userId"`
	Day     string             `json:"day" bson:"day"`
	TimeIn  time.Time          `json:"timeIn" bson:"timeIn"`
	TimeOut *time.Time         `json:"timeOut" bson:"timeOut"`
}

type AttendanceDetail struct {
	Attendance `bson:",inline"`
	User       *UserProfile `json:"user,omitempty" bson:"user,omitempty"`
}

type AttendanceFilter struct {
	UserID   *primitive.ObjectID
	DayStart *time.Time
	DayEnd   *time.Time
	OpenOnly bool
}

func (a *Attendance) IsOpen() bool {
	return a.TimeOut == nil
}
