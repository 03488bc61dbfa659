package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DateLayout is the calendar-date format used in API responses,
// e.g. "Mon Jan 01 2024". Kept stable for client compatibility.
const DateLayout = "Mon Jan 02 2006"

// Exercise is a single logged activity belonging to a user.
// Exercises are immutable once created.
type Exercise struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserID      primitive.ObjectID `bson:"userId" json:"userId"` // Owning user, checked at creation
	Description string             `bson:"description" json:"description"`
	Duration    int                `bson:"duration" json:"duration"` // Minutes, always > 0
	Date        time.Time          `bson:"date" json:"date"`
}

// DateString renders the exercise date in the response format.
func (e *Exercise) DateString() string {
	return e.Date.Format(DateLayout)
}
