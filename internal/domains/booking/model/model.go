package model

import (
	"database/sql"
	"time"

	"hotelier/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID         = "id"
	FieldGuestID    = "guest_id"
	FieldRoomID     = "room_id"
	FieldCheckIn    = "check_in"
	FieldCheckOut   = "check_out"
	FieldTotalPrice = "total_price"
	FieldNotes      = "notes"
	FieldStatus     = "status"

	StatusPending = "pending"
)

// Booking carries the guest and room projections resolved by the join. The
// joined columns are nullable because referenced rows may have been deleted.
type Booking struct {
	ID         string    `db:"id"`
	GuestID    string    `db:"guest_id"`
	RoomID     string    `db:"room_id"`
	CheckIn    time.Time `db:"check_in"`
	CheckOut   time.Time `db:"check_out"`
	TotalPrice float64   `db:"total_price"`
	Notes      string    `db:"notes"`
	Status     string    `db:"status"`

	GuestName  sql.NullString  `column:"name"   db:"guest_name"  table:"guests"`
	GuestEmail sql.NullString  `column:"email"  db:"guest_email" table:"guests"`
	GuestPhone sql.NullString  `column:"phone"  db:"guest_phone" table:"guests"`
	RoomNumber sql.NullString  `column:"number" db:"room_number" table:"rooms"`
	RoomType   sql.NullString  `column:"type"   db:"room_type"   table:"rooms"`
	RoomPrice  sql.NullFloat64 `column:"price"  db:"room_price"  table:"rooms"`

	model.Metadata
}

func (Booking) GetJoinQuery() string {
	return "LEFT JOIN guests ON guests.id = bookings.guest_id LEFT JOIN rooms ON rooms.id = bookings.room_id"
}
