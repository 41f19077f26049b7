package model

// Room is one row of the Rooms table.
type Room struct {
	ID       string `csv:"RoomID"`
	Type     string `csv:"Type"`
	Capacity int    `csv:"Capacity"`
}
