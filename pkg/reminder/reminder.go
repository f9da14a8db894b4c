package reminder

import "time"

type Reminder struct {
	Id        string
	UserId    int
	Title     string
	Date      time.Time
	Completed bool
}
