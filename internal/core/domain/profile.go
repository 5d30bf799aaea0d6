package domain

import "time"

type Profile struct {
	ID        uint64
	FullName  string
	Email     string
	Role      string
	CreatedAt time.Time
}
