package entities

import (
	"gearguard/pkg/types"
)

type User struct {
	ID       uint64 `json:"id" db:"id"`
	Username string `json:"username" db:"username"`

	Password string `json:"-" db:"password"`

	Role string `json:"role" db:"role"`

	types.BaseEntity
}
