package models

import (
    "time"
)

// Registered account. Password is stored verbatim and no uniqueness is
// enforced on email or handle; registration is the only operation.
type User struct {
    ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
    Handle    string    `gorm:"column:user;not null" json:"user"`
    Name      string    `gorm:"not null" json:"name"`
    Email     string    `gorm:"not null" json:"email"`
    Password  string    `gorm:"not null" json:"-"`
    CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (User) TableName() string {
    return "users"
}
