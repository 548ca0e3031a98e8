package models

import (
    "time"
)

// One meal entry, owned by exactly one anonymous session.
// Only the session id gates access; CreationUserID is recorded
// verbatim and never consulted for authorization.
type Meal struct {
    ID             string    `gorm:"type:uuid;primaryKey" json:"id"`
    Name           string    `gorm:"not null" json:"name"`
    Description    string    `gorm:"not null" json:"description"`
    IsOnTheDiet    bool      `gorm:"not null" json:"isOnTheDiet"`
    CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
    CreationUserID string    `gorm:"type:uuid;not null" json:"creationUserId"`
    SessionID      string    `gorm:"type:uuid;index" json:"session_id"`
}

func (Meal) TableName() string {
    return "meals"
}
