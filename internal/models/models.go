package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	FirstName string `gorm:"not null" json:"firstName"`
	LastName  string `gorm:"not null" json:"lastName"`
	Email     string `gorm:"uniqueIndex;not null" json:"email"`
	// bcrypt hash, never serialized
	Password string `gorm:"not null" json:"-"`
	Bio      string `json:"bio"`

	// 'omitempty' prevents infinite loops when fetching a User -> Jobs -> User -> ...
	Jobs    []Job    `json:"jobs,omitempty"`
	Reviews []Review `json:"reviews,omitempty"`
}

type Job struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Foreign Key
	UserID uint `gorm:"index;not null" json:"userId"`

	Jobtitle    string     `gorm:"not null" json:"jobtitle"`
	Company     string     `gorm:"not null" json:"company"`
	Location    string     `json:"location"`
	Jobtype     string     `json:"jobtype"`
	Salary      string     `json:"salary"`
	Description string     `gorm:"type:text" json:"description"`
	Date        *time.Time `gorm:"type:date" json:"date"`
	Review      string     `gorm:"type:text" json:"review"`

	// round name -> completion flag (0 incomplete, 1 done)
	RoundStatus RoundStatus `gorm:"type:jsonb" json:"roundStatus"`
}

// Review is a public company review. The original schema called these "Blogs".
type Review struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	UserID uint `gorm:"index;not null" json:"userId"`

	Company string `gorm:"not null" json:"company"`
	Review  string `gorm:"type:text" json:"review"`
	// nominally 1-5, not enforced server-side
	Rating int        `json:"rating"`
	Salary string     `json:"salary"`
	Rounds StringList `gorm:"type:jsonb" json:"rounds"`
	Role   string     `json:"role"`
}
