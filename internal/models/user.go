package models

// User represents the user model in the database
type User struct {
	Base
	Username     string        `gorm:"uniqueIndex;size:80;not null" json:"username"`
	Email        string        `gorm:"uniqueIndex;size:120;not null" json:"email"`
	PasswordHash string        `gorm:"not null" json:"-"`
	Transactions []Transaction `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Budgets      []Budget      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	SavingsGoals []SavingsGoal `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	ChatHistory  []ChatHistory `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Sessions     []Session     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
