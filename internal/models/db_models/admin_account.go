package db_models

type AdminAccount struct {
	BaseModel
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string
	Role         string
}
