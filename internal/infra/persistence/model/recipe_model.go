package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RecipeModel mirrors the 'recipes' table. The category association goes
// through the 'recipe_categories' join table with a composite primary key,
// so duplicate (recipe, category) pairs are impossible.
type RecipeModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title        string    `gorm:"type:varchar(200);not null"`
	Description  string    `gorm:"type:text;not null"`
	Ingredients  string    `gorm:"type:text;not null"`
	Instructions string    `gorm:"type:text;not null"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Owner      *UserModel       `gorm:"foreignKey:UserID"`
	Categories []*CategoryModel `gorm:"many2many:recipe_categories;joinForeignKey:RecipeID;joinReferences:CategoryID"`
}

// TableName explicitly sets the table name for GORM.
func (RecipeModel) TableName() string {
	return "recipes"
}

// BeforeCreate assigns the UUID primary key when the application did not.
func (m *RecipeModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}
