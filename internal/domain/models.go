// Package domain defines the persistence models for the adoption platform:
// pets, the reference entities they point at (species, shelters, gifts,
// partners), and the per-user relationship rows (dislikes, favorites).
// These types are mapped with GORM and form the core data layer of the
// application.
package domain

import (
	"time"

	"gorm.io/gorm"
)

// Species is a reference entity grouping pets (dog, cat, ...). Names are
// unique and stored with the first letter upper-cased.
type Species struct {
	ID        string         `json:"id"    gorm:"type:char(36);primaryKey"`
	Name      string         `json:"name"  gorm:"type:varchar(100);not null;uniqueIndex"`
	Image     string         `json:"image" gorm:"type:varchar(512)"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

// TableName returns the database table name for Species.
func (Species) TableName() string { return "species" }

// Ong is an animal shelter that registers pets for adoption. Coverage holds
// the upper-cased region text (e.g. a list of UFs) matched by the browsing
// coverage filter.
type Ong struct {
	ID        string         `json:"id"       gorm:"type:char(36);primaryKey"`
	Name      string         `json:"name"     gorm:"type:varchar(255);not null"`
	Email     string         `json:"email"    gorm:"type:varchar(255);not null;uniqueIndex"`
	Phone     string         `json:"phone"    gorm:"type:varchar(32)"`
	Cep       string         `json:"cep"      gorm:"type:varchar(16)"`
	Address   string         `json:"address"  gorm:"type:varchar(255)"`
	District  string         `json:"district" gorm:"type:varchar(128)"`
	City      string         `json:"city"     gorm:"type:varchar(128)"`
	UF        string         `json:"uf"       gorm:"type:char(2)"`
	Coverage  string         `json:"coverage" gorm:"type:varchar(255)"`
	Image     string         `json:"image"    gorm:"type:varchar(512)"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

// TableName returns the database table name for Ong.
func (Ong) TableName() string { return "ongs" }

// Gift is a reward an adopter picks for an already-adopted pet.
type Gift struct {
	ID          string         `json:"id"          gorm:"type:char(36);primaryKey"`
	Name        string         `json:"name"        gorm:"type:varchar(100);not null"`
	Description string         `json:"description" gorm:"type:text"`
	Image       string         `json:"image"       gorm:"type:varchar(512)"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

// TableName returns the database table name for Gift.
func (Gift) TableName() string { return "gifts" }

// Partner is a sponsoring company shown on the platform. Plain CRUD entity,
// not referenced by the matching engine.
type Partner struct {
	ID          string         `json:"id"           gorm:"type:char(36);primaryKey"`
	FantasyName string         `json:"fantasy_name" gorm:"type:varchar(255);not null"`
	CompanyName string         `json:"company_name" gorm:"type:varchar(255);not null"`
	Cnpj        string         `json:"cnpj"         gorm:"type:varchar(32);not null;uniqueIndex"`
	Email       string         `json:"email"        gorm:"type:varchar(255);not null;uniqueIndex"`
	Phone1      string         `json:"phone1"       gorm:"type:varchar(32)"`
	Cep         string         `json:"cep"          gorm:"type:varchar(16)"`
	Address     string         `json:"address"      gorm:"type:varchar(255)"`
	District    string         `json:"district"     gorm:"type:varchar(128)"`
	City        string         `json:"city"         gorm:"type:varchar(128)"`
	UF          string         `json:"uf"           gorm:"type:char(2)"`
	Image       string         `json:"image"        gorm:"type:varchar(512)"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

// TableName returns the database table name for Partner.
func (Partner) TableName() string { return "partners" }

// Pet is the central aggregate. Age and Weight are free text with an embedded
// numeric magnitude ("3 anos", "4,5 kg"); the browsing filters prefix-match
// against that text. OwnerID is null until the pet is adopted; a non-null
// owner implies a non-null AdoptedAt and makes adoption fields immutable.
//
// Fields:
//   - SpeciesID / OngID: required references, existence-checked on create.
//   - OwnerID: opaque user identifier of the adopter, null = available.
//   - GiftID: reward chosen by the owner after adoption, nullable.
//   - AdoptedAt: set exactly once, by the adoption transaction.
//   - DeletedAt: soft deletion marker; deactivated pets stay visible to
//     admin reads but never enter the matching pool.
type Pet struct {
	ID          string         `json:"id"          gorm:"type:char(36);primaryKey"`
	Name        string         `json:"name"        gorm:"type:varchar(100);not null"`
	Description string         `json:"description" gorm:"type:text"`
	Age         string         `json:"age"         gorm:"type:varchar(32);not null"`
	Weight      string         `json:"weight"      gorm:"type:varchar(32);not null"`
	Gender      string         `json:"gender"      gorm:"type:varchar(16);not null"`
	Cut         bool           `json:"cut"         gorm:"not null;default:false"`
	Image       string         `json:"image"       gorm:"type:varchar(512)"`
	SpeciesID   string         `json:"species_id"  gorm:"type:char(36);not null;index"`
	OngID       string         `json:"ong_id"      gorm:"type:char(36);not null;index"`
	OwnerID     *string        `json:"owner_id,omitempty" gorm:"type:varchar(64);index"`
	GiftID      *string        `json:"gift_id,omitempty"  gorm:"type:char(36)"`
	AdoptedAt   *time.Time     `json:"adopted_at,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`

	// Associations, resolved on demand with Joins/Preload.
	Species *Species `json:"species,omitempty" gorm:"foreignKey:SpeciesID;references:ID"`
	Ong     *Ong     `json:"ong,omitempty"     gorm:"foreignKey:OngID;references:ID"`
	Gift    *Gift    `json:"gift,omitempty"    gorm:"foreignKey:GiftID;references:ID"`
}

// TableName returns the database table name for Pet.
func (Pet) TableName() string { return "pets" }

// Adopted reports whether the pet has an owner.
func (p *Pet) Adopted() bool { return p.OwnerID != nil }

// Dislike records that a user rejected a pet from their browsing pool.
// Rows are append-only from the engine's perspective: they are only ever
// read back as the user's exclusion set.
type Dislike struct {
	ID        string    `json:"id"      gorm:"type:char(36);primaryKey"`
	UserID    string    `json:"user_id" gorm:"type:varchar(64);not null;index;uniqueIndex:ux_dislike_user_pet,priority:1"`
	PetID     string    `json:"pet_id"  gorm:"type:char(36);not null;index;uniqueIndex:ux_dislike_user_pet,priority:2"`
	CreatedAt time.Time `json:"created_at"`

	Pet Pet `json:"-" gorm:"foreignKey:PetID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for Dislike.
func (Dislike) TableName() string { return "dislikes" }

// Favorite records a user's expressed interest in a pet. Its soft-delete
// flag mirrors the pet's while the pet is unadopted (deactivating a pet
// soft-deletes its favorites, restoring it restores them); adoption
// hard-deletes every favorite of the pet instead.
type Favorite struct {
	ID        string         `json:"id"      gorm:"type:char(36);primaryKey"`
	UserID    string         `json:"user_id" gorm:"type:varchar(64);not null;index;uniqueIndex:ux_favorite_user_pet,priority:1"`
	PetID     string         `json:"pet_id"  gorm:"type:char(36);not null;index;uniqueIndex:ux_favorite_user_pet,priority:2"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	Pet Pet `json:"pet" gorm:"foreignKey:PetID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for Favorite.
func (Favorite) TableName() string { return "favorites" }
