package tenant

import "gorm.io/gorm"

// Scope membatasi query ke record milik principal pembuatnya.
// Ini adalah batas tenancy aplikasi, bukan relasi ke aggregate User.
func Scope(ownerID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("created_by = ?", ownerID)
	}
}
