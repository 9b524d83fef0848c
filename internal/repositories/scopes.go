package repositories

import "gorm.io/gorm"

// visible returns a scope that filters out soft-deleted rows. The table name
// is passed explicitly so the predicate stays unambiguous in joined queries.
func visible(table string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(table+".is_deleted = ?", false)
	}
}

// paginate applies offset-based pagination.
func paginate(limit, offset int) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Limit(limit).Offset(offset)
	}
}
