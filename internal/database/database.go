package database

import (
	"log"
	"strings"

	"roombook/internal/domain"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	log.Println("Using SQLite for local development:", dsn)

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Organization{},
		&domain.Membership{},
		&domain.Room{},
		&domain.Booking{},
		&domain.RoomBlock{},
		&domain.Notification{},
	); err != nil {
		return err
	}
	return ensureOverlapConstraint(db)
}

// ensureOverlapConstraint installs the database-level guarantee that no two
// occupying bookings overlap for a room+date. Defence in depth under the
// transactional re-check; postgres only.
func ensureOverlapConstraint(db *gorm.DB) error {
	if db.Dialector.Name() != "postgres" {
		return nil
	}

	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS btree_gist").Error; err != nil {
		return err
	}

	return db.Exec(`
DO $$
BEGIN
    IF NOT EXISTS (
        SELECT 1 FROM pg_constraint WHERE conname = 'bookings_no_overlap'
    ) THEN
        ALTER TABLE bookings ADD CONSTRAINT bookings_no_overlap
            EXCLUDE USING gist (
                room_id WITH =,
                date WITH =,
                int4range(start_minute, end_minute) WITH &&
            )
            WHERE (status IN ('pending', 'confirmed'));
    END IF;
END
$$`).Error
}
