package main

import (
	"log"
	"os"

	"roombook/internal/database"
	"roombook/internal/domain"
	"roombook/internal/pkg/validator"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "roombook.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("Migrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM notifications")
	db.Exec("DELETE FROM room_blocks")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM rooms")
	db.Exec("DELETE FROM memberships")
	db.Exec("DELETE FROM organizations")
	db.Exec("DELETE FROM users")

	log.Println("Creating users...")
	admin := mustUser("admin@roombook.io", "admin123", "Platform Admin", domain.RoleAdmin)
	owner := mustUser("owner@northside.io", "owner123", "Nora Owner", domain.RolePartner)
	manager := mustUser("manager@northside.io", "manager123", "Mark Manager", domain.RolePartner)
	teacher := mustUser("teacher@roombook.io", "teacher123", "Tina Teacher", domain.RoleTeacher)

	for _, u := range []*domain.User{admin, owner, manager, teacher} {
		if errs := validator.Validate(u); errs != nil {
			log.Fatalf("invalid seed user %s: %v", u.Email, errs)
		}
		if err := db.Create(u).Error; err != nil {
			log.Fatal("user insert failed:", err)
		}
	}

	log.Println("Creating organization and rooms...")
	org := &domain.Organization{Name: "Northside Training Center", About: "Classrooms for rent by the hour", IsActive: true}
	if err := db.Create(org).Error; err != nil {
		log.Fatal("organization insert failed:", err)
	}

	memberships := []domain.Membership{
		{UserID: owner.ID, OrganizationID: org.ID, Role: domain.OrgOwner},
		{UserID: manager.ID, OrganizationID: org.ID, Role: domain.OrgManager},
	}
	if err := db.Create(&memberships).Error; err != nil {
		log.Fatal("membership insert failed:", err)
	}

	rooms := []domain.Room{
		{OrganizationID: org.ID, Name: "Classroom A", Capacity: 12, HourlyRateCents: 10000, IsActive: true},
		{OrganizationID: org.ID, Name: "Classroom B", Capacity: 20, HourlyRateCents: 15000, IsActive: true},
		{OrganizationID: org.ID, Name: "Workshop", Capacity: 8, HourlyRateCents: 8000, IsActive: true},
	}
	for i := range rooms {
		if errs := validator.Validate(&rooms[i]); errs != nil {
			log.Fatalf("invalid seed room %s: %v", rooms[i].Name, errs)
		}
	}
	if err := db.Create(&rooms).Error; err != nil {
		log.Fatal("room insert failed:", err)
	}

	log.Println("Seed complete.")
}

func mustUser(email, password, name string, role domain.UserRole) *domain.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(err)
	}
	return &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         role,
	}
}
