package repository

import (
	"testing"
	"time"

	"github.com/fresh-groceries/internal/constants"
	"github.com/fresh-groceries/internal/models"
)

func TestCourierLocationUpsertOverwrites(t *testing.T) {
	db := setupRepositoryTestDB(t)
	repo := NewCourierLocationRepository(db)
	courier := createTestUser(t, db, "ivan@example.com", constants.RoleCourier)

	if err := repo.Upsert(&models.CourierLocation{CourierID: courier.ID, Lat: 59.93, Lng: 30.31, UpdatedAt: time.Now()}); err != nil {
		t.Fatalf("insert location failed: %v", err)
	}
	if err := repo.Upsert(&models.CourierLocation{CourierID: courier.ID, Lat: 55.75, Lng: 37.61, UpdatedAt: time.Now()}); err != nil {
		t.Fatalf("overwrite location failed: %v", err)
	}

	var count int64
	if err := db.Model(&models.CourierLocation{}).Count(&count).Error; err != nil {
		t.Fatalf("count locations failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected single location row, got %d", count)
	}
	location, err := repo.GetByCourier(courier.ID)
	if err != nil || location == nil {
		t.Fatalf("get location failed: %v", err)
	}
	if location.Lat != 55.75 || location.Lng != 37.61 {
		t.Fatalf("expected latest coordinates, got %+v", location)
	}
}
