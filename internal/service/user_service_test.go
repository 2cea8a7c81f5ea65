package service

import (
	"errors"
	"testing"

	"github.com/jaehopark/vocaweek/internal/dto"
	"github.com/jaehopark/vocaweek/internal/repository"
)

func TestUserLifecycle(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(repository.NewUserRepository(db))

	created, err := svc.CreateUser(dto.UserCreateRequest{Username: "jaeho"})
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("Created user has no identifier")
	}

	fetched, err := svc.GetUser(created.ID)
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	if fetched.Username != "jaeho" {
		t.Errorf("Username = %q, want %q", fetched.Username, "jaeho")
	}

	if _, err := svc.CreateUser(dto.UserCreateRequest{Username: "sumin"}); err != nil {
		t.Fatalf("Second CreateUser failed: %v", err)
	}
	all, err := svc.GetAllUsers()
	if err != nil {
		t.Fatalf("GetAllUsers failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("GetAllUsers returned %d users, want 2", len(all))
	}

	if _, err := svc.GetUser(999); !errors.Is(err, ErrNotFound) {
		t.Errorf("Unknown user error = %v, want ErrNotFound", err)
	}
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(repository.NewUserRepository(db))

	if _, err := svc.CreateUser(dto.UserCreateRequest{Username: "jaeho"}); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if _, err := svc.CreateUser(dto.UserCreateRequest{Username: "jaeho"}); err == nil {
		t.Error("Duplicate username accepted")
	}
}
