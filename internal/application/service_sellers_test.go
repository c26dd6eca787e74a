package application

import (
	"context"
	"errors"
	"testing"

	"github.com/horu2day/saleslicense/internal/domain"
)

func profileInput(company, bio, website string) SellerProfileInput {
	return SellerProfileInput{CompanyName: &company, Bio: &bio, Website: &website}
}

func TestSellerProfileLifecycle(t *testing.T) {
	svc, _, _ := newTestService(t)

	if _, err := svc.MyProfile(context.Background(), seller); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("profile before creation: got %v, want ErrNotFound", err)
	}

	created, err := svc.CreateProfile(context.Background(), seller, profileInput("  Acme Tools  ", "developer tooling", "https://acme.example"))
	if err != nil {
		t.Fatalf("CreateProfile: %v", err)
	}
	if created.CompanyName != "Acme Tools" {
		t.Fatalf("company name not trimmed: %q", created.CompanyName)
	}
	if !created.TotalEarnings.IsZero() || created.TotalSales != 0 {
		t.Fatalf("new profile should start with zero counters, got %s / %d", created.TotalEarnings, created.TotalSales)
	}

	updated, err := svc.UpdateProfile(context.Background(), seller, profileInput("Acme Tools Inc", "developer tooling, licensed", "https://acme.example"))
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if updated.CompanyName != "Acme Tools Inc" {
		t.Fatalf("update not applied: %q", updated.CompanyName)
	}

	got, err := svc.MyProfile(context.Background(), seller)
	if err != nil {
		t.Fatalf("MyProfile: %v", err)
	}
	if got.CompanyName != "Acme Tools Inc" {
		t.Fatalf("read back %q, want updated name", got.CompanyName)
	}
}

func TestUpdateProfilePreservesOmittedFields(t *testing.T) {
	svc, _, _ := newTestService(t)

	if _, err := svc.CreateProfile(context.Background(), seller, profileInput("Acme Tools", "developer tooling", "https://acme.example")); err != nil {
		t.Fatalf("CreateProfile: %v", err)
	}

	newBio := "tooling, now with licenses"
	updated, err := svc.UpdateProfile(context.Background(), seller, SellerProfileInput{Bio: &newBio})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if updated.Bio != newBio {
		t.Fatalf("bio not applied: %q", updated.Bio)
	}
	if updated.CompanyName != "Acme Tools" || updated.Website != "https://acme.example" {
		t.Fatalf("omitted fields were wiped: company=%q website=%q", updated.CompanyName, updated.Website)
	}

	got, err := svc.MyProfile(context.Background(), seller)
	if err != nil {
		t.Fatalf("MyProfile: %v", err)
	}
	if got.CompanyName != "Acme Tools" || got.Bio != newBio {
		t.Fatalf("stored profile wrong: company=%q bio=%q", got.CompanyName, got.Bio)
	}
}

func TestCreateProfileTwiceConflicts(t *testing.T) {
	svc, _, _ := newTestService(t)

	if _, err := svc.CreateProfile(context.Background(), seller, profileInput("Acme", "", "")); err != nil {
		t.Fatalf("first CreateProfile: %v", err)
	}
	if _, err := svc.CreateProfile(context.Background(), seller, profileInput("Acme Again", "", "")); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("second CreateProfile: got %v, want ErrConflict", err)
	}
}

func TestSellerProfileRequiresAuth(t *testing.T) {
	svc, _, _ := newTestService(t)
	anonymous := Actor{}

	if _, err := svc.MyProfile(context.Background(), anonymous); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("MyProfile anonymous: got %v, want ErrUnauthorized", err)
	}
	if _, err := svc.CreateProfile(context.Background(), anonymous, profileInput("Ghost", "", "")); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("CreateProfile anonymous: got %v, want ErrUnauthorized", err)
	}
	if _, err := svc.UpdateProfile(context.Background(), anonymous, profileInput("Ghost", "", "")); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("UpdateProfile anonymous: got %v, want ErrUnauthorized", err)
	}
}

func TestUpdateProfileWithoutOneFails(t *testing.T) {
	svc, _, _ := newTestService(t)

	if _, err := svc.UpdateProfile(context.Background(), buyer, profileInput("Nope", "", "")); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("UpdateProfile without profile: got %v, want ErrNotFound", err)
	}
}
