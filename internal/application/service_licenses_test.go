package application

import (
	"context"
	"errors"
	"testing"

	"github.com/horu2day/saleslicense/internal/domain"
)

func TestIssueBatchCreatesInactiveKeys(t *testing.T) {
	svc, _, _ := newTestService(t)
	product := listProduct(t, svc, "10.00")

	keys, err := svc.IssueBatch(context.Background(), seller, IssueBatchInput{ProductID: product.ID, Count: 5})
	if err != nil {
		t.Fatalf("issue batch: %v", err)
	}
	if len(keys) != 5 {
		t.Fatalf("expected 5 keys, got %d", len(keys))
	}
	for _, key := range keys {
		if key.Status != domain.LicenseInactive {
			t.Fatalf("batch keys must start inactive, got %s", key.Status)
		}
		if key.BuyerID != nil || key.OrderID != nil {
			t.Fatalf("batch keys carry no buyer or order: %+v", key)
		}
	}
}

func TestIssueBatchGuards(t *testing.T) {
	svc, _, _ := newTestService(t)
	product := listProduct(t, svc, "10.00")

	if _, err := svc.IssueBatch(context.Background(), seller, IssueBatchInput{ProductID: product.ID, Count: 0}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for zero count, got %v", err)
	}
	if _, err := svc.IssueBatch(context.Background(), seller, IssueBatchInput{ProductID: product.ID, Count: 1001}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput above batch cap, got %v", err)
	}
	if _, err := svc.IssueBatch(context.Background(), buyer, IssueBatchInput{ProductID: product.ID, Count: 1}); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for non-owner, got %v", err)
	}
}

func TestValidateKeyMessages(t *testing.T) {
	svc, _, _ := newTestService(t)
	product := listProduct(t, svc, "10.00")

	result, err := svc.ValidateKey(context.Background(), "1-NOSUCHKEY")
	if err != nil {
		t.Fatalf("validate missing key: %v", err)
	}
	if result.Valid || result.Message != "License key not found" {
		t.Fatalf("unexpected miss result: %+v", result)
	}

	keys, _ := svc.IssueBatch(context.Background(), seller, IssueBatchInput{ProductID: product.ID, Count: 1})
	result, err = svc.ValidateKey(context.Background(), keys[0].Key)
	if err != nil {
		t.Fatalf("validate inactive key: %v", err)
	}
	if result.Valid || result.Message != "License is inactive" {
		t.Fatalf("unexpected inactive result: %+v", result)
	}

	activated, err := svc.SetLicenseStatus(context.Background(), seller, SetLicenseStatusInput{LicenseID: keys[0].ID, Status: domain.LicenseActive})
	if err != nil {
		t.Fatalf("activate key: %v", err)
	}
	result, err = svc.ValidateKey(context.Background(), activated.Key)
	if err != nil {
		t.Fatalf("validate active key: %v", err)
	}
	if !result.Valid || result.License == nil || result.License.ID != activated.ID {
		t.Fatalf("unexpected active result: %+v", result)
	}

	if _, err := svc.ValidateKey(context.Background(), "   "); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank key, got %v", err)
	}
}

func TestSetLicenseStatusGuards(t *testing.T) {
	svc, _, _ := newTestService(t)
	product := listProduct(t, svc, "10.00")
	keys, _ := svc.IssueBatch(context.Background(), seller, IssueBatchInput{ProductID: product.ID, Count: 1})

	if _, err := svc.SetLicenseStatus(context.Background(), seller, SetLicenseStatusInput{LicenseID: keys[0].ID, Status: domain.LicenseExpired}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expired is not settable by hand, got %v", err)
	}
	if _, err := svc.SetLicenseStatus(context.Background(), buyer, SetLicenseStatusInput{LicenseID: keys[0].ID, Status: domain.LicenseRevoked}); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for non-owner, got %v", err)
	}
}

func TestProductLicensesOwnerOnly(t *testing.T) {
	svc, _, _ := newTestService(t)
	product := listProduct(t, svc, "10.00")
	if _, err := svc.IssueBatch(context.Background(), seller, IssueBatchInput{ProductID: product.ID, Count: 3}); err != nil {
		t.Fatalf("issue batch: %v", err)
	}

	keys, err := svc.ProductLicenses(context.Background(), seller, product.ID)
	if err != nil {
		t.Fatalf("product licenses: %v", err)
	}
	if len(keys) != 3 {
		t.Fatalf("expected 3 keys, got %d", len(keys))
	}
	if _, err := svc.ProductLicenses(context.Background(), buyer, product.ID); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for non-owner, got %v", err)
	}
}
