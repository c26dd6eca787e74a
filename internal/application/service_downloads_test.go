package application

import (
	"context"
	"errors"
	"testing"

	"github.com/horu2day/saleslicense/internal/domain"
)

func purchaseProduct(t *testing.T, svc *Service, productID int64) {
	t.Helper()
	session, err := svc.CreateOrder(context.Background(), buyer, CreateOrderInput{ProductID: productID})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	if _, err := svc.ConfirmPayment(context.Background(), buyer, ConfirmPaymentInput{
		PaymentKey: "pay-dl", OrderRef: session.OrderRef, Amount: session.Amount,
	}); err != nil {
		t.Fatalf("confirm: %v", err)
	}
}

func TestRecordDownloadRequiresLicense(t *testing.T) {
	svc, _, _ := newTestService(t)
	product := listProduct(t, svc, "15.00")

	if _, err := svc.RecordDownload(context.Background(), buyer, RecordDownloadInput{ProductID: product.ID}); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized without a license, got %v", err)
	}

	purchaseProduct(t, svc, product.ID)
	download, err := svc.RecordDownload(context.Background(), Actor{UserID: buyer.UserID, ClientIP: "203.0.113.9", UserAgent: "curl/8"}, RecordDownloadInput{ProductID: product.ID})
	if err != nil {
		t.Fatalf("record download: %v", err)
	}
	if download.LicenseKeyID == nil {
		t.Fatalf("download must reference the backing license")
	}
	if download.IPAddress != "203.0.113.9" || download.UserAgent != "curl/8" {
		t.Fatalf("client metadata not recorded: %+v", download)
	}
}

func TestRecordDownloadRejectsForeignKey(t *testing.T) {
	svc, _, _ := newTestService(t)
	product := listProduct(t, svc, "15.00")
	purchaseProduct(t, svc, product.ID)

	licenses, _ := svc.MyLicenses(context.Background(), buyer)
	other := Actor{UserID: 55}
	if _, err := svc.RecordDownload(context.Background(), other, RecordDownloadInput{
		ProductID: product.ID, LicenseKeyID: &licenses[0].ID,
	}); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for foreign key, got %v", err)
	}
}

func TestProductDownloadsOwnerOnly(t *testing.T) {
	svc, _, _ := newTestService(t)
	product := listProduct(t, svc, "15.00")
	purchaseProduct(t, svc, product.ID)
	if _, err := svc.RecordDownload(context.Background(), buyer, RecordDownloadInput{ProductID: product.ID}); err != nil {
		t.Fatalf("record download: %v", err)
	}

	downloads, err := svc.ProductDownloads(context.Background(), seller, product.ID)
	if err != nil {
		t.Fatalf("product downloads: %v", err)
	}
	if len(downloads) != 1 {
		t.Fatalf("expected 1 download, got %d", len(downloads))
	}
	if _, err := svc.ProductDownloads(context.Background(), buyer, product.ID); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for non-owner, got %v", err)
	}
}
