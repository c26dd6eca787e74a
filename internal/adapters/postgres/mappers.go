package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/horu2day/saleslicense/internal/domain"
)

func toDomainProduct(rec productModel) domain.Product {
	return domain.Product{
		ID:           rec.ID,
		SellerID:     rec.SellerID,
		Title:        rec.Title,
		Description:  rec.Description,
		Category:     rec.Category,
		Price:        rec.Price,
		Currency:     rec.Currency,
		Version:      rec.Version,
		DownloadURL:  rec.DownloadURL,
		LicenseType:  domain.LicenseType(rec.LicenseType),
		MaxDownloads: rec.MaxDownloads,
		ExpiryDays:   rec.ExpiryDays,
		Active:       rec.Active,
		CreatedAt:    rec.CreatedAt,
		UpdatedAt:    rec.UpdatedAt,
	}
}

func toProductModel(product domain.Product) productModel {
	return productModel{
		ID:           product.ID,
		SellerID:     product.SellerID,
		Title:        product.Title,
		Description:  product.Description,
		Category:     product.Category,
		Price:        product.Price,
		Currency:     product.Currency,
		Version:      product.Version,
		DownloadURL:  product.DownloadURL,
		LicenseType:  string(product.LicenseType),
		MaxDownloads: product.MaxDownloads,
		ExpiryDays:   product.ExpiryDays,
		Active:       product.Active,
		CreatedAt:    product.CreatedAt,
		UpdatedAt:    product.UpdatedAt,
	}
}

func toDomainOrder(rec orderModel) domain.Order {
	return domain.Order{
		ID:            rec.ID,
		BuyerID:       rec.BuyerID,
		SellerID:      rec.SellerID,
		ProductID:     rec.ProductID,
		Quantity:      rec.Quantity,
		UnitPrice:     rec.UnitPrice,
		TotalPrice:    rec.TotalPrice,
		Currency:      rec.Currency,
		Status:        domain.OrderStatus(rec.Status),
		PaymentMethod: rec.PaymentMethod,
		TransactionID: rec.TransactionID,
		Notes:         rec.Notes,
		CreatedAt:     rec.CreatedAt,
		UpdatedAt:     rec.UpdatedAt,
	}
}

func toOrderModel(order domain.Order) orderModel {
	return orderModel{
		ID:            order.ID,
		BuyerID:       order.BuyerID,
		SellerID:      order.SellerID,
		ProductID:     order.ProductID,
		Quantity:      order.Quantity,
		UnitPrice:     order.UnitPrice,
		TotalPrice:    order.TotalPrice,
		Currency:      order.Currency,
		Status:        string(order.Status),
		PaymentMethod: order.PaymentMethod,
		TransactionID: order.TransactionID,
		Notes:         order.Notes,
		CreatedAt:     order.CreatedAt,
		UpdatedAt:     order.UpdatedAt,
	}
}

func toDomainLicense(rec licenseKeyModel) domain.LicenseKey {
	return domain.LicenseKey{
		ID:              rec.ID,
		ProductID:       rec.ProductID,
		Key:             rec.Key,
		BuyerID:         rec.BuyerID,
		OrderID:         rec.OrderID,
		Status:          domain.LicenseStatus(rec.Status),
		ActivatedAt:     rec.ActivatedAt,
		ExpiresAt:       rec.ExpiresAt,
		ActivationCount: rec.ActivationCount,
		MaxActivations:  rec.MaxActivations,
		CreatedAt:       rec.CreatedAt,
		UpdatedAt:       rec.UpdatedAt,
	}
}

func toLicenseModel(key domain.LicenseKey) licenseKeyModel {
	return licenseKeyModel{
		ID:              key.ID,
		ProductID:       key.ProductID,
		Key:             key.Key,
		BuyerID:         key.BuyerID,
		OrderID:         key.OrderID,
		Status:          string(key.Status),
		ActivatedAt:     key.ActivatedAt,
		ExpiresAt:       key.ExpiresAt,
		ActivationCount: key.ActivationCount,
		MaxActivations:  key.MaxActivations,
		CreatedAt:       key.CreatedAt,
		UpdatedAt:       key.UpdatedAt,
	}
}

func toDomainReview(rec reviewModel) domain.Review {
	return domain.Review{
		ID:                 rec.ID,
		ProductID:          rec.ProductID,
		BuyerID:            rec.BuyerID,
		Rating:             rec.Rating,
		Title:              rec.Title,
		Content:            rec.Content,
		Helpful:            rec.Helpful,
		IsVerifiedPurchase: rec.IsVerifiedPurchase,
		CreatedAt:          rec.CreatedAt,
		UpdatedAt:          rec.UpdatedAt,
	}
}

func toReviewModel(review domain.Review) reviewModel {
	return reviewModel{
		ID:                 review.ID,
		ProductID:          review.ProductID,
		BuyerID:            review.BuyerID,
		Rating:             review.Rating,
		Title:              review.Title,
		Content:            review.Content,
		Helpful:            review.Helpful,
		IsVerifiedPurchase: review.IsVerifiedPurchase,
		CreatedAt:          review.CreatedAt,
		UpdatedAt:          review.UpdatedAt,
	}
}

func toDomainDownload(rec downloadModel) domain.Download {
	return domain.Download{
		ID:           rec.ID,
		UserID:       rec.UserID,
		ProductID:    rec.ProductID,
		LicenseKeyID: rec.LicenseKeyID,
		IPAddress:    rec.IPAddress,
		UserAgent:    rec.UserAgent,
		DownloadedAt: rec.DownloadedAt,
	}
}

func toDomainSellerProfile(rec sellerProfileModel) domain.SellerProfile {
	return domain.SellerProfile{
		ID:            rec.ID,
		UserID:        rec.UserID,
		CompanyName:   rec.CompanyName,
		Bio:           rec.Bio,
		Website:       rec.Website,
		TotalEarnings: rec.TotalEarnings,
		TotalSales:    rec.TotalSales,
		IsVerified:    rec.IsVerified,
		CreatedAt:     rec.CreatedAt,
		UpdatedAt:     rec.UpdatedAt,
	}
}

func toSellerProfileModel(profile domain.SellerProfile) sellerProfileModel {
	return sellerProfileModel{
		ID:            profile.ID,
		UserID:        profile.UserID,
		CompanyName:   profile.CompanyName,
		Bio:           profile.Bio,
		Website:       profile.Website,
		TotalEarnings: profile.TotalEarnings,
		TotalSales:    profile.TotalSales,
		IsVerified:    profile.IsVerified,
		CreatedAt:     profile.CreatedAt,
		UpdatedAt:     profile.UpdatedAt,
	}
}

func isUniqueViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
