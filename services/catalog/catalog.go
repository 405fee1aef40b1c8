// Package catalog serves the browse surfaces: shop products, sitters,
// consultation doctors, daycares and donation campaigns.
package catalog

import (
	"fmt"
	"sort"

	catalogRepo "parenthub/database/repository/catalog"
	"parenthub/models"
	"parenthub/utils"

	"go.uber.org/zap"
)

// Service exposes the read side of every listing plus product management.
type Service struct {
	Products  catalogRepo.ProductRepository
	Sitters   catalogRepo.SitterRepository
	Doctors   catalogRepo.DoctorRepository
	Daycares  catalogRepo.DaycareRepository
	Donations catalogRepo.DonationRepository
}

// ListProducts returns every product, or the ones matching the query when it
// is non-empty. A storage failure degrades to an empty listing with a warning.
func (s *Service) ListProducts(query string) []models.Product {
	var (
		products []models.Product
		err      error
	)
	if query != "" {
		products, err = s.Products.Search(query)
	} else {
		products, err = s.Products.GetAll()
	}
	if err != nil {
		utils.GetLogger().Warn("failed to list products", zap.String("query", query), zap.Error(err))
		return nil
	}
	return products
}

// ProductsByCategory returns products in the category identified by slug.
func (s *Service) ProductsByCategory(slug string) []models.Product {
	products, err := s.Products.GetByCategory(slug)
	if err != nil {
		utils.GetLogger().Warn("failed to list products by category", zap.String("slug", slug), zap.Error(err))
		return nil
	}
	return products
}

// Product returns one product by ID.
func (s *Service) Product(id string) (*models.Product, error) {
	product, err := s.Products.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("product not found: %w", err)
	}
	return product, nil
}

// AddProduct creates a new shop listing.
func (s *Service) AddProduct(product *models.Product) error {
	if product.Name == "" || product.Price <= 0 {
		return fmt.Errorf("product name and a positive price are required")
	}
	if err := s.Products.Create(product); err != nil {
		return fmt.Errorf("failed to add product: %w", err)
	}
	return nil
}

// ListSitters returns every sitter. When caller coordinates are given the
// sitters carry their distance and are ordered nearest first.
func (s *Service) ListSitters(lat, lon float64, hasLocation bool) []models.Sitter {
	sitters, err := s.Sitters.GetAll()
	if err != nil {
		utils.GetLogger().Warn("failed to list sitters", zap.Error(err))
		return nil
	}
	if hasLocation {
		for i := range sitters {
			sitters[i].DistanceKm = utils.DistanceKm(lat, lon, sitters[i].Latitude, sitters[i].Longitude)
		}
		sort.SliceStable(sitters, func(i, j int) bool {
			return sitters[i].DistanceKm < sitters[j].DistanceKm
		})
	}
	return sitters
}

// Sitter returns one sitter by ID.
func (s *Service) Sitter(id string) (*models.Sitter, error) {
	sitter, err := s.Sitters.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("sitter not found: %w", err)
	}
	return sitter, nil
}

// ListDoctors returns every consultation doctor.
func (s *Service) ListDoctors() []models.Doctor {
	doctors, err := s.Doctors.GetAll()
	if err != nil {
		utils.GetLogger().Warn("failed to list doctors", zap.Error(err))
		return nil
	}
	return doctors
}

// Doctor returns one doctor by ID.
func (s *Service) Doctor(id string) (*models.Doctor, error) {
	doctor, err := s.Doctors.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("doctor not found: %w", err)
	}
	return doctor, nil
}

// ListDaycares returns every daycare, distance-ordered when caller
// coordinates are given.
func (s *Service) ListDaycares(lat, lon float64, hasLocation bool) []models.Daycare {
	daycares, err := s.Daycares.GetAll()
	if err != nil {
		utils.GetLogger().Warn("failed to list daycares", zap.Error(err))
		return nil
	}
	if hasLocation {
		for i := range daycares {
			daycares[i].DistanceKm = utils.DistanceKm(lat, lon, daycares[i].Latitude, daycares[i].Longitude)
		}
		sort.SliceStable(daycares, func(i, j int) bool {
			return daycares[i].DistanceKm < daycares[j].DistanceKm
		})
	}
	return daycares
}

// Daycare returns one daycare by ID.
func (s *Service) Daycare(id string) (*models.Daycare, error) {
	daycare, err := s.Daycares.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("daycare not found: %w", err)
	}
	return daycare, nil
}

// ListDonations returns every donation campaign.
func (s *Service) ListDonations() []models.Donation {
	donations, err := s.Donations.GetAll()
	if err != nil {
		utils.GetLogger().Warn("failed to list donations", zap.Error(err))
		return nil
	}
	return donations
}

// Donation returns one campaign and counts the view. The view counter is best
// effort: a failed bump never blocks the detail page.
func (s *Service) Donation(id string) (*models.Donation, error) {
	donation, err := s.Donations.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("donation campaign not found: %w", err)
	}
	if err := s.Donations.IncrementViewCount(id); err != nil {
		utils.GetLogger().Warn("failed to count donation view", zap.String("id", id), zap.Error(err))
	}
	return donation, nil
}
