package postgres

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/roamio/travelagency/model"
	"github.com/roamio/travelagency/repository"
)

// ListVisaPackages retrieves visa packages matching the filter
func (r *PostgresRepository) ListVisaPackages(filter model.VisaFilter) ([]model.VisaPackage, error) {
	var packages []model.VisaPackage

	query := r.db.Model(&model.VisaPackage{})

	if filter.Country != "" {
		query = query.Where("country = ?", filter.Country)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}

	if err := query.Order("country ASC, price ASC").Find(&packages).Error; err != nil {
		return nil, fmt.Errorf("failed to list visa packages: %w", err)
	}

	return packages, nil
}

// GetVisaPackageBySlug retrieves a visa package by its slug
func (r *PostgresRepository) GetVisaPackageBySlug(slug string) (*model.VisaPackage, error) {
	var pkg model.VisaPackage
	err := r.db.Where("slug = ?", slug).First(&pkg).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get visa package: %w", err)
	}

	return &pkg, nil
}
