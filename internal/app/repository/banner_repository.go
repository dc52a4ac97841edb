package repository

import (
	"strings"

	"github.com/citra/storefront/internal/app/model"
	"github.com/citra/storefront/pkg/logger"
)

// BannerRepository holds the ordered hero banner image URLs
type BannerRepository interface {
	List() []string
	Add(imageURL string) error
	Replace(imageURLs []string) error
	Remove(index int) bool
}

type bannerRepository struct {
	banners []string
}

func NewBannerRepository(seed []string) (BannerRepository, error) {
	r := &bannerRepository{}
	if err := r.Replace(seed); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *bannerRepository) List() []string {
	return append([]string{}, r.banners...)
}

func (r *bannerRepository) Add(imageURL string) error {
	imageURL = strings.TrimSpace(imageURL)
	if imageURL == "" {
		return model.NewValidationError("imageUrl", "is required")
	}
	r.banners = append(r.banners, imageURL)
	logger.Info("Banner added", logger.Fields{
		"count": len(r.banners),
	})
	return nil
}

// Replace swaps the whole list; any blank entry rejects the call
func (r *bannerRepository) Replace(imageURLs []string) error {
	next := make([]string, 0, len(imageURLs))
	for _, u := range imageURLs {
		u = strings.TrimSpace(u)
		if u == "" {
			return model.NewValidationError("imageUrl", "is required")
		}
		next = append(next, u)
	}
	r.banners = next
	logger.Debug("Banners replaced", logger.Fields{
		"count": len(next),
	})
	return nil
}

// Remove drops the banner at index; out-of-range is a no-op
func (r *bannerRepository) Remove(index int) bool {
	if index < 0 || index >= len(r.banners) {
		return false
	}
	next := make([]string, 0, len(r.banners)-1)
	next = append(next, r.banners[:index]...)
	r.banners = append(next, r.banners[index+1:]...)
	logger.Info("Banner removed", logger.Fields{
		"index": index,
	})
	return true
}
