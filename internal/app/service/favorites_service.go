package service

import "sort"

type FavoritesService interface {
	Toggle(productID string) bool
	IsFavorite(productID string) bool
	List() []string
	Count() int
}

type favoritesService struct {
	ids map[string]struct{}
}

func NewFavoritesService() FavoritesService {
	return &favoritesService{ids: make(map[string]struct{})}
}

// Toggle flips membership and returns the new state
func (s *favoritesService) Toggle(productID string) bool {
	if _, ok := s.ids[productID]; ok {
		delete(s.ids, productID)
		return false
	}
	s.ids[productID] = struct{}{}
	return true
}

func (s *favoritesService) IsFavorite(productID string) bool {
	_, ok := s.ids[productID]
	return ok
}

// List returns the ids sorted so responses are stable
func (s *favoritesService) List() []string {
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

func (s *favoritesService) Count() int {
	return len(s.ids)
}
