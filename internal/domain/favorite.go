package domain

// FavoriteSet holds the event ids a user has favorited. Membership
// drives the is_favorite flag on feed items; there is no ordering.
type FavoriteSet map[int64]struct{}

func (s FavoriteSet) Has(eventID int64) bool {
	_, ok := s[eventID]
	return ok
}
