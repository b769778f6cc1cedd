package repositories

// Repository aggregates access to all persistent stores.
type Repository interface {
	User() UserRepository
	Document() DocumentRepository
}
