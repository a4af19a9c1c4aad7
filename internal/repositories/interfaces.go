package repositories

// SlotRepositoryInterface defines the contract for the named-slot key-value store
type SlotRepositoryInterface interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
	Delete(key string) error
}
