package store

//go:generate mockgen -source=./store.go -destination=./store_mock.go -package=store

// Store defines the storage interface of the service.
type Store interface {
	Area() AreaStore
}
