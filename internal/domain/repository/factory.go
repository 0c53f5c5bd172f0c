package repository

// Factory describes access to the different domain repositories.
type Factory interface {
	Users() UserRepository
	Categories() CategoryRepository
	Products() ProductRepository
	Variants() VariantRepository
	Orders() OrderRepository
	Carts() CartRepository
	Stats() StatsRepository
}
