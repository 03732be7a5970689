package product

// PopularCount is how many products the storefront features when a search
// comes back empty.
const PopularCount = 4

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() []Product {
	return s.repo.List()
}

func (s *Service) GetByID(id string) (Product, error) {
	return s.repo.GetByID(id)
}

func (s *Service) ListByCategory(c Category) []Product {
	return s.repo.ListByCategory(c)
}

// Popular returns the first n catalog products.
func (s *Service) Popular(n int) []Product {
	all := s.repo.List()
	if n < 0 || n > len(all) {
		n = len(all)
	}
	return all[:n]
}

// CountByCategory returns the number of products per category.
func (s *Service) CountByCategory() map[Category]int {
	out := make(map[Category]int, len(AllowedCategories))
	for _, p := range s.repo.List() {
		out[p.Category]++
	}
	return out
}

// ServiceInterface is the read surface other packages depend on.
type ServiceInterface interface {
	List() []Product
	GetByID(id string) (Product, error)
	ListByCategory(c Category) []Product
	Popular(n int) []Product
}

var _ ServiceInterface = (*Service)(nil)
