package queries

import "travel-backoffice/internal/domain/pricing"

type PackageQueries interface {
	List() []*PackageView
}

type packageQueriesImpl struct {
	catalog *pricing.Catalog
}

func NewPackageQueries(catalog *pricing.Catalog) PackageQueries {
	return &packageQueriesImpl{catalog: catalog}
}

func (q *packageQueriesImpl) List() []*PackageView {
	pkgs := q.catalog.Packages()
	views := make([]*PackageView, 0, len(pkgs))
	for _, p := range pkgs {
		views = append(views, &PackageView{ID: p.ID, Name: p.Name, BasePrice: p.BasePrice})
	}
	return views
}
