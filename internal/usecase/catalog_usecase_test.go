package usecase

import (
	"context"
	"errors"
	"testing"

	"bemu_storefront/internal/domain/entities"
	mock_interfaces "bemu_storefront/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCatalogUseCase_ListProducts(t *testing.T) {
	t.Run("clamps limit and trims category", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewCatalogUseCase(repo)

		repo.EXPECT().ListProducts(gomock.Any(), entities.ProductFilter{CategorySlug: "home", Limit: 100}).Return(nil, nil)

		got, err := uc.ListProducts(context.Background(), entities.ProductFilter{CategorySlug: " home ", Limit: 500})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got == nil || len(got) != 0 {
			t.Fatalf("expected empty non-nil slice, got %#v", got)
		}
	})

	t.Run("repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewCatalogUseCase(repo)

		repo.EXPECT().ListProducts(gomock.Any(), gomock.Any()).Return(nil, errors.New("airtable"))

		if _, err := uc.ListProducts(context.Background(), entities.ProductFilter{}); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestCatalogUseCase_GetProductBySlug(t *testing.T) {
	t.Run("empty slug", func(t *testing.T) {
		uc := NewCatalogUseCase(nil)
		if _, err := uc.GetProductBySlug(context.Background(), "  "); !errors.Is(err, ErrInvalidSlug) {
			t.Fatalf("expected ErrInvalidSlug, got %v", err)
		}
	})

	t.Run("decodes slug and maps missing product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewCatalogUseCase(repo)

		repo.EXPECT().GetProductBySlug(gomock.Any(), "vase médio").Return(entities.Product{}, nil)

		if _, err := uc.GetProductBySlug(context.Background(), "vase%20m%C3%A9dio"); !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewCatalogUseCase(repo)

		repo.EXPECT().GetProductBySlug(gomock.Any(), "vase").Return(entities.Product{ID: "rec1", Slug: "vase"}, nil)

		p, err := uc.GetProductBySlug(context.Background(), "vase")
		if err != nil || p.ID != "rec1" {
			t.Fatalf("unexpected result: %+v err=%v", p, err)
		}
	})
}

func TestCatalogUseCase_Categories(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockICatalogRepository(ctrl)
	uc := NewCatalogUseCase(repo)

	repo.EXPECT().GetCategoryBySlug(gomock.Any(), "lamps").Return(entities.Category{}, nil)
	if _, err := uc.GetCategoryBySlug(context.Background(), "lamps"); !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}

	repo.EXPECT().ListCategories(gomock.Any()).Return(nil, nil)
	cats, err := uc.ListCategories(context.Background())
	if err != nil || cats == nil {
		t.Fatalf("expected empty categories, got %v err=%v", cats, err)
	}
}

func TestCatalogUseCase_ListOrganiziroProducts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockICatalogRepository(ctrl)
	uc := NewCatalogUseCase(repo)

	repo.EXPECT().ListOrganiziroProducts(gomock.Any()).Return([]entities.GridBase{
		{ID: "g1", Kind: entities.OrganiziroKindGrid, GridWidth: 1, GridHeight: 1},
		{ID: "b1", Kind: entities.OrganiziroKindBox},
		{ID: "x", Kind: ""},
	}, nil)

	grids, boxes, err := uc.ListOrganiziroProducts(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(grids) != 1 || grids[0].ID != "g1" || len(boxes) != 1 || boxes[0].ID != "b1" {
		t.Fatalf("unexpected split: grids=%v boxes=%v", grids, boxes)
	}
}
