package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/tienda-ropa/internal/application/dto"
	"github.com/tu-usuario/tienda-ropa/internal/application/usecase"
	"github.com/tu-usuario/tienda-ropa/internal/domain"
	"github.com/tu-usuario/tienda-ropa/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeImageRepo struct {
	images map[string]*entity.ProductImage
}

func newFakeImageRepo() *fakeImageRepo {
	return &fakeImageRepo{images: map[string]*entity.ProductImage{}}
}

func (r *fakeImageRepo) Create(img *entity.ProductImage) error {
	r.images[img.ID] = img
	return nil
}

func (r *fakeImageRepo) GetByID(id string) (*entity.ProductImage, error) {
	return r.images[id], nil
}

func (r *fakeImageRepo) ListByProduct(productID string) ([]*entity.ProductImage, error) {
	var out []*entity.ProductImage
	for _, img := range r.images {
		if img.ProductID == productID {
			out = append(out, img)
		}
	}
	return out, nil
}

func (r *fakeImageRepo) Update(img *entity.ProductImage) error {
	r.images[img.ID] = img
	return nil
}

func (r *fakeImageRepo) Delete(id string) error {
	delete(r.images, id)
	return nil
}

type fakeProductGetter struct {
	products map[string]*entity.Product
}

func (r *fakeProductGetter) Create(p *entity.Product) error { return nil }
func (r *fakeProductGetter) GetByID(id string) (*entity.Product, error) {
	return r.products[id], nil
}
func (r *fakeProductGetter) Update(p *entity.Product) error { return nil }
func (r *fakeProductGetter) List(limit, offset int, search string) ([]*entity.Product, int, error) {
	return nil, 0, nil
}
func (r *fakeProductGetter) Delete(id string) error { return nil }

const imgProductID = "prod-img-1"

func newImageUC() (*usecase.ImageUseCase, *fakeImageRepo) {
	repo := newFakeImageRepo()
	products := &fakeProductGetter{products: map[string]*entity.Product{
		imgProductID: {ID: imgProductID, Name: "Tenis urbanos", Active: true},
	}}
	return usecase.NewImageUseCase(repo, products), repo
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestImageCreate_AgregaALaGaleria(t *testing.T) {
	uc, repo := newImageUC()

	out, err := uc.Create(dto.CreateImageRequest{
		ProductID: imgProductID,
		URL:       "https://cdn.example.com/tenis-frontal.jpg",
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, imgProductID, out.ProductID)
	assert.NotEmpty(t, out.ID)
	assert.Len(t, repo.images, 1)
}

func TestImageCreate_ProductoInexistente(t *testing.T) {
	uc, repo := newImageUC()

	_, err := uc.Create(dto.CreateImageRequest{
		ProductID: "no-existe",
		URL:       "https://cdn.example.com/foto.jpg",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidReference)
	assert.Empty(t, repo.images)
}

func TestImageCreateBatch_CreaTodas(t *testing.T) {
	uc, repo := newImageUC()

	out, err := uc.CreateBatch(dto.CreateImageBatchRequest{
		ProductID: imgProductID,
		URLs: []string{
			"https://cdn.example.com/tenis-frontal.jpg",
			"https://cdn.example.com/tenis-lateral.jpg",
			"https://cdn.example.com/tenis-suela.jpg",
		},
	})
	require.NoError(t, err)
	assert.Len(t, out, 3)
	assert.Len(t, repo.images, 3)

	list, err := uc.ListByProduct(imgProductID)
	require.NoError(t, err)
	assert.Len(t, list.Items, 3)
}

func TestImageUpdate_ReemplazaURL(t *testing.T) {
	uc, _ := newImageUC()

	created, err := uc.Create(dto.CreateImageRequest{
		ProductID: imgProductID,
		URL:       "https://cdn.example.com/antigua.jpg",
	})
	require.NoError(t, err)

	updated, err := uc.Update(created.ID, dto.UpdateImageRequest{URL: "https://cdn.example.com/nueva.jpg"})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "https://cdn.example.com/nueva.jpg", updated.URL)

	// Imagen inexistente: nil sin error, el handler responde 404.
	missing, err := uc.Update("no-existe", dto.UpdateImageRequest{URL: "https://cdn.example.com/x.jpg"})
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestImageDelete_NoExiste(t *testing.T) {
	uc, _ := newImageUC()

	err := uc.Delete("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
