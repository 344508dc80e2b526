package usecase_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lubcarv/gestor-estoque/internal/application/offline"
	"github.com/lubcarv/gestor-estoque/internal/application/usecase"
	"github.com/lubcarv/gestor-estoque/internal/domain"
	"github.com/lubcarv/gestor-estoque/internal/domain/entity"
	"github.com/lubcarv/gestor-estoque/internal/infrastructure/gateway"
	"github.com/lubcarv/gestor-estoque/internal/infrastructure/localcache"
	"github.com/lubcarv/gestor-estoque/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

func newCoordinator(t *testing.T, baseURL string) *offline.Coordinator {
	t.Helper()
	cache, err := localcache.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = cache.Close() })
	return offline.NewCoordinator(gateway.New(baseURL, time.Second), cache, testLogger())
}

func TestCategoryCreate_DegradadoGravaNoCache(t *testing.T) {
	coord := newCoordinator(t, "http://127.0.0.1:1")
	uc := usecase.NewCategoryUseCase(coord)

	out, result, err := uc.Create(context.Background(), entity.Category{Name: "Ferramentas", Active: true})
	require.NoError(t, err)

	assert.True(t, result.Degraded())
	assert.Equal(t, int64(1), out.ID, "cache atribui o próximo id")
	assert.NotNil(t, out.CreatedAt)

	rec, err := coord.Cache().FindByID(localcache.EntityCategories, out.ID)
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "Ferramentas", rec["nome"])
}

func TestCategoryCreate_RejeitaInvalida(t *testing.T) {
	coord := newCoordinator(t, "http://127.0.0.1:1")
	uc := usecase.NewCategoryUseCase(coord)

	_, _, err := uc.Create(context.Background(), entity.Category{Name: "x"})

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Messages, "Nome é obrigatório e deve ter pelo menos 2 caracteres")
}

func TestCategoryCreate_RejeitaNomeDuplicado(t *testing.T) {
	coord := newCoordinator(t, "http://127.0.0.1:1")
	uc := usecase.NewCategoryUseCase(coord)

	_, _, err := uc.Create(context.Background(), entity.Category{Name: "Eletrônicos", Active: true})
	require.NoError(t, err)

	// Diferença de caixa não escapa da checagem.
	_, _, err = uc.Create(context.Background(), entity.Category{Name: "ELETRÔNICOS", Active: true})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCategoryUpdate_MesmoNomeNoProprioRegistro(t *testing.T) {
	coord := newCoordinator(t, "http://127.0.0.1:1")
	uc := usecase.NewCategoryUseCase(coord)

	created, _, err := uc.Create(context.Background(), entity.Category{Name: "Esportes", Active: true})
	require.NoError(t, err)

	// Editar sem trocar o nome não é duplicidade.
	updated, _, err := uc.Update(context.Background(), created.ID, entity.Category{
		Name: "Esportes", Description: "Artigos esportivos", Active: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "Artigos esportivos", updated.Description)
	assert.Equal(t, created.ID, updated.ID)
}

func TestCategoryDelete_RejeitaComProdutosVinculados(t *testing.T) {
	coord := newCoordinator(t, "http://127.0.0.1:1")
	uc := usecase.NewCategoryUseCase(coord)

	created, _, err := uc.Create(context.Background(), entity.Category{Name: "Eletrônicos", Active: true})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		_, err := coord.Cache().Save(localcache.EntityProducts, localcache.Record{
			"nome": "P", "categoriaId": created.ID,
		})
		require.NoError(t, err)
	}

	_, err = uc.Delete(context.Background(), created.ID)

	var inUse *domain.InUseError
	require.ErrorAs(t, err, &inUse)
	assert.Equal(t, 2, inUse.Count)
	assert.ErrorIs(t, err, domain.ErrConflict)

	// A categoria permanece.
	rec, err := coord.Cache().FindByID(localcache.EntityCategories, created.ID)
	require.NoError(t, err)
	assert.NotNil(t, rec)
}

func TestCategoryDelete_SemVinculosRemoveDoCache(t *testing.T) {
	coord := newCoordinator(t, "http://127.0.0.1:1")
	uc := usecase.NewCategoryUseCase(coord)

	created, _, err := uc.Create(context.Background(), entity.Category{Name: "Temporária", Active: true})
	require.NoError(t, err)

	result, err := uc.Delete(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, result.Degraded())

	rec, err := coord.Cache().FindByID(localcache.EntityCategories, created.ID)
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestCategoryList_RemotoDisponivelRepuxaEspelho(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":3,"nome":"Remota","ativa":true}]`))
	}))
	defer srv.Close()

	coord := newCoordinator(t, srv.URL)
	uc := usecase.NewCategoryUseCase(coord)

	out, fromCache, err := uc.List(context.Background())
	require.NoError(t, err)
	assert.False(t, fromCache)
	require.Len(t, out, 1)
	assert.Equal(t, "Remota", out[0].Name)
}

func TestCategoryList_OfflineServeDoCache(t *testing.T) {
	coord := newCoordinator(t, "http://127.0.0.1:1")
	uc := usecase.NewCategoryUseCase(coord)

	_, _, err := uc.Create(context.Background(), entity.Category{Name: "Local", Active: true})
	require.NoError(t, err)

	out, fromCache, err := uc.List(context.Background())
	require.NoError(t, err)
	assert.True(t, fromCache, "leitura degradada sinalizada ao chamador")
	require.Len(t, out, 1)
	assert.Equal(t, "Local", out[0].Name)
}

func TestCategoryGet_Inexistente(t *testing.T) {
	coord := newCoordinator(t, "http://127.0.0.1:1")
	uc := usecase.NewCategoryUseCase(coord)

	_, err := uc.Get(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
