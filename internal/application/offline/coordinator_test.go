package offline_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lubcarv/gestor-estoque/internal/application/offline"
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

func TestMutateThenSync_CaminhoRemoto(t *testing.T) {
	coord := newCoordinator(t, "http://127.0.0.1:1")

	remoteCalls, localCalls, syncCalls := 0, 0, 0
	result, err := coord.MutateThenSync(context.Background(),
		func(ctx context.Context) error { remoteCalls++; return nil },
		func(ctx context.Context) error { syncCalls++; return nil },
		func() error { localCalls++; return nil },
	)

	require.NoError(t, err)
	assert.False(t, result.Degraded())
	assert.Equal(t, 1, remoteCalls)
	assert.Equal(t, 1, syncCalls, "sucesso remoto re-puxa o cache")
	assert.Equal(t, 0, localCalls, "fallback local não roda quando o remoto aceita")
}

func TestMutateThenSync_FalhaRemotaAplicaFallbackLocal(t *testing.T) {
	coord := newCoordinator(t, "http://127.0.0.1:1")

	localCalls, syncCalls := 0, 0
	result, err := coord.MutateThenSync(context.Background(),
		func(ctx context.Context) error {
			return coord.API().DeleteCategory(ctx, 1) // conexão recusada
		},
		func(ctx context.Context) error { syncCalls++; return nil },
		func() error { localCalls++; return nil },
	)

	require.NoError(t, err)
	assert.True(t, result.Degraded())
	assert.Equal(t, 1, localCalls, "exatamente um caminho executa a mutação")
	assert.Equal(t, 0, syncCalls)
}

func TestMutateThenSync_ErroNaoRemotoPropaga(t *testing.T) {
	coord := newCoordinator(t, "http://127.0.0.1:1")

	sentinel := errors.New("regra de negócio")
	localCalls := 0
	_, err := coord.MutateThenSync(context.Background(),
		func(ctx context.Context) error { return sentinel },
		nil,
		func() error { localCalls++; return nil },
	)

	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, 0, localCalls, "erro que não é de disponibilidade não dispara fallback")
}

func TestMutateThenSync_FalhaDeSincronizacaoNaoDerrubaEscrita(t *testing.T) {
	coord := newCoordinator(t, "http://127.0.0.1:1")

	result, err := coord.MutateThenSync(context.Background(),
		func(ctx context.Context) error { return nil },
		func(ctx context.Context) error { return errors.New("pull falhou") },
		func() error { return nil },
	)

	require.NoError(t, err, "a escrita remota já venceu; o pull é melhor esforço")
	assert.False(t, result.Degraded())
}

func TestPullCategories_SobrescreveEspelhoLocal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/categorias":
			_, _ = w.Write([]byte(`[{"id":9,"nome":"Remota","ativa":true}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	coord := newCoordinator(t, srv.URL)

	// Estado local antigo que o pull deve descartar.
	_, err := coord.Cache().Save(localcache.EntityCategories, localcache.Record{"nome": "Antiga"})
	require.NoError(t, err)

	require.NoError(t, coord.PullCategories(context.Background()))

	items, err := coord.Cache().GetAll(localcache.EntityCategories)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Remota", items[0]["nome"])
}

func TestPullProducts_MapeiaSaldoEReferencias(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"codigo":"NB-001","nome":"Notebook","preco":"2500.00","categoriaNome":"Eletrônicos","quantidadeEstoque":8,"ativo":true}]`))
	}))
	defer srv.Close()

	coord := newCoordinator(t, srv.URL)

	// Categoria local que resolve a referência que chega só por nome.
	_, err := coord.Cache().Save(localcache.EntityCategories, localcache.Record{"nome": "Eletrônicos", "ativa": true})
	require.NoError(t, err)

	require.NoError(t, coord.PullProducts(context.Background()))

	rec, err := coord.Cache().FindByID(localcache.EntityProducts, 1)
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.EqualValues(t, 8, rec["estoqueAtual"], "saldo vem de quantidadeEstoque")
	assert.EqualValues(t, 1, rec["categoriaId"], "categoria resolvida pelo nome")
}
