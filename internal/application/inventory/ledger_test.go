package inventory_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lubcarv/gestor-estoque/internal/application/inventory"
	"github.com/lubcarv/gestor-estoque/internal/application/offline"
	"github.com/lubcarv/gestor-estoque/internal/domain"
	"github.com/lubcarv/gestor-estoque/internal/domain/entity"
	"github.com/lubcarv/gestor-estoque/internal/infrastructure/gateway"
	"github.com/lubcarv/gestor-estoque/internal/infrastructure/localcache"
	"github.com/lubcarv/gestor-estoque/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

// newLedger monta um ledger sobre cache em memória. baseURL inacessível
// ("http://127.0.0.1:1") exercita o modo degradado.
func newLedger(t *testing.T, baseURL string) (*inventory.Ledger, *localcache.Store) {
	t.Helper()
	cache, err := localcache.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = cache.Close() })

	coord := offline.NewCoordinator(gateway.New(baseURL, time.Second), cache, testLogger())
	return inventory.NewLedger(coord, testLogger()), cache
}

func seedProduct(t *testing.T, cache *localcache.Store, stock int) int64 {
	t.Helper()
	saved, err := cache.Save(localcache.EntityProducts, localcache.Record{
		"nome":         "Notebook",
		"codigo":       "NB-001",
		"estoqueAtual": stock,
		"ativo":        true,
	})
	require.NoError(t, err)
	return localcache.RecordID(saved)
}

func productStock(t *testing.T, cache *localcache.Store, id int64) int {
	t.Helper()
	rec, err := cache.FindByID(localcache.EntityProducts, id)
	require.NoError(t, err)
	require.NotNil(t, rec)
	var p entity.Product
	require.NoError(t, localcache.Decode(rec, &p))
	return p.CurrentStock
}

func TestRegisterEntry_Degradado(t *testing.T) {
	ledger, cache := newLedger(t, "http://127.0.0.1:1")
	id := seedProduct(t, cache, 2)

	out, err := ledger.RegisterEntry(context.Background(), inventory.MovementInput{
		ProductID: id, Quantity: 3, User: "maria",
	})
	require.NoError(t, err)

	assert.True(t, out.Degraded, "API fora do ar marca a escrita como local")
	assert.Equal(t, entity.MovementTypeIn, out.Movement.Type)
	assert.Equal(t, 2, out.Movement.QuantityBefore)
	assert.Equal(t, 5, out.Movement.QuantityAfter)
	assert.NotEmpty(t, out.Movement.TransactionID)
	assert.Equal(t, "Entrada de estoque", out.Movement.Note, "observação padrão quando omitida")

	assert.Equal(t, 5, productStock(t, cache, id))
}

func TestRegisterWithdrawal_Degradado(t *testing.T) {
	ledger, cache := newLedger(t, "http://127.0.0.1:1")
	id := seedProduct(t, cache, 10)

	out, err := ledger.RegisterWithdrawal(context.Background(), inventory.MovementInput{
		ProductID: id, Quantity: 4, User: "joao", Note: "venda balcão",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.MovementTypeOut, out.Movement.Type)
	assert.Equal(t, 10, out.Movement.QuantityBefore)
	assert.Equal(t, 6, out.Movement.QuantityAfter)
	assert.Equal(t, "venda balcão", out.Movement.Note)
	assert.Equal(t, 6, productStock(t, cache, id))
}

func TestRegisterWithdrawal_SaldoInsuficienteNaoMutaNada(t *testing.T) {
	ledger, cache := newLedger(t, "http://127.0.0.1:1")
	id := seedProduct(t, cache, 2)

	_, err := ledger.RegisterWithdrawal(context.Background(), inventory.MovementInput{
		ProductID: id, Quantity: 5, User: "maria",
	})

	var stockErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 2, stockErr.Available)
	assert.Equal(t, 5, stockErr.Requested)
	assert.Equal(t, "estoque insuficiente. Disponível: 2, Solicitado: 5", err.Error())

	// Rejeição acontece antes de qualquer efeito colateral.
	assert.Equal(t, 2, productStock(t, cache, id))
	movs, err := cache.GetAll(localcache.EntityMovements)
	require.NoError(t, err)
	assert.Empty(t, movs, "nenhuma movimentação registrada")
}

func TestRegister_ValidacaoAntesDeQualquerCoisa(t *testing.T) {
	ledger, cache := newLedger(t, "http://127.0.0.1:1")
	id := seedProduct(t, cache, 2)

	_, err := ledger.RegisterEntry(context.Background(), inventory.MovementInput{
		ProductID: id, Quantity: 0, User: "",
	})

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Messages, "Quantidade deve ser maior que zero")
	assert.Contains(t, vErr.Messages, "Usuário responsável é obrigatório")
	assert.Equal(t, 2, productStock(t, cache, id))
}

func TestRegister_ProdutoInexistente(t *testing.T) {
	ledger, _ := newLedger(t, "http://127.0.0.1:1")

	_, err := ledger.RegisterEntry(context.Background(), inventory.MovementInput{
		ProductID: 99, Quantity: 1, User: "maria",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// TestRegister_SaldoEhSomaDasMovimentacoes verifica a propriedade do ledger:
// o saldo final é o inicial mais as entradas menos as saídas aceitas, e cada
// movimentação carrega o antes/depois consistente com a anterior.
func TestRegister_SaldoEhSomaDasMovimentacoes(t *testing.T) {
	ledger, cache := newLedger(t, "http://127.0.0.1:1")
	id := seedProduct(t, cache, 10)

	steps := []struct {
		entry bool
		qty   int
	}{
		{true, 5}, {false, 3}, {true, 2}, {false, 8}, {true, 1},
	}

	expected := 10
	for _, st := range steps {
		in := inventory.MovementInput{ProductID: id, Quantity: st.qty, User: "maria"}
		var err error
		if st.entry {
			_, err = ledger.RegisterEntry(context.Background(), in)
			expected += st.qty
		} else {
			_, err = ledger.RegisterWithdrawal(context.Background(), in)
			expected -= st.qty
		}
		require.NoError(t, err)
	}

	assert.Equal(t, expected, productStock(t, cache, id))

	var movs []entity.StockMovement
	items, err := cache.GetAll(localcache.EntityMovements)
	require.NoError(t, err)
	require.NoError(t, localcache.DecodeAll(items, &movs))
	require.Len(t, movs, len(steps))

	prev := 10
	for _, m := range movs {
		assert.Equal(t, prev, m.QuantityBefore, "antes de cada movimentação bate com o depois da anterior")
		prev = m.QuantityAfter
	}
	assert.Equal(t, expected, prev)
}

func TestRegisterEntry_CaminhoRemoto(t *testing.T) {
	// Backend aceita a reposição e o pull devolve o saldo autoritativo.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPut:
			assert.Equal(t, "/api/produtos/1/repor", r.URL.Path)
			assert.Equal(t, "3", r.URL.Query().Get("quantidade"))
			w.WriteHeader(http.StatusOK)
		case r.URL.Path == "/api/produtos":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[{"id":1,"codigo":"NB-001","nome":"Notebook","preco":"2500.00","quantidadeEstoque":5,"ativo":true}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	ledger, cache := newLedger(t, srv.URL)
	id := seedProduct(t, cache, 2)

	out, err := ledger.RegisterEntry(context.Background(), inventory.MovementInput{
		ProductID: id, Quantity: 3, User: "maria",
	})
	require.NoError(t, err)

	assert.False(t, out.Degraded)
	assert.Equal(t, 2, out.Movement.QuantityBefore, "antes capturado antes da chamada remota")
	assert.Equal(t, 5, out.Movement.QuantityAfter)
	assert.Equal(t, 5, productStock(t, cache, id), "cache re-puxado do backend")
}

func TestHistory_FallbackLocalFiltraPorProduto(t *testing.T) {
	ledger, cache := newLedger(t, "http://127.0.0.1:1")
	id := seedProduct(t, cache, 10)
	other, err := cache.Save(localcache.EntityProducts, localcache.Record{
		"nome": "Mouse", "codigo": "MS-001", "estoqueAtual": 4, "ativo": true,
	})
	require.NoError(t, err)

	_, err = ledger.RegisterEntry(context.Background(), inventory.MovementInput{ProductID: id, Quantity: 1, User: "maria"})
	require.NoError(t, err)
	_, err = ledger.RegisterWithdrawal(context.Background(), inventory.MovementInput{ProductID: id, Quantity: 2, User: "maria"})
	require.NoError(t, err)
	_, err = ledger.RegisterEntry(context.Background(), inventory.MovementInput{ProductID: localcache.RecordID(other), Quantity: 9, User: "maria"})
	require.NoError(t, err)

	out, err := ledger.History(context.Background(), id)
	require.NoError(t, err)
	require.Len(t, out, 2, "só as movimentações do produto pedido")
	for _, m := range out {
		assert.Equal(t, id, m.ProductID)
	}
}
