package localcache_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lubcarv/gestor-estoque/internal/infrastructure/localcache"
)

func openStore(t *testing.T) *localcache.Store {
	t.Helper()
	s, err := localcache.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSave_NovoRegistroRecebeIdETimestamps(t *testing.T) {
	s := openStore(t)

	saved, err := s.Save(localcache.EntityCategories, localcache.Record{"nome": "Ferramentas"})
	require.NoError(t, err)

	assert.Equal(t, int64(1), localcache.RecordID(saved), "primeiro registro recebe id 1")
	assert.NotEmpty(t, saved["dataCriacao"], "criação deve carimbar dataCriacao")
	assert.NotEmpty(t, saved["dataAtualizacao"], "criação deve carimbar dataAtualizacao")
}

func TestSave_IdsSaoMaxMaisUm(t *testing.T) {
	s := openStore(t)

	for _, nome := range []string{"A", "B", "C"} {
		_, err := s.Save(localcache.EntityCategories, localcache.Record{"nome": nome})
		require.NoError(t, err)
	}
	// Excluir o último não libera o id para reuso: o próximo é max+1.
	require.NoError(t, s.Delete(localcache.EntityCategories, 3))
	require.NoError(t, s.Delete(localcache.EntityCategories, 1))

	saved, err := s.Save(localcache.EntityCategories, localcache.Record{"nome": "D"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), localcache.RecordID(saved), "próximo id é max(id)+1 dos remanescentes")
}

func TestSave_MergeRasoPreservaCamposAusentes(t *testing.T) {
	s := openStore(t)

	created, err := s.Save(localcache.EntityProducts, localcache.Record{
		"nome":         "Parafuso",
		"codigo":       "P-001",
		"estoqueAtual": 7,
	})
	require.NoError(t, err)
	id := localcache.RecordID(created)

	// Patch só com o saldo: os demais campos não podem ser perdidos.
	_, err = s.Save(localcache.EntityProducts, localcache.Record{
		"id":           id,
		"estoqueAtual": 12,
	})
	require.NoError(t, err)

	rec, err := s.FindByID(localcache.EntityProducts, id)
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "Parafuso", rec["nome"])
	assert.Equal(t, "P-001", rec["codigo"])
	assert.EqualValues(t, 12, rec["estoqueAtual"])
	assert.Equal(t, created["dataCriacao"], rec["dataCriacao"], "dataCriacao não muda em atualização")
}

func TestSave_IdDesconhecidoEntraComoVeio(t *testing.T) {
	s := openStore(t)

	// Espelho de registro remoto cujo id não existe localmente.
	saved, err := s.Save(localcache.EntityProducts, localcache.Record{
		"id":   int64(42),
		"nome": "Importado",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), localcache.RecordID(saved))

	rec, err := s.FindByID(localcache.EntityProducts, 42)
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "Importado", rec["nome"])
}

func TestFindByID_InexistenteDevolveNil(t *testing.T) {
	s := openStore(t)
	rec, err := s.FindByID(localcache.EntityCategories, 99)
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestExists_CaseInsensitiveComExclusao(t *testing.T) {
	s := openStore(t)

	saved, err := s.Save(localcache.EntityCategories, localcache.Record{"nome": "Eletrônicos"})
	require.NoError(t, err)
	id := localcache.RecordID(saved)

	taken, err := s.Exists(localcache.EntityCategories, "nome", "eletrônicos", 0)
	require.NoError(t, err)
	assert.True(t, taken, "comparação ignora maiúsculas")

	// Editar o próprio registro sem trocar o nome não é duplicidade.
	taken, err = s.Exists(localcache.EntityCategories, "nome", "Eletrônicos", id)
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestFindByField_BuscaPorSubstring(t *testing.T) {
	s := openStore(t)

	_, err := s.Save(localcache.EntityCategories, localcache.Record{"nome": "Casa", "descricao": "Produtos para casa e jardim"})
	require.NoError(t, err)
	_, err = s.Save(localcache.EntityCategories, localcache.Record{"nome": "Esportes", "descricao": "Artigos esportivos"})
	require.NoError(t, err)

	out, err := s.FindByField(localcache.EntityCategories, "descricao", "JARDIM")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Casa", out[0]["nome"])
}

func TestCountRelated(t *testing.T) {
	s := openStore(t)

	for i := 0; i < 3; i++ {
		_, err := s.Save(localcache.EntityProducts, localcache.Record{"nome": "P", "categoriaId": 7})
		require.NoError(t, err)
	}
	_, err := s.Save(localcache.EntityProducts, localcache.Record{"nome": "Q", "categoriaId": 8})
	require.NoError(t, err)

	count, err := s.CountRelated(localcache.EntityProducts, "categoriaId", 7)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestReplaceAll_SobrescreveSemMerge(t *testing.T) {
	s := openStore(t)

	_, err := s.Save(localcache.EntityCategories, localcache.Record{"nome": "Antiga"})
	require.NoError(t, err)

	err = s.ReplaceAll(localcache.EntityCategories, []localcache.Record{
		{"id": int64(10), "nome": "Remota"},
	})
	require.NoError(t, err)

	items, err := s.GetAll(localcache.EntityCategories)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Remota", items[0]["nome"])
}

func TestAppendMovement_CarimbaIdEDataHora(t *testing.T) {
	s := openStore(t)

	m1, err := s.AppendMovement(localcache.Record{"produtoId": 1, "tipo": "ENTRADA", "quantidade": 5})
	require.NoError(t, err)
	m2, err := s.AppendMovement(localcache.Record{"produtoId": 1, "tipo": "SAIDA", "quantidade": 2})
	require.NoError(t, err)

	assert.Equal(t, int64(1), localcache.RecordID(m1))
	assert.Equal(t, int64(2), localcache.RecordID(m2))
	assert.NotEmpty(t, m1["dataHora"])
}

func TestMovementsByProduct_FiltraEOrdenaDesc(t *testing.T) {
	s := openStore(t)

	_, err := s.AppendMovement(localcache.Record{"produtoId": 1, "tipo": "ENTRADA", "quantidade": 5, "dataHora": "2026-01-01T10:00:00Z"})
	require.NoError(t, err)
	_, err = s.AppendMovement(localcache.Record{"produtoId": 2, "tipo": "ENTRADA", "quantidade": 1})
	require.NoError(t, err)
	_, err = s.AppendMovement(localcache.Record{"produtoId": 1, "tipo": "SAIDA", "quantidade": 2})
	require.NoError(t, err)

	out, err := s.MovementsByProduct(1)
	require.NoError(t, err)
	require.Len(t, out, 2)
	// AppendMovement sobrescreve dataHora com o agora, então a segunda
	// movimentação do produto 1 é a mais recente.
	assert.Equal(t, "SAIDA", out[0]["tipo"], "mais recente primeiro")
}

func TestTheme_RoundTrip(t *testing.T) {
	s := openStore(t)

	theme, err := s.Theme()
	require.NoError(t, err)
	assert.Empty(t, theme, "sem preferência gravada devolve vazio")

	require.NoError(t, s.SetTheme("dark"))
	theme, err = s.Theme()
	require.NoError(t, err)
	assert.Equal(t, "dark", theme)
}

func TestSeed_NaoDuplicaQuandoJaPopulado(t *testing.T) {
	s := openStore(t)

	require.NoError(t, s.Seed())
	require.NoError(t, s.Seed())

	cats, err := s.GetAll(localcache.EntityCategories)
	require.NoError(t, err)
	assert.Len(t, cats, 4, "seed roda uma única vez")

	sups, err := s.GetAll(localcache.EntitySuppliers)
	require.NoError(t, err)
	assert.Len(t, sups, 3)
}
