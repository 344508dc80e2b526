package gateway_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lubcarv/gestor-estoque/internal/domain"
	"github.com/lubcarv/gestor-estoque/internal/domain/entity"
	"github.com/lubcarv/gestor-estoque/internal/infrastructure/gateway"
)

func TestListCategories_DecodificaResposta(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/categorias", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"nome":"Eletrônicos","ativa":true}]`))
	}))
	defer srv.Close()

	client := gateway.New(srv.URL, time.Second)
	out, err := client.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Eletrônicos", out[0].Name)
	assert.True(t, out[0].Active)
}

func TestDoJSON_TransporteForaDoArViraRemoteUnavailable(t *testing.T) {
	// Porta 1 recusa conexão imediatamente.
	client := gateway.New("http://127.0.0.1:1", time.Second)

	_, err := client.ListCategories(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrRemoteUnavailable),
		"falha de transporte deve disparar o fallback local")
}

func TestDoJSON_ErroComMensagemNoCorpo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"Categoria não encontrada"}`))
	}))
	defer srv.Close()

	client := gateway.New(srv.URL, time.Second)
	_, err := client.GetCategory(context.Background(), 99)
	require.Error(t, err)

	var remoteErr *gateway.RemoteError
	require.True(t, errors.As(err, &remoteErr))
	assert.Equal(t, http.StatusBadRequest, remoteErr.Status)
	assert.Equal(t, "Categoria não encontrada", remoteErr.Message)
}

func TestDoJSON_ErroComCampoError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":"registro duplicado"}`))
	}))
	defer srv.Close()

	client := gateway.New(srv.URL, time.Second)
	err := client.DeleteCategory(context.Background(), 1)

	var remoteErr *gateway.RemoteError
	require.True(t, errors.As(err, &remoteErr))
	assert.Equal(t, "registro duplicado", remoteErr.Message)
}

func TestDoJSON_ErroSemCorpoUsaStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := gateway.New(srv.URL, time.Second)
	err := client.DeleteCategory(context.Background(), 1)

	var remoteErr *gateway.RemoteError
	require.True(t, errors.As(err, &remoteErr))
	assert.Equal(t, "Erro 500", remoteErr.Message)
	assert.True(t, errors.Is(err, domain.ErrRemoteUnavailable),
		"resposta não-2xx também dispara o fallback local")
}

func TestDoJSON_SucessoSemCorpoJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := gateway.New(srv.URL, time.Second)
	out, err := client.ListCategories(context.Background())
	require.NoError(t, err, "2xx sem corpo JSON é sucesso")
	assert.Empty(t, out)
}

func TestWithdrawProduct_MontaQuery(t *testing.T) {
	var gotPath, gotQty, gotUser string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQty = r.URL.Query().Get("quantidade")
		gotUser = r.URL.Query().Get("usuario")
		assert.Equal(t, http.MethodPut, r.Method)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := gateway.New(srv.URL, time.Second)
	err := client.WithdrawProduct(context.Background(), 7, 3, "maria")
	require.NoError(t, err)
	assert.Equal(t, "/api/produtos/7/retirar", gotPath)
	assert.Equal(t, "3", gotQty)
	assert.Equal(t, "maria", gotUser)
}

func TestCreateCategory_EnviaCorpoEDevolveCriada(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/categorias", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":5,"nome":"Ferramentas","ativa":true}`))
	}))
	defer srv.Close()

	client := gateway.New(srv.URL, time.Second)
	created, err := client.CreateCategory(context.Background(), entity.Category{Name: "Ferramentas", Active: true})
	require.NoError(t, err)
	assert.Equal(t, int64(5), created.ID)
}
