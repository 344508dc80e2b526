// Package gateway implementa o cliente tipado do backend autoritativo
// (REST, JSON, caminho base /api). Qualquer falha de transporte ou resposta
// não-2xx vira um erro compatível com domain.ErrRemoteUnavailable, o que
// dispara o fallback local no coordenador de sincronização.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/lubcarv/gestor-estoque/internal/domain"
)

// RemoteError resposta não-2xx do backend, com a mensagem do corpo quando
// presente ("message" ou "error"), senão "Erro <status>".
type RemoteError struct {
	Status  int
	Message string
}

func (e *RemoteError) Error() string {
	return e.Message
}

// Is permite errors.Is(err, domain.ErrRemoteUnavailable).
func (e *RemoteError) Is(target error) bool {
	return target == domain.ErrRemoteUnavailable
}

// Client cliente HTTP do gateway remoto.
type Client struct {
	baseURL string
	http    *http.Client
}

// New constrói o cliente. O timeout vale para cada requisição; não há retry
// nem cancelamento além do context.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// doJSON executa a requisição e decodifica a resposta em out (quando não nil).
// Endpoints 2xx sem corpo JSON são tratados como sucesso com out intocado.
func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("gateway: codificar corpo: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("gateway: montar requisição: %w", err)
	}
	req.Header.Set("Accept", "*/*")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrRemoteUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &RemoteError{Status: resp.StatusCode, Message: errorMessage(resp)}
	}

	if out == nil {
		return nil
	}
	ct := resp.Header.Get("Content-Type")
	if !strings.Contains(ct, "application/json") {
		// Alguns endpoints respondem 200 sem corpo
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("gateway: decodificar resposta de %s: %w", path, err)
	}
	return nil
}

// errorMessage extrai message/error do corpo, senão "Erro <status>".
func errorMessage(resp *http.Response) string {
	msg := fmt.Sprintf("Erro %d", resp.StatusCode)
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	return msg
}
