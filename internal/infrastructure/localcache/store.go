// Package localcache implementa o espelho local das coleções remotas:
// um armazenamento chave-valor por entidade (arrays JSON em sqlite),
// equivalente ao localStorage do navegador. Serve de fallback offline;
// a fonte autoritativa continua sendo o backend.
package localcache

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Chaves das coleções persistidas (uma entrada por entidade).
const (
	EntityProducts   = "produtos"
	EntityCategories = "categorias"
	EntitySuppliers  = "fornecedores"
	EntityMovements  = "movimentacoes"

	themeKey = "theme"
)

// Record é um registro opaco de uma coleção. Mapas preservam campos que o
// chamador não conhece, permitindo o merge raso do Save.
type Record = map[string]any

// Store armazenamento chave-valor local. Todas as operações são varreduras
// lineares sobre o array da entidade; não há índices nem transações.
type Store struct {
	mu sync.Mutex
	db *sql.DB
}

// Open abre (ou cria) o banco sqlite do cache. Use ":memory:" em testes.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("localcache: abrir %s: %w", path, err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv (chave TEXT PRIMARY KEY, valor TEXT NOT NULL)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("localcache: criar tabela kv: %w", err)
	}
	return &Store{db: db}, nil
}

// Close fecha o banco.
func (s *Store) Close() error {
	return s.db.Close()
}

// GetAll devolve todos os registros da entidade (array vazio se não existir).
func (s *Store) GetAll(entity string) ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getAll(entity)
}

func (s *Store) getAll(entity string) ([]Record, error) {
	var raw string
	err := s.db.QueryRow(`SELECT valor FROM kv WHERE chave = ?`, entity).Scan(&raw)
	if err == sql.ErrNoRows {
		return []Record{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("localcache: ler %s: %w", entity, err)
	}
	var items []Record
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("localcache: decodificar %s: %w", entity, err)
	}
	if items == nil {
		items = []Record{}
	}
	return items, nil
}

func (s *Store) setAll(entity string, items []Record) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("localcache: codificar %s: %w", entity, err)
	}
	_, err = s.db.Exec(
		`INSERT INTO kv (chave, valor) VALUES (?, ?) ON CONFLICT(chave) DO UPDATE SET valor = excluded.valor`,
		entity, string(raw),
	)
	if err != nil {
		return fmt.Errorf("localcache: gravar %s: %w", entity, err)
	}
	return nil
}

// nextID devolve max(id)+1, ou 1 para coleção vazia.
func nextID(items []Record) int64 {
	var max int64
	for _, it := range items {
		if id := RecordID(it); id > max {
			max = id
		}
	}
	return max + 1
}

// Save cria ou atualiza um registro. Sem id: atribui o próximo inteiro e
// carimba dataCriacao. Com id: merge raso sobre o registro existente,
// preservando campos ausentes no patch. Sempre carimba dataAtualizacao.
func (s *Store) Save(entity string, item Record) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.getAll(entity)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	id := RecordID(item)
	if id != 0 {
		found := false
		for i, existing := range items {
			if RecordID(existing) == id {
				for k, v := range item {
					existing[k] = v
				}
				existing["dataAtualizacao"] = now
				items[i] = existing
				item = existing
				found = true
				break
			}
		}
		if !found {
			// id desconhecido: registra como veio (espelho de dado remoto)
			item["dataAtualizacao"] = now
			items = append(items, item)
		}
	} else {
		item["id"] = nextID(items)
		item["dataCriacao"] = now
		item["dataAtualizacao"] = now
		items = append(items, item)
	}

	if err := s.setAll(entity, items); err != nil {
		return nil, err
	}
	return item, nil
}

// FindByID devolve o registro com o id dado, ou nil se não existir.
func (s *Store) FindByID(entity string, id int64) (Record, error) {
	items, err := s.GetAll(entity)
	if err != nil {
		return nil, err
	}
	for _, it := range items {
		if RecordID(it) == id {
			return it, nil
		}
	}
	return nil, nil
}

// Delete remove o registro com o id dado (no-op se não existir).
func (s *Store) Delete(entity string, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.getAll(entity)
	if err != nil {
		return err
	}
	filtered := items[:0]
	for _, it := range items {
		if RecordID(it) != id {
			filtered = append(filtered, it)
		}
	}
	return s.setAll(entity, filtered)
}

// Exists verifica duplicidade de valor textual num campo (case-insensitive),
// opcionalmente excluindo um id (edição in-place).
func (s *Store) Exists(entity, field, value string, excludeID int64) (bool, error) {
	items, err := s.GetAll(entity)
	if err != nil {
		return false, err
	}
	for _, it := range items {
		fv, ok := it[field].(string)
		if !ok || fv == "" {
			continue
		}
		if strings.EqualFold(fv, value) && RecordID(it) != excludeID {
			return true, nil
		}
	}
	return false, nil
}

// FindByField devolve os registros cujo campo textual contém o valor
// (case-insensitive, busca por substring).
func (s *Store) FindByField(entity, field, value string) ([]Record, error) {
	items, err := s.GetAll(entity)
	if err != nil {
		return nil, err
	}
	var out []Record
	needle := strings.ToLower(value)
	for _, it := range items {
		fv, ok := it[field].(string)
		if ok && strings.Contains(strings.ToLower(fv), needle) {
			out = append(out, it)
		}
	}
	return out, nil
}

// CountRelated conta registros cuja chave estrangeira aponta para o id dado.
func (s *Store) CountRelated(entity, foreignKey string, id int64) (int, error) {
	items, err := s.GetAll(entity)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, it := range items {
		if recordInt64(it[foreignKey]) == id {
			count++
		}
	}
	return count, nil
}

// ReplaceAll sobrescreve a coleção inteira (last-write-wins, sem merge).
// Usado pela sincronização pós-escrita remota.
func (s *Store) ReplaceAll(entity string, items []Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if items == nil {
		items = []Record{}
	}
	return s.setAll(entity, items)
}

// Clear remove a coleção da entidade.
func (s *Store) Clear(entity string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(`DELETE FROM kv WHERE chave = ?`, entity)
	return err
}

// AppendMovement registra uma movimentação: próximo id e dataHora carimbados
// no append. O histórico nunca é atualizado ou excluído.
func (s *Store) AppendMovement(m Record) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.getAll(EntityMovements)
	if err != nil {
		return nil, err
	}
	m["id"] = nextID(items)
	m["dataHora"] = time.Now().UTC().Format(time.RFC3339)
	items = append(items, m)
	if err := s.setAll(EntityMovements, items); err != nil {
		return nil, err
	}
	return m, nil
}

// MovementsByProduct devolve as movimentações do produto, mais recentes primeiro.
func (s *Store) MovementsByProduct(productID int64) ([]Record, error) {
	items, err := s.GetAll(EntityMovements)
	if err != nil {
		return nil, err
	}
	var out []Record
	for _, it := range items {
		if recordInt64(it["produtoId"]) == productID {
			out = append(out, it)
		}
	}
	sortByTimestampDesc(out)
	return out, nil
}

// Theme devolve a preferência de tema persistida ("" se nunca gravada).
func (s *Store) Theme() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var v string
	err := s.db.QueryRow(`SELECT valor FROM kv WHERE chave = ?`, themeKey).Scan(&v)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return v, err
}

// SetTheme grava a preferência de tema.
func (s *Store) SetTheme(theme string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(
		`INSERT INTO kv (chave, valor) VALUES (?, ?) ON CONFLICT(chave) DO UPDATE SET valor = excluded.valor`,
		themeKey, theme,
	)
	return err
}

func sortByTimestampDesc(items []Record) {
	for i := 1; i < len(items); i++ {
		for j := i; j > 0 && timestampOf(items[j]) > timestampOf(items[j-1]); j-- {
			items[j], items[j-1] = items[j-1], items[j]
		}
	}
}

// timestampOf compara pelos literais RFC3339, que ordenam lexicograficamente.
func timestampOf(it Record) string {
	v, _ := it["dataHora"].(string)
	return v
}
