package localcache

import "encoding/json"

// RecordID extrai o id inteiro de um registro (0 se ausente).
func RecordID(it Record) int64 {
	return recordInt64(it["id"])
}

// recordInt64 normaliza os números que o encoding/json devolve como float64.
func recordInt64(v any) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case float64:
		return int64(n)
	case json.Number:
		i, _ := n.Int64()
		return i
	default:
		return 0
	}
}

// Encode converte um struct tipado em Record via tags JSON.
func Encode(v any) (Record, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var rec Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Decode preenche um struct tipado a partir de um Record.
func Decode(rec Record, out any) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

// DecodeAll preenche um slice tipado a partir de uma coleção inteira.
func DecodeAll(items []Record, out any) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

// EncodeAll converte um slice tipado em registros opacos.
func EncodeAll(v any) ([]Record, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var items []Record
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	return items, nil
}
