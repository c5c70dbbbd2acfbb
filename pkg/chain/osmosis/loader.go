package osmosis

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// LoadFile reads transactions from a JSON object, a JSON array or JSONL file.
func LoadFile(path string) ([]*Transaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	txs, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return txs, nil
}

func Decode(r io.Reader) ([]*Transaction, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}

	if trimmed[0] == '[' {
		var payloads []TxPayload
		if err := json.Unmarshal(trimmed, &payloads); err != nil {
			return nil, fmt.Errorf("decode transaction array: %w", err)
		}
		return wrap(payloads), nil
	}

	// one object per line, or a single (possibly pretty printed) object
	var payload TxPayload
	if err := json.Unmarshal(trimmed, &payload); err == nil {
		return wrap([]TxPayload{payload}), nil
	}

	var payloads []TxPayload
	scanner := bufio.NewScanner(bytes.NewReader(trimmed))
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		raw := bytes.TrimSpace(scanner.Bytes())
		if len(raw) == 0 {
			continue
		}
		var p TxPayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("decode line %d: %w", line, err)
		}
		payloads = append(payloads, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return wrap(payloads), nil
}

func wrap(payloads []TxPayload) []*Transaction {
	txs := make([]*Transaction, 0, len(payloads))
	for _, p := range payloads {
		txs = append(txs, NewTransaction(p))
	}
	return txs
}
