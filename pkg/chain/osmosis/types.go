package osmosis

import "encoding/json"

// TxPayload is the explorer response for a single transaction: a block
// header plus the tx_response body.
type TxPayload struct {
	Header Header `json:"header"`
	Data   TxData `json:"data"`
}

type Header struct {
	ID        int64  `json:"id,omitempty"`
	ChainID   string `json:"chain_id"`
	BlockID   int64  `json:"block_id,omitempty"`
	Timestamp string `json:"timestamp"`
}

type TxData struct {
	Height    string `json:"height"`
	TxHash    string `json:"txhash"`
	Code      uint32 `json:"code"`
	Codespace string `json:"codespace,omitempty"`
	RawLog    string `json:"raw_log,omitempty"`
	Logs      []Log  `json:"logs"`
	GasWanted string `json:"gas_wanted,omitempty"`
	GasUsed   string `json:"gas_used,omitempty"`
	Tx        Tx     `json:"tx"`
	Timestamp string `json:"timestamp"`
}

type Log struct {
	MsgIndex int     `json:"msg_index"`
	Log      string  `json:"log"`
	Events   []Event `json:"events"`
}

type Event struct {
	Type       string           `json:"type"`
	Attributes []EventAttribute `json:"attributes"`
}

type EventAttribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type Tx struct {
	Type     string   `json:"@type,omitempty"`
	Body     TxBody   `json:"body"`
	AuthInfo AuthInfo `json:"auth_info"`
}

type TxBody struct {
	Messages []Message `json:"messages"`
	Memo     string    `json:"memo,omitempty"`
}

// Message keeps the raw JSON so that each message family can be decoded
// into its own shape.
type Message struct {
	Type string
	Raw  json.RawMessage
}

func (m *Message) UnmarshalJSON(b []byte) error {
	var head struct {
		Type string `json:"@type"`
	}
	if err := json.Unmarshal(b, &head); err != nil {
		return err
	}
	m.Type = head.Type
	m.Raw = append(m.Raw[:0], b...)
	return nil
}

func (m Message) MarshalJSON() ([]byte, error) {
	if len(m.Raw) == 0 {
		return json.Marshal(map[string]string{"@type": m.Type})
	}
	return m.Raw, nil
}

type AuthInfo struct {
	Fee Fee `json:"fee"`
}

type Fee struct {
	Amount   []Coin `json:"amount"`
	GasLimit string `json:"gas_limit,omitempty"`
	Payer    string `json:"payer,omitempty"`
	Granter  string `json:"granter,omitempty"`
}

type Coin struct {
	Denom  string `json:"denom"`
	Amount string `json:"amount"`
}

// TransferMessage is /ibc.applications.transfer.v1.MsgTransfer.
type TransferMessage struct {
	SourcePort    string `json:"source_port"`
	SourceChannel string `json:"source_channel"`
	Token         Coin   `json:"token"`
	Sender        string `json:"sender"`
	Receiver      string `json:"receiver"`
}
