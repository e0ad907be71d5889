package coinex

import "encoding/json"

// apiResponse is the envelope every CoinEx v2 endpoint returns.
// Code 0 means success.
type apiResponse struct {
	Code    int             `json:"code"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// Market is one entry of /v2/spot/market or /v2/futures/market. Futures
// entries additionally carry the contract type; everything else the
// screener needs is shared.
type Market struct {
	Market       string `json:"market"`
	BaseCcy      string `json:"base_ccy"`
	QuoteCcy     string `json:"quote_ccy"`
	ContractType string `json:"contract_type,omitempty"`
}

// Ticker is one entry of /v2/spot/ticker or /v2/futures/ticker.
// All numeric fields arrive as strings.
type Ticker struct {
	Market string `json:"market"`
	Last   string `json:"last"`
	Open   string `json:"open"`
	Close  string `json:"close"`
	High   string `json:"high"`
	Low    string `json:"low"`
	Volume string `json:"volume"`
	Value  string `json:"value"`
}

// Kline is one entry of /v2/spot/kline or /v2/futures/kline.
type Kline struct {
	Market    string `json:"market"`
	CreatedAt int64  `json:"created_at"`
	Open      string `json:"open"`
	Close     string `json:"close"`
	High      string `json:"high"`
	Low       string `json:"low"`
	Volume    string `json:"volume"`
	Value     string `json:"value"`
}
