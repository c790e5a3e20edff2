// Package block holds the canonical representation of a source-chain block and the
// transformation pipeline that turns the loosely typed sidecar JSON into the compact,
// deterministic payload stored on the archival chain:
//
//	raw JSON -> Normalize -> Decode -> Encode (borsh) -> Compress (brotli)
//
// Unpack performs the inverse of that pipeline for payloads read back from the
// archival chain.
package block

// Block is the canonical, strictly typed form of a source-chain block.
//
// The block height is intentionally absent: it is tracked by the caller that
// fetched the block and by the progress store that records it.
//
// Field order is part of the binary envelope and must not change.
type Block struct {
	Hash           string      `json:"hash" validate:"required"`
	ParentHash     string      `json:"parentHash" validate:"required"`
	StateRoot      string      `json:"stateRoot" validate:"required"`
	ExtrinsicsRoot string      `json:"extrinsicsRoot" validate:"required"`
	AuthorID       string      `json:"authorId"`
	Logs           []Log       `json:"logs" validate:"dive"`
	OnInitialize   Hook        `json:"onInitialize"`
	Extrinsics     []Extrinsic `json:"extrinsics" validate:"dive"`
	OnFinalize     Hook        `json:"onFinalize"`
	Finalized      bool        `json:"finalized"`
}

// Log is a digest log entry of the block header.
type Log struct {
	Type  string   `json:"type" validate:"required"`
	Index string   `json:"index"`
	Value []string `json:"value"`
}

// Hook groups the events emitted by the runtime before (onInitialize) or
// after (onFinalize) the block extrinsics are applied.
type Hook struct {
	Events []Event `json:"events" validate:"dive"`
}

// Method identifies a runtime call or event by pallet and method name.
type Method struct {
	Pallet string `json:"pallet" validate:"required"`
	Method string `json:"method" validate:"required"`
}

// Era is the mortality descriptor of an extrinsic.
type Era struct {
	ImmortalEra string `json:"immortalEra"`
}

// Extrinsic is a single call included in the block.
//
// Args and Info are kept as opaque JSON text because their shape depends on
// the called method.
type Extrinsic struct {
	Method    Method  `json:"method"`
	Signature *string `json:"signature"`
	Nonce     *string `json:"nonce"`
	Args      string  `json:"args"`
	Tip       *string `json:"tip"`
	Hash      string  `json:"hash" validate:"required"`
	Info      string  `json:"info"`
	Era       Era     `json:"era"`
	Events    []Event `json:"events" validate:"dive"`
	Success   bool    `json:"success"`
	PaysFee   bool    `json:"paysFee"`
}

// Event is a runtime event with its heterogeneous data values.
type Event struct {
	Method Method   `json:"method"`
	Data   DataList `json:"data"`
}
