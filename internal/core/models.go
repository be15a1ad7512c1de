package core

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// NativeToken identifies the chain's base asset wherever a token address is
// expected.
var NativeToken = common.Address{}

type TransferType string

const (
	TransferTypeTransfer    TransferType = "TRANSFER"
	TransferTypeBlockFees   TransferType = "BLOCK_FEES"
	TransferTypeBlockReward TransferType = "BLOCK_REWARD"
	TransferTypeMint        TransferType = "MINT"
	TransferTypeBurn        TransferType = "BURN"
)

var TransferTypes = []TransferType{
	TransferTypeTransfer,
	TransferTypeBlockFees,
	TransferTypeBlockReward,
	TransferTypeMint,
	TransferTypeBurn,
}

type TransferStatus string

const (
	StatusPending   TransferStatus = "PENDING"
	StatusConfirmed TransferStatus = "CONFIRMED"
)

type AccountBalance struct {
	Address              common.Address
	TokenAddress         common.Address
	Amount               *big.Int
	UpdatedAtBlockHeight uint64
	UpdatedAtTimestamp   time.Time
}

type PendingTransfer struct {
	Hash         common.Hash
	Type         TransferType
	From         *common.Address
	To           *common.Address
	TokenAddress common.Address
	Amount       *big.Int
	Fee          *big.Int
	Nonce        uint64
	Message      string
	AddedAt      time.Time
}

type ConfirmedTransfer struct {
	TxHash       common.Hash
	Type         TransferType
	From         *common.Address
	To           *common.Address
	TokenAddress common.Address
	Amount       *big.Int
	Fee          *big.Int
	Nonce        uint64
	Message      string
	Timestamp    time.Time
	BlockHeight  uint64
	BlockHash    common.Hash
}

// TransferFields are the fields every transfer record carries, whatever
// its status. Timestamp is the mempool arrival time for pending records and
// the block time for confirmed ones.
type TransferFields struct {
	Hash         common.Hash
	Type         TransferType
	From         *common.Address
	To           *common.Address
	TokenAddress common.Address
	Amount       *big.Int
	Fee          *big.Int
	Nonce        uint64
	Message      string
	Timestamp    time.Time
}

// TransferRecord is either a PendingRecord or a ConfirmedRecord.
type TransferRecord interface {
	Status() TransferStatus
	Fields() TransferFields
	transferRecord()
}

type PendingRecord struct {
	TransferFields
}

func (PendingRecord) Status() TransferStatus   { return StatusPending }
func (r PendingRecord) Fields() TransferFields { return r.TransferFields }
func (PendingRecord) transferRecord()          {}

type ConfirmedRecord struct {
	TransferFields
	BlockHeight   uint64
	BlockHash     common.Hash
	Confirmations uint64
}

func (ConfirmedRecord) Status() TransferStatus   { return StatusConfirmed }
func (r ConfirmedRecord) Fields() TransferFields { return r.TransferFields }
func (ConfirmedRecord) transferRecord()          {}

// TransferQuery selects one page of the combined pending and confirmed
// history. A nil TransferType matches every type; empty TokenAddresses
// matches every token.
type TransferQuery struct {
	Addresses      []common.Address
	TokenAddresses []common.Address
	TransferType   *TransferType
	PageNumber     int
	PageSize       int
}

type TransferPage struct {
	Items          []TransferRecord
	PageNumber     int
	PageSize       int
	TotalElements  int64
	TotalPages     int64
	PendingCount   int64
	ConfirmedCount int64
	IsFirst        bool
	IsLast         bool
}

type Token struct {
	Address          common.Address
	Name             string
	SmallestUnitName string
	NumberOfDecimals int
	WebsiteURL       string
	LogoURL          string
	MaxSupply        *big.Int
	TotalSupply      *big.Int
	UserBurnable     bool
}

type FeeLevel struct {
	BaseFee           *big.Int
	FeePerByte        *big.Int
	TotalForAverageTx *big.Int
}

type RecommendedFees struct {
	Slow        FeeLevel
	Standard    FeeLevel
	Fast        FeeLevel
	MempoolSize int
}

type SubmitStatus string

const (
	SubmitSuccess SubmitStatus = "SUCCESS"
	SubmitQueued  SubmitStatus = "QUEUED"
)

type SubmitResult struct {
	Status  SubmitStatus
	TxHash  *common.Hash
	Message string
}

// Accepted reports whether the mempool took the transaction, either as
// executable or as a future transaction.
func (r SubmitResult) Accepted() bool {
	return r.Status == SubmitSuccess || r.Status == SubmitQueued
}
