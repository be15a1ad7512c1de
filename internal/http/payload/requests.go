package payload

import (
	"net/url"
	"walletview/internal/core"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/jellydator/validation"
)

type BalancesRequest struct {
	Addresses      []string
	TokenAddresses []string
}

func NewBalancesRequest(values url.Values) BalancesRequest {
	return BalancesRequest{
		Addresses:      QuerySet(values, "addresses"),
		TokenAddresses: QuerySet(values, "tokenAddresses"),
	}
}

func (b BalancesRequest) Validate() error {
	return validation.ValidateStruct(&b,
		validation.Field(&b.Addresses,
			validation.Required,
			validation.Length(1, MaxAddresses),
			validation.Each(validation.Match(addressRegex))),
		validation.Field(&b.TokenAddresses,
			validation.Length(0, MaxAddresses),
			validation.Each(validation.Match(addressRegex))),
	)
}

func (b BalancesRequest) ToCore() (addresses, tokenAddresses []common.Address) {
	return toAddresses(b.Addresses), toAddresses(b.TokenAddresses)
}

type TransfersRequest struct {
	Addresses      []string
	TokenAddresses []string
	TransferType   string
	PageNumber     int
	PageSize       int
}

// NewTransfersRequest reads the query, applying the default page window.
func NewTransfersRequest(values url.Values) (TransfersRequest, error) {
	pageNumber, err := QueryInt(values, "pageNumber", 0)
	if err != nil {
		return TransfersRequest{}, err
	}
	pageSize, err := QueryInt(values, "pageSize", DefaultPageSize)
	if err != nil {
		return TransfersRequest{}, err
	}

	return TransfersRequest{
		Addresses:      QuerySet(values, "addresses"),
		TokenAddresses: QuerySet(values, "tokenAddresses"),
		TransferType:   values.Get("transferType"),
		PageNumber:     pageNumber,
		PageSize:       pageSize,
	}, nil
}

func (t TransfersRequest) Validate() error {
	types := make([]any, 0, len(core.TransferTypes))
	for _, tt := range core.TransferTypes {
		types = append(types, string(tt))
	}

	return validation.ValidateStruct(&t,
		validation.Field(&t.Addresses,
			validation.Required,
			validation.Length(1, MaxAddresses),
			validation.Each(validation.Match(addressRegex))),
		validation.Field(&t.TokenAddresses,
			validation.Length(0, MaxAddresses),
			validation.Each(validation.Match(addressRegex))),
		validation.Field(&t.TransferType, validation.In(types...)),
		validation.Field(&t.PageNumber, validation.Min(0)),
		validation.Field(&t.PageSize, validation.Required, validation.Min(1), validation.Max(MaxPageSize)),
	)
}

func (t TransfersRequest) ToCore() core.TransferQuery {
	q := core.TransferQuery{
		Addresses:      toAddresses(t.Addresses),
		TokenAddresses: toAddresses(t.TokenAddresses),
		PageNumber:     t.PageNumber,
		PageSize:       t.PageSize,
	}
	if t.TransferType != "" {
		transferType := core.TransferType(t.TransferType)
		q.TransferType = &transferType
	}
	return q
}

type AddressRequest struct {
	Address string
}

func (a AddressRequest) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Address, validation.Required, validation.Match(addressRegex)),
	)
}

func (a AddressRequest) ToCore() common.Address {
	return common.HexToAddress(a.Address)
}

type SubmitTxRequest struct {
	HexData string `json:"hexData"`
}

func (s SubmitTxRequest) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.HexData, validation.Required, validation.Match(hexDataRegex)),
	)
}

func (s SubmitTxRequest) RawTx() ([]byte, error) {
	return hexutil.Decode(s.HexData)
}
