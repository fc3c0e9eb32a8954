package model

// Region is the coarse user region used for AI provider routing.
type Region string

const (
	RegionCN    Region = "CN"
	RegionHK    Region = "HK"
	RegionMO    Region = "MO"
	RegionTW    Region = "TW"
	RegionUS    Region = "US"
	RegionCA    Region = "CA"
	RegionEU    Region = "EU"
	RegionOther Region = "OTHER"
)

// EventType tags one parsed financial event.
type EventType string

const (
	EventTransaction   EventType = "TRANSACTION"
	EventAssetUpdate   EventType = "ASSET_UPDATE"
	EventGoal          EventType = "GOAL"
	EventNullStatement EventType = "NULL_STATEMENT"
)

// TransactionType is the direction of a parsed transaction event.
type TransactionType string

const (
	TransactionExpense  TransactionType = "EXPENSE"
	TransactionIncome   TransactionType = "INCOME"
	TransactionTransfer TransactionType = "TRANSFER"
)

// Category is the normalized spending/income category enum the providers
// are asked to emit.
type Category string

const (
	CategoryFood          Category = "FOOD"
	CategoryTransport     Category = "TRANSPORT"
	CategoryShopping      Category = "SHOPPING"
	CategoryHousing       Category = "HOUSING"
	CategoryEntertainment Category = "ENTERTAINMENT"
	CategorySubscription  Category = "SUBSCRIPTION"
	CategoryFeesAndTaxes  Category = "FEES_AND_TAXES"
	CategoryLoanRepayment Category = "LOAN_REPAYMENT"
	CategoryIncomeSalary  Category = "INCOME_SALARY"
	CategoryOther         Category = "OTHER"
)

// AssetType classifies asset/liability update events.
type AssetType string

const (
	AssetBank           AssetType = "BANK"
	AssetCash           AssetType = "CASH"
	AssetSavings        AssetType = "SAVINGS"
	AssetInvestment     AssetType = "INVESTMENT"
	AssetDigitalWallet  AssetType = "DIGITAL_WALLET"
	AssetLoan           AssetType = "LOAN"
	AssetMortgage       AssetType = "MORTGAGE"
	AssetOtherAsset     AssetType = "OTHER_ASSET"
	AssetOtherLiability AssetType = "OTHER_LIABILITY"
)

// EventPayload is the kind-specific payload of a FinancialEvent. Providers
// emit one flat object per event; which fields are meaningful depends on the
// event type.
type EventPayload struct {
	// TRANSACTION fields
	TransactionType TransactionType `json:"transaction_type,omitempty"`
	Amount          float64         `json:"amount,omitempty"`
	Currency        string          `json:"currency,omitempty"`
	Category        Category        `json:"category,omitempty"`
	SourceAccount   string          `json:"source_account,omitempty"`
	TargetAccount   string          `json:"target_account,omitempty"`
	Note            string          `json:"note,omitempty"`
	Date            string          `json:"date,omitempty"`
	IsRecurring     bool            `json:"is_recurring,omitempty"`

	// ASSET_UPDATE fields
	AssetType       AssetType `json:"asset_type,omitempty"`
	Name            string    `json:"name,omitempty"`
	InstitutionName string    `json:"institution_name,omitempty"`

	// GOAL fields
	TargetAmount float64 `json:"target_amount,omitempty"`
	TargetDate   string  `json:"target_date,omitempty"`

	// NULL_STATEMENT fields
	ErrorMessage string `json:"error_message,omitempty"`
}

// FinancialEvent is one tagged event parsed from free text.
type FinancialEvent struct {
	EventType EventType    `json:"event_type"`
	Data      EventPayload `json:"data"`
}

// FinancialEventsResponse is the normalized output of a parse call.
type FinancialEventsResponse struct {
	Events []FinancialEvent `json:"events"`
}
