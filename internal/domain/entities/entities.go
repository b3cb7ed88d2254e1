// Package entities contains core business entities.
// Pure domain objects with no external dependencies.
package entities

import "time"

// Role is the caller-declared user role. It arrives from the client
// unverified; nothing in the domain authenticates it.
type Role string

const (
	RoleDealer   Role = "dealer"
	RoleSalesRep Role = "sales_rep"
	RoleAdmin    Role = "admin"
)

// Category classifies a query into one of the assistant's answer domains.
type Category string

const (
	CategoryInventory Category = "inventory"
	CategoryClaims    Category = "claims"
	CategorySales     Category = "sales"
	CategoryGeneral   Category = "general"
)

// Dealer is a registered dealership. Generated once per snapshot and never
// mutated afterwards.
type Dealer struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Region           string    `json:"region"`
	Zone             string    `json:"zone"`
	City             string    `json:"city"`
	ContactPerson    string    `json:"contactPerson"`
	Phone            string    `json:"phone"`
	Email            string    `json:"email"`
	RegistrationDate time.Time `json:"registrationDate"`
}

// InventoryItem is a single SKU position in a warehouse.
type InventoryItem struct {
	ID          string    `json:"id"`
	SKU         string    `json:"sku"`
	ProductName string    `json:"productName"`
	Warehouse   string    `json:"warehouse"`
	Zone        string    `json:"zone"`
	Quantity    int       `json:"quantity"`
	UnitPrice   int64     `json:"unitPrice"`
	LastUpdated time.Time `json:"lastUpdated"`
	Category    string    `json:"category"`
}

// ClaimStatus is the lifecycle state of a dealer claim.
type ClaimStatus string

const (
	ClaimPending    ClaimStatus = "Pending"
	ClaimApproved   ClaimStatus = "Approved"
	ClaimRejected   ClaimStatus = "Rejected"
	ClaimProcessing ClaimStatus = "Processing"
)

// Terminal reports whether the status ends the claim lifecycle.
func (s ClaimStatus) Terminal() bool {
	return s == ClaimApproved || s == ClaimRejected
}

// Claim is a dealer-submitted reimbursement or dispute record. DealerID is a
// weak reference into the same generated snapshot. ResolvedDate is non-nil
// iff the status was drawn terminal at generation time.
type Claim struct {
	ID            string      `json:"id"`
	ClaimNumber   string      `json:"claimNumber"`
	DealerID      string      `json:"dealerId"`
	DealerName    string      `json:"dealerName"`
	Amount        int64       `json:"amount"`
	Status        ClaimStatus `json:"status"`
	SubmittedDate time.Time   `json:"submittedDate"`
	ResolvedDate  *time.Time  `json:"resolvedDate,omitempty"`
	Reason        string      `json:"reason"`
	Description   string      `json:"description"`
}

// SalesTransaction is one sale of an inventory product by a dealer. SKU,
// product name and unit price are copied by value from the referenced
// inventory item at generation time; region and zone come from the owning
// dealer.
type SalesTransaction struct {
	ID            string    `json:"id"`
	TransactionID string    `json:"transactionId"`
	DealerID      string    `json:"dealerId"`
	DealerName    string    `json:"dealerName"`
	SKU           string    `json:"sku"`
	ProductName   string    `json:"productName"`
	Quantity      int       `json:"quantity"`
	UnitPrice     int64     `json:"unitPrice"`
	TotalAmount   int64     `json:"totalAmount"`
	SaleDate      time.Time `json:"saleDate"`
	Region        string    `json:"region"`
	Zone          string    `json:"zone"`
}

// Dataset is one immutable generated snapshot of the demo data.
type Dataset struct {
	Dealers   []Dealer
	Inventory []InventoryItem
	Claims    []Claim
	Sales     []SalesTransaction
}
