package shipengine

// ============================================================================
// Typed projections of ShipEngine v1 response shapes
// ============================================================================

// Params is a free-form JSON mapping, used both for request bodies/query
// parameters and for raw structured replies.
type Params = map[string]any

// Shipment represents a ShipEngine shipment record.
type Shipment struct {
	ShipmentID         string    `json:"shipment_id"`
	CarrierID          string    `json:"carrier_id,omitempty"`
	ServiceCode        string    `json:"service_code,omitempty"`
	ExternalShipmentID string    `json:"external_shipment_id,omitempty"`
	ExternalOrderID    string    `json:"external_order_id,omitempty"`
	Status             string    `json:"status,omitempty"`
	ShipDate           string    `json:"ship_date,omitempty"` // YYYY-MM-DD
	CreatedAt          string    `json:"created_at,omitempty"`
	ModifiedAt         string    `json:"modified_at,omitempty"`
	ShipTo             *Address  `json:"ship_to,omitempty"`
	ShipFrom           *Address  `json:"ship_from,omitempty"`
	ReturnTo           *Address  `json:"return_to,omitempty"`
	WarehouseID        string    `json:"warehouse_id,omitempty"`
	Confirmation       string    `json:"confirmation,omitempty"`
	InsuranceProvider  string    `json:"insurance_provider,omitempty"`
	AdvancedOptions    Params    `json:"advanced_options,omitempty"`
	TotalWeight        *Weight   `json:"total_weight,omitempty"`
	Packages           []Package `json:"packages,omitempty"`
	Tags               []Tag     `json:"tags,omitempty"`
	Items              []Params  `json:"items,omitempty"`
	Errors             []string  `json:"errors,omitempty"`
}

// Address represents a ship-to / ship-from party.
type Address struct {
	Name                        string `json:"name,omitempty"`
	Phone                       string `json:"phone,omitempty"`
	Email                       string `json:"email,omitempty"`
	CompanyName                 string `json:"company_name,omitempty"`
	AddressLine1                string `json:"address_line1,omitempty"`
	AddressLine2                string `json:"address_line2,omitempty"`
	AddressLine3                string `json:"address_line3,omitempty"`
	CityLocality                string `json:"city_locality,omitempty"`
	StateProvince               string `json:"state_province,omitempty"`
	PostalCode                  string `json:"postal_code,omitempty"`
	CountryCode                 string `json:"country_code,omitempty"` // ISO 3166-1 alpha-2
	AddressResidentialIndicator string `json:"address_residential_indicator,omitempty"`
}

// Weight is a weight value plus unit.
type Weight struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"` // "pound", "ounce", "gram", "kilogram"
}

// Dimensions are package dimensions plus unit.
type Dimensions struct {
	Unit   string  `json:"unit"` // "inch", "centimeter"
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Package is one parcel of a shipment.
type Package struct {
	PackageID         string       `json:"package_id,omitempty"`
	PackageCode       string       `json:"package_code,omitempty"`
	ExternalPackageID string       `json:"external_package_id,omitempty"`
	Weight            *Weight      `json:"weight,omitempty"`
	Dimensions        *Dimensions  `json:"dimensions,omitempty"`
	InsuredValue      *MoneyAmount `json:"insured_value,omitempty"`
	TrackingNumber    string       `json:"tracking_number,omitempty"`
	LabelMessages     Params       `json:"label_messages,omitempty"`
}

// Tag is a shipment tag.
type Tag struct {
	Name string `json:"name"`
}

// MoneyAmount is a monetary amount with currency.
type MoneyAmount struct {
	Currency string  `json:"currency"`
	Amount   float64 `json:"amount"`
}

// Label represents a purchased shipping label.
type Label struct {
	LabelID         string         `json:"label_id"`
	Status          string         `json:"status,omitempty"`
	ShipmentID      string         `json:"shipment_id,omitempty"`
	ShipDate        string         `json:"ship_date,omitempty"`
	CreatedAt       string         `json:"created_at,omitempty"`
	ShipmentCost    *MoneyAmount   `json:"shipment_cost,omitempty"`
	InsuranceCost   *MoneyAmount   `json:"insurance_cost,omitempty"`
	TrackingNumber  string         `json:"tracking_number,omitempty"`
	IsReturnLabel   bool           `json:"is_return_label,omitempty"`
	IsInternational bool           `json:"is_international,omitempty"`
	CarrierID       string         `json:"carrier_id,omitempty"`
	CarrierCode     string         `json:"carrier_code,omitempty"`
	ServiceCode     string         `json:"service_code,omitempty"`
	PackageCode     string         `json:"package_code,omitempty"`
	Voided          bool           `json:"voided,omitempty"`
	VoidedAt        string         `json:"voided_at,omitempty"`
	LabelFormat     string         `json:"label_format,omitempty"` // "pdf", "png", "zpl"
	LabelLayout     string         `json:"label_layout,omitempty"`
	Trackable       bool           `json:"trackable,omitempty"`
	TrackingStatus  string         `json:"tracking_status,omitempty"`
	LabelDownload   *LabelDownload `json:"label_download,omitempty"`
}

// LabelDownload holds the hosted label document locations.
type LabelDownload struct {
	Href string `json:"href,omitempty"`
	PDF  string `json:"pdf,omitempty"`
	PNG  string `json:"png,omitempty"`
	ZPL  string `json:"zpl,omitempty"`
}

// Rate represents one shipping rate quote.
type Rate struct {
	RateID                string       `json:"rate_id"`
	RateType              string       `json:"rate_type,omitempty"` // "check", "shipment"
	CarrierID             string       `json:"carrier_id,omitempty"`
	CarrierCode           string       `json:"carrier_code,omitempty"`
	CarrierFriendlyName   string       `json:"carrier_friendly_name,omitempty"`
	ServiceCode           string       `json:"service_code,omitempty"`
	ServiceType           string       `json:"service_type,omitempty"`
	ShippingAmount        *MoneyAmount `json:"shipping_amount,omitempty"`
	InsuranceAmount       *MoneyAmount `json:"insurance_amount,omitempty"`
	ConfirmationAmount    *MoneyAmount `json:"confirmation_amount,omitempty"`
	OtherAmount           *MoneyAmount `json:"other_amount,omitempty"`
	Zone                  int          `json:"zone,omitempty"`
	PackageType           string       `json:"package_type,omitempty"`
	DeliveryDays          int          `json:"delivery_days,omitempty"`
	GuaranteedService     bool         `json:"guaranteed_service,omitempty"`
	EstimatedDeliveryDate string       `json:"estimated_delivery_date,omitempty"`
	ShipDate              string       `json:"ship_date,omitempty"`
	NegotiatedRate        bool         `json:"negotiated_rate,omitempty"`
	Trackable             bool         `json:"trackable,omitempty"`
	ValidationStatus      string       `json:"validation_status,omitempty"`
	WarningMessages       []string     `json:"warning_messages,omitempty"`
	ErrorMessages         []string     `json:"error_messages,omitempty"`
}

// CarrierAccount represents a connected carrier account.
type CarrierAccount struct {
	CarrierID             string   `json:"carrier_id"`
	CarrierCode           string   `json:"carrier_code,omitempty"`
	AccountNumber         string   `json:"account_number,omitempty"`
	Nickname              string   `json:"nickname,omitempty"`
	FriendlyName          string   `json:"friendly_name,omitempty"`
	Primary               bool     `json:"primary,omitempty"`
	RequiresFundedAmount  bool     `json:"requires_funded_amount,omitempty"`
	Balance               float64  `json:"balance,omitempty"`
	SupportsLabelMessages bool     `json:"supports_label_messages,omitempty"`
	Services              []Params `json:"services,omitempty"`
	Packages              []Params `json:"packages,omitempty"`
	Options               []Params `json:"options,omitempty"`
}

// TrackingInfo represents the tracking state of a package.
type TrackingInfo struct {
	TrackingNumber           string          `json:"tracking_number"`
	StatusCode               string          `json:"status_code,omitempty"`
	StatusDescription        string          `json:"status_description,omitempty"`
	CarrierStatusCode        string          `json:"carrier_status_code,omitempty"`
	CarrierStatusDescription string          `json:"carrier_status_description,omitempty"`
	ShipDate                 string          `json:"ship_date,omitempty"`
	EstimatedDeliveryDate    string          `json:"estimated_delivery_date,omitempty"`
	ActualDeliveryDate       string          `json:"actual_delivery_date,omitempty"`
	ExceptionDescription     string          `json:"exception_description,omitempty"`
	Events                   []TrackingEvent `json:"events,omitempty"`
}

// TrackingEvent is a single scan event in a package's history.
type TrackingEvent struct {
	OccurredAt        string `json:"occurred_at,omitempty"`
	CarrierOccurredAt string `json:"carrier_occurred_at,omitempty"`
	Description       string `json:"description,omitempty"`
	CityLocality      string `json:"city_locality,omitempty"`
	StateProvince     string `json:"state_province,omitempty"`
	PostalCode        string `json:"postal_code,omitempty"`
	CountryCode       string `json:"country_code,omitempty"`
	CompanyName       string `json:"company_name,omitempty"`
	Signer            string `json:"signer,omitempty"`
	EventCode         string `json:"event_code,omitempty"`
}
