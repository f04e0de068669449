package models

// ProviderType identifies which scheduling platform a venue books through.
type ProviderType string

const (
	ProviderAcuity      ProviderType = "acuity"
	ProviderWix         ProviderType = "wix"
	ProviderMindbody    ProviderType = "mindbody"
	ProviderVagaro      ProviderType = "vagaro"
	ProviderZenoti      ProviderType = "zenoti"
	ProviderFareHarbor  ProviderType = "fareharbor"
	ProviderPeriode     ProviderType = "periode"
	ProviderMarianaTek  ProviderType = "marianatek"
	ProviderGlofox      ProviderType = "glofox"
	ProviderBoulevard   ProviderType = "boulevard"
	ProviderCheckfront  ProviderType = "checkfront"
	ProviderPeek        ProviderType = "peek"
	ProviderSquare      ProviderType = "square"
	ProviderBooker      ProviderType = "booker"
	ProviderSimplyBook  ProviderType = "simplybook"
	ProviderClinicSense ProviderType = "clinicsense"
	ProviderMangomint   ProviderType = "mangomint"
	ProviderRoller      ProviderType = "roller"
	ProviderZettlor     ProviderType = "zettlor"
	ProviderTrybe       ProviderType = "trybe"
	ProviderSoJo        ProviderType = "sojo"
)

// ServiceEntry enumerates one bookable offering for vendors whose APIs
// cannot list offerings themselves.
type ServiceEntry struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
	Private         bool    `json:"private,omitempty"`
	Seats           int     `json:"seats,omitempty"`
}

// BookingProviderConfig is a tagged union: Type selects which vendor block is
// active, and exactly one of the vendor pointers is non-nil. Timezone is the
// venue's IANA zone used by adapters to produce absolute slot instants.
type BookingProviderConfig struct {
	Type     ProviderType   `json:"type"`
	Timezone string         `json:"timezone"`
	Services []ServiceEntry `json:"services,omitempty"`

	Acuity      *AcuityConfig      `json:"acuity,omitempty"`
	Wix         *WixConfig         `json:"wix,omitempty"`
	Mindbody    *MindbodyConfig    `json:"mindbody,omitempty"`
	Vagaro      *VagaroConfig      `json:"vagaro,omitempty"`
	Zenoti      *ZenotiConfig      `json:"zenoti,omitempty"`
	FareHarbor  *FareHarborConfig  `json:"fareharbor,omitempty"`
	Periode     *PeriodeConfig     `json:"periode,omitempty"`
	MarianaTek  *MarianaTekConfig  `json:"marianatek,omitempty"`
	Glofox      *GlofoxConfig      `json:"glofox,omitempty"`
	Boulevard   *BoulevardConfig   `json:"boulevard,omitempty"`
	Checkfront  *CheckfrontConfig  `json:"checkfront,omitempty"`
	Peek        *PeekConfig        `json:"peek,omitempty"`
	Square      *SquareConfig      `json:"square,omitempty"`
	Booker      *BookerConfig      `json:"booker,omitempty"`
	SimplyBook  *SimplyBookConfig  `json:"simplybook,omitempty"`
	ClinicSense *ClinicSenseConfig `json:"clinicsense,omitempty"`
	Mangomint   *MangomintConfig   `json:"mangomint,omitempty"`
	Roller      *RollerConfig      `json:"roller,omitempty"`
	Zettlor     *ZettlorConfig     `json:"zettlor,omitempty"`
	Trybe       *TrybeConfig       `json:"trybe,omitempty"`
	SoJo        *SoJoConfig        `json:"sojo,omitempty"`
}

type AcuityConfig struct {
	OwnerID            string `json:"ownerId"`
	AppointmentTypeIDs []int  `json:"appointmentTypeIds"`
}

type WixConfig struct {
	SiteID     string   `json:"siteId"`
	ServiceIDs []string `json:"serviceIds"`
}

type MindbodyConfig struct {
	SiteID   string `json:"siteId"`
	ClassIDs []int  `json:"classIds,omitempty"`
}

type VagaroConfig struct {
	BusinessID string `json:"businessId"`
}

type ZenotiConfig struct {
	APIHost    string   `json:"apiHost"`
	CenterID   string   `json:"centerId"`
	ServiceIDs []string `json:"serviceIds"`
}

type FareHarborConfig struct {
	Shortname string `json:"shortname"`
	ItemIDs   []int  `json:"itemIds"`
}

type PeriodeConfig struct {
	ProfileSlug string `json:"profileSlug"`
}

type MarianaTekConfig struct {
	TenantSlug string `json:"tenantSlug"`
	LocationID string `json:"locationId"`
}

type GlofoxConfig struct {
	BranchID string `json:"branchId"`
}

type BoulevardConfig struct {
	BusinessID string   `json:"businessId"`
	LocationID string   `json:"locationId"`
	ServiceIDs []string `json:"serviceIds"`
}

type CheckfrontConfig struct {
	Host    string `json:"host"` // e.g. "lakesidesauna.checkfront.com"
	ItemIDs []int  `json:"itemIds"`
}

type PeekConfig struct {
	WidgetKey string `json:"widgetKey"`
}

type SquareConfig struct {
	LocationID          string   `json:"locationId"`
	ServiceVariationIDs []string `json:"serviceVariationIds"`
}

type BookerConfig struct {
	LocationID string `json:"locationId"`
}

type SimplyBookConfig struct {
	CompanyLogin string `json:"companyLogin"`
	ServiceIDs   []int  `json:"serviceIds"`
}

type ClinicSenseConfig struct {
	ClinicSlug string `json:"clinicSlug"`
}

type MangomintConfig struct {
	CompanyID string `json:"companyId"`
}

type RollerConfig struct {
	VenueID    string `json:"venueId"`
	ProductIDs []int  `json:"productIds"`
}

type ZettlorConfig struct {
	SpaceSlug string `json:"spaceSlug"`
}

type TrybeConfig struct {
	SiteID      string   `json:"siteId"`
	OfferingIDs []string `json:"offeringIds"`
}

type SoJoConfig struct {
	LocationSlug string `json:"locationSlug"`
}
