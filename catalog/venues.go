package catalog

import "saunascout/models"

func bookingCfg(c models.BookingProviderConfig) *models.BookingProviderConfig {
	return &c
}

// defaultVenues is the compiled-in registry. Waterfront venues carry the NOAA
// station whose curve gates cold-plunge access.
var defaultVenues = []models.Venue{
	{
		Slug:        "ballard-shipyard-sauna",
		Name:        "Shipyard Sauna Ballard",
		City:        "Seattle, WA",
		Lat:         47.6669,
		Lng:         -122.3764,
		Waterfront:  true,
		TideStation: "9447130",
		BookingURL:  "https://shipyardsauna.example.com/book",
		Booking: bookingCfg(models.BookingProviderConfig{
			Type:     models.ProviderAcuity,
			Timezone: "America/Los_Angeles",
			Acuity: &models.AcuityConfig{
				OwnerID:            "21893471",
				AppointmentTypeIDs: []int{45216001, 45216002},
			},
		}),
	},
	{
		Slug:        "alki-beach-banya",
		Name:        "Alki Beach Banya",
		City:        "Seattle, WA",
		Lat:         47.5812,
		Lng:         -122.4088,
		Waterfront:  true,
		TideStation: "9447130",
		Booking: bookingCfg(models.BookingProviderConfig{
			Type:     models.ProviderFareHarbor,
			Timezone: "America/Los_Angeles",
			FareHarbor: &models.FareHarborConfig{
				Shortname: "alkibanya",
				ItemIDs:   []int{301774, 301775},
			},
		}),
	},
	{
		Slug:       "fremont-cedar-rooms",
		Name:       "Fremont Cedar Rooms",
		City:       "Seattle, WA",
		Lat:        47.6497,
		Lng:        -122.3503,
		BookingURL: "https://fremontcedar.example.com",
		Booking: bookingCfg(models.BookingProviderConfig{
			Type:     models.ProviderMindbody,
			Timezone: "America/Los_Angeles",
			Mindbody: &models.MindbodyConfig{
				SiteID:   "5723811",
				ClassIDs: []int{1201, 1202},
			},
			Services: []models.ServiceEntry{
				{ID: "1201", Name: "Communal Sauna (75 min)", Price: 45, DurationMinutes: 75, Seats: 12},
				{ID: "1202", Name: "Private Cabin (60 min)", Price: 120, DurationMinutes: 60, Private: true, Seats: 4},
			},
		}),
	},
	{
		Slug:        "golden-gardens-lodge",
		Name:        "Golden Gardens Sauna Lodge",
		City:        "Seattle, WA",
		Lat:         47.6917,
		Lng:         -122.4028,
		Waterfront:  true,
		TideStation: "9447130",
		Booking: bookingCfg(models.BookingProviderConfig{
			Type:     models.ProviderCheckfront,
			Timezone: "America/Los_Angeles",
			Checkfront: &models.CheckfrontConfig{
				Host:    "goldengardenslodge.checkfront.com",
				ItemIDs: []int{12, 14},
			},
			Services: []models.ServiceEntry{
				{ID: "12", Name: "Sauna + Plunge (90 min)", Price: 55, DurationMinutes: 90, Seats: 8},
				{ID: "14", Name: "Full Lodge Buyout", Price: 380, DurationMinutes: 120, Private: true, Seats: 10},
			},
		}),
	},
	{
		Slug:        "orcas-island-float-sauna",
		Name:        "Orcas Island Float Sauna",
		City:        "Eastsound, WA",
		Lat:         48.6959,
		Lng:         -122.9047,
		Waterfront:  true,
		TideStation: "9449880",
		Booking: bookingCfg(models.BookingProviderConfig{
			Type:     models.ProviderPeek,
			Timezone: "America/Los_Angeles",
			Peek:     &models.PeekConfig{WidgetKey: "pk_orcasfloat_8c1d"},
		}),
	},
	{
		Slug:        "tacoma-tideflats-sauna",
		Name:        "Tideflats Sauna Collective",
		City:        "Tacoma, WA",
		Lat:         47.2707,
		Lng:         -122.4128,
		Waterfront:  true,
		TideStation: "9446484",
		Booking: bookingCfg(models.BookingProviderConfig{
			Type:       models.ProviderSimplyBook,
			Timezone:   "America/Los_Angeles",
			SimplyBook: &models.SimplyBookConfig{CompanyLogin: "tideflats", ServiceIDs: []int{3, 5}},
		}),
	},
	{
		Slug:       "capitol-hill-loyly",
		Name:       "Löyly Capitol Hill",
		City:       "Seattle, WA",
		Lat:        47.6205,
		Lng:        -122.3212,
		BookingURL: "https://loylych.example.com/reserve",
		Booking: bookingCfg(models.BookingProviderConfig{
			Type:     models.ProviderSquare,
			Timezone: "America/Los_Angeles",
			Square: &models.SquareConfig{
				LocationID:          "L9GXKZ2V1B3FQ",
				ServiceVariationIDs: []string{"SVARJ6KQWPM2A", "SVARTX4C8ND1E"},
			},
		}),
	},
	{
		Slug:        "hood-canal-sauna-scow",
		Name:        "Hood Canal Sauna Scow",
		City:        "Union, WA",
		Lat:         47.3582,
		Lng:         -123.0988,
		Waterfront:  true,
		TideStation: "9445478",
		Booking: bookingCfg(models.BookingProviderConfig{
			Type:     models.ProviderTrybe,
			Timezone: "America/Los_Angeles",
			Trybe: &models.TrybeConfig{
				SiteID:      "hc-scow",
				OfferingIDs: []string{"off_90min_communal", "off_private_hour"},
			},
		}),
	},
	{
		Slug:       "portland-steam-haus",
		Name:       "Steam Haus PDX",
		City:       "Portland, OR",
		Lat:        45.5231,
		Lng:        -122.6765,
		BookingURL: "https://steamhauspdx.example.com",
		// Booking link only; no live availability.
	},
	{
		Slug:       "greenlake-sweat-society",
		Name:       "Green Lake Sweat Society",
		City:       "Seattle, WA",
		Lat:        47.6806,
		Lng:        -122.3294,
		Booking: bookingCfg(models.BookingProviderConfig{
			Type:     models.ProviderWix,
			Timezone: "America/Los_Angeles",
			Wix: &models.WixConfig{
				SiteID:     "a2f7c4e0-51b8-4f33-9d06-7f1fb2a9c55d",
				ServiceIDs: []string{"svc-communal-60", "svc-guided-aufguss"},
			},
		}),
	},
	{
		Slug:       "vancouver-wharf-sauna",
		Name:       "Wharf Sauna & Plunge",
		City:       "Vancouver, WA",
		Lat:        45.6318,
		Lng:        -122.6716,
		Booking: bookingCfg(models.BookingProviderConfig{
			Type:       models.ProviderMarianaTek,
			Timezone:   "America/Los_Angeles",
			MarianaTek: &models.MarianaTekConfig{TenantSlug: "wharfsauna", LocationID: "48291"},
		}),
	},
	{
		Slug:       "bainbridge-harbor-sauna",
		Name:       "Bainbridge Harbor Sauna",
		City:       "Bainbridge Island, WA",
		Lat:        47.6262,
		Lng:        -122.5212,
		Waterfront: true,
		// Waterfront but no station mapped yet; availability still works,
		// just without the tide overlay.
		Booking: bookingCfg(models.BookingProviderConfig{
			Type:     models.ProviderGlofox,
			Timezone: "America/Los_Angeles",
			Glofox:   &models.GlofoxConfig{BranchID: "64a1fdc2e9b0a"},
		}),
	},
}
