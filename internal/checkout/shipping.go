package checkout

import "github.com/hwcrafts/pcb-preorder/internal/models"

// shippingRates maps every delivery method to its rate. The table is
// total over the delivery enumeration; the validator rejects anything
// outside it before the builder runs.
var shippingRates = map[models.DeliveryMethod]ShippingRate{
	models.DeliveryShipping: {
		DisplayName:      "Shipping",
		Amount:           420,
		AllowedCountries: []string{"DE"},
	},
	models.DeliveryPickupSiteA: {
		DisplayName: "Pickup (site A)",
		Amount:      0,
	},
	models.DeliveryPickupSiteB: {
		DisplayName: "Pickup (site B)",
		Amount:      0,
	},
	models.DeliveryPickupSiteC: {
		DisplayName: "Pickup (site C)",
		Amount:      0,
	},
}
