package entity

import "strings"

// ItemType identifies the kind of bookable entity a cart item or order refers to.
type ItemType string

const (
	ItemTypeHotel   ItemType = "HOTEL"
	ItemTypeRoute   ItemType = "ROUTE"
	ItemTypeService ItemType = "SERVICE"
	ItemTypeVehicle ItemType = "VEHICLE"

	// OrderTypeMultiple marks an order assembled from items of different kinds.
	OrderTypeMultiple ItemType = "MULTIPLE"
)

// IsBookable reports whether t can appear on a cart item.
func (t ItemType) IsBookable() bool {
	switch t {
	case ItemTypeHotel, ItemTypeRoute, ItemTypeService, ItemTypeVehicle:
		return true
	default:
		return false
	}
}

// IsValidOrderType reports whether t can appear on an order.
func (t ItemType) IsValidOrderType() bool {
	return t.IsBookable() || t == OrderTypeMultiple
}

// RequiresAvailabilityCheck reports whether adding t to a cart must pass the availability checker.
func (t ItemType) RequiresAvailabilityCheck() bool {
	return t == ItemTypeHotel || t == ItemTypeVehicle
}

// ParseItemType parses a case-insensitive item type.
func ParseItemType(s string) (ItemType, bool) {
	t := ItemType(strings.ToUpper(strings.TrimSpace(s)))

	return t, t.IsValidOrderType()
}
