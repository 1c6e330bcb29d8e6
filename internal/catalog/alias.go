package catalog

// alias.go defines the field-alias tables for JSON sources.
//
// Supplier feeds and exports from older systems use different key names for
// the same semantic field. Each canonical field carries an ordered list of
// candidate keys; resolution tries them in order and the first present key
// wins. The tables are plain data so a new alias is a one-line addition, not
// a new conditional branch.

// Alias tables, in priority order. First present key wins.
var (
	nameAliases             = []string{"name", "product_name", "title"}
	descriptionAliases      = []string{"description"}
	categoryAliases         = []string{"category"}
	supplierAliases         = []string{"supplier", "vendor"}
	priceAliases            = []string{"price"}
	unitAliases             = []string{"unit", "pack_size"}
	availableAliases        = []string{"available"}
	imageURLAliases         = []string{"image_url", "imageUrl", "image"}
	technicalDetailsAliases = []string{"technical_details", "technicalDetails"}
	applicationsAliases     = []string{"applications"}
	badgesAliases           = []string{"badges"}
	itemNumberAliases       = []string{"item_number"}
	urlAliases              = []string{"url"}
	createdAtAliases        = []string{"createdAt", "created_at"}
	updatedAtAliases        = []string{"updatedAt", "updated_at"}
)

// firstPresent returns the value of the first key present in item.
// A key set to nil counts as present; absence means the key does not exist.
func firstPresent(item map[string]any, keys []string) (any, bool) {
	for _, key := range keys {
		if v, ok := item[key]; ok {
			return v, true
		}
	}
	return nil, false
}

// aliasString resolves a string field through its alias list, falling back
// to def when no candidate key is present or the value renders empty.
func aliasString(item map[string]any, keys []string, def string) string {
	v, ok := firstPresent(item, keys)
	if !ok {
		return def
	}
	s := stringify(v)
	if s == "" {
		return def
	}
	return s
}
