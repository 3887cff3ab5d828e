package sheet

// Category is an item category. Its value is also the character field that
// holds the selection and the base name of its catalog file.
type Category string

// Item categories
const (
	CategoryWeapons   Category = "armas"
	CategorySpells    Category = "magias"
	CategoryTraits    Category = "tracos"
	CategoryCantrips  Category = "truques"
	CategoryEquipment Category = "equipamentos"
)

// Categories lists every category in catalog load order
func Categories() []Category {
	return []Category{
		CategoryWeapons,
		CategorySpells,
		CategoryTraits,
		CategoryCantrips,
		CategoryEquipment,
	}
}

// ActionOrder lists the categories in the order a card shows its buttons
func ActionOrder() []Category {
	return []Category{
		CategoryWeapons,
		CategorySpells,
		CategoryCantrips,
		CategoryEquipment,
		CategoryTraits,
	}
}

// ParseCategory returns the category named s
func ParseCategory(s string) (Category, bool) {
	for _, c := range Categories() {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

// Field returns the character field holding the category's selection
func (c Category) Field() string {
	return string(c)
}

// FileName returns the catalog file name
func (c Category) FileName() string {
	return string(c) + ".yaml"
}

// TopKey returns the key a catalog file nests its entries under, if any
func (c Category) TopKey() string {
	if c == CategoryCantrips {
		return "truques"
	}
	return ""
}

// Label returns the display label
func (c Category) Label() string {
	switch c {
	case CategoryWeapons:
		return "Armas"
	case CategorySpells:
		return "Magias"
	case CategoryTraits:
		return "Traços"
	case CategoryCantrips:
		return "Truques"
	case CategoryEquipment:
		return "Equipamentos"
	default:
		return string(c)
	}
}
