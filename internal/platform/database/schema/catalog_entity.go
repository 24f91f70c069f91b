package schema

// CatalogEntityTable represents the 'catalog.entity' table
type CatalogEntityTable struct {
	Table     string
	ID        string
	Kind      string
	Name      string
	NameKey   string
	CreatedAt string
}

// CatalogEntity is the schema definition for catalog.entity
var CatalogEntity = CatalogEntityTable{
	Table:     "catalog.entity",
	ID:        "id",
	Kind:      "kind",
	Name:      "name",
	NameKey:   "name_key",
	CreatedAt: "createdat",
}

func (t CatalogEntityTable) Columns() []string {
	return []string{t.ID, t.Kind, t.Name, t.NameKey, t.CreatedAt}
}
