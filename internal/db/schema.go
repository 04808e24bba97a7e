package db

import (
	"fmt"
	"os"
	"sort"

	"gorm.io/gorm"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS partners (
		tax_id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		specialization INTEGER NOT NULL CHECK (specialization BETWEEN 1 AND 4),
		comments TEXT
	);`,
	`CREATE TABLE IF NOT EXISTS clients (
		tax_id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		location TEXT NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS printing_houses (
		id INTEGER PRIMARY KEY,
		location TEXT NOT NULL,
		capabilities INTEGER NOT NULL CHECK (capabilities BETWEEN 1 AND 5)
	);`,
	`CREATE TABLE IF NOT EXISTS genres (
		id INTEGER PRIMARY KEY,
		age_range TEXT NOT NULL,
		description TEXT
	);`,
	`CREATE TABLE IF NOT EXISTS publications (
		isbn INTEGER PRIMARY KEY,
		title TEXT NOT NULL,
		price REAL NOT NULL,
		stock INTEGER NOT NULL CHECK (stock >= 0),
		genre_id INTEGER NOT NULL REFERENCES genres(id)
	);`,
	`CREATE TABLE IF NOT EXISTS contracts (
		id INTEGER PRIMARY KEY,
		payment REAL NOT NULL,
		start_date TEXT NOT NULL,
		expiration_date TEXT NOT NULL,
		description TEXT,
		partner_tax_id INTEGER NOT NULL REFERENCES partners(tax_id),
		publication_isbn INTEGER NOT NULL REFERENCES publications(isbn)
	);`,
	`CREATE TABLE IF NOT EXISTS client_orders (
		order_id INTEGER PRIMARY KEY AUTOINCREMENT,
		client_tax_id INTEGER NOT NULL REFERENCES clients(tax_id),
		publication_isbn INTEGER NOT NULL REFERENCES publications(isbn),
		quantity INTEGER NOT NULL CHECK (quantity > 0),
		order_date TEXT NOT NULL,
		delivery_date TEXT NOT NULL,
		payment REAL NOT NULL,
		UNIQUE (client_tax_id, publication_isbn)
	);`,
	`CREATE TABLE IF NOT EXISTS printing_orders (
		order_id INTEGER PRIMARY KEY AUTOINCREMENT,
		printing_house_id INTEGER NOT NULL REFERENCES printing_houses(id),
		publication_isbn INTEGER NOT NULL REFERENCES publications(isbn),
		order_date TEXT NOT NULL,
		delivery_date TEXT NOT NULL,
		quantity INTEGER NOT NULL CHECK (quantity > 0),
		cost REAL NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS contributions (
		partner_tax_id INTEGER NOT NULL REFERENCES partners(tax_id),
		publication_isbn INTEGER NOT NULL REFERENCES publications(isbn),
		estimated_completion_date TEXT NOT NULL,
		start_date TEXT NOT NULL,
		completion_date TEXT NOT NULL,
		payment_date TEXT,
		PRIMARY KEY (partner_tax_id, publication_isbn)
	);`,
	`CREATE TABLE IF NOT EXISTS partner_contacts (
		partner_tax_id INTEGER NOT NULL REFERENCES partners(tax_id),
		phone INTEGER NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS client_contacts (
		client_tax_id INTEGER NOT NULL REFERENCES clients(tax_id),
		phone INTEGER NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS printing_house_contacts (
		printing_house_id INTEGER NOT NULL REFERENCES printing_houses(id),
		phone INTEGER NOT NULL
	);`,
}

// tableColumns is the single place that knows the table/column contract.
// Identifier interpolation elsewhere (search, counts) must go through it.
var tableColumns = map[string][]string{
	"partners":                {"tax_id", "name", "specialization", "comments"},
	"clients":                 {"tax_id", "name", "location"},
	"printing_houses":         {"id", "location", "capabilities"},
	"genres":                  {"id", "age_range", "description"},
	"publications":            {"isbn", "title", "price", "stock", "genre_id"},
	"contracts":               {"id", "payment", "start_date", "expiration_date", "description", "partner_tax_id", "publication_isbn"},
	"client_orders":           {"order_id", "client_tax_id", "publication_isbn", "quantity", "order_date", "delivery_date", "payment"},
	"printing_orders":         {"order_id", "printing_house_id", "publication_isbn", "order_date", "delivery_date", "quantity", "cost"},
	"contributions":           {"partner_tax_id", "publication_isbn", "estimated_completion_date", "start_date", "completion_date", "payment_date"},
	"partner_contacts":        {"partner_tax_id", "phone"},
	"client_contacts":         {"client_tax_id", "phone"},
	"printing_house_contacts": {"printing_house_id", "phone"},
}

// Tables returns every schema table name, sorted.
func Tables() []string {
	names := make([]string, 0, len(tableColumns))
	for name := range tableColumns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Columns reports the column list of a schema table.
func Columns(table string) ([]string, bool) {
	cols, ok := tableColumns[table]
	return cols, ok
}

func applySchema(database *gorm.DB, schemaPath string) error {
	if schemaPath != "" {
		script, err := os.ReadFile(schemaPath)
		if err != nil {
			return fmt.Errorf("%w: read schema script: %v", ErrSchemaApply, err)
		}
		if err := database.Exec(string(script)).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrSchemaApply, err)
		}
		return nil
	}

	for i, stmt := range schemaStatements {
		if err := database.Exec(stmt).Error; err != nil {
			return fmt.Errorf("%w: statement %d: %v", ErrSchemaApply, i+1, err)
		}
	}
	return nil
}
