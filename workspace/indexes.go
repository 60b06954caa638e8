package workspace

import "github.com/hashicorp/go-memdb"

var tblSchemas = "schemas"

var dbSchema = &memdb.DBSchema{
	Tables: map[string]*memdb.TableSchema{
		tblSchemas: {
			Name: tblSchemas,
			Indexes: map[string]*memdb.IndexSchema{
				"id": {
					Name:    "id",
					Unique:  true,
					Indexer: &memdb.StringFieldIndex{Field: "ID"},
				},
			},
		},
	},
}
