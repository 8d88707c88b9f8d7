// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AuditLogsColumns holds the columns for the "audit_logs" table.
	AuditLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "action", Type: field.TypeString},
		{Name: "resource_type", Type: field.TypeString},
		{Name: "resource_id", Type: field.TypeString},
		{Name: "actor", Type: field.TypeString},
		{Name: "details", Type: field.TypeJSON, Nullable: true},
	}
	// AuditLogsTable holds the schema information for the "audit_logs" table.
	AuditLogsTable = &schema.Table{
		Name:       "audit_logs",
		Columns:    AuditLogsColumns,
		PrimaryKey: []*schema.Column{AuditLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "auditlog_resource_type_resource_id",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[3], AuditLogsColumns[4]},
			},
			{
				Name:    "auditlog_actor",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[5]},
			},
			{
				Name:    "auditlog_created_at",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[1]},
			},
		},
	}
	// CategoriesColumns holds the columns for the "categories" table.
	CategoriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString},
		{Name: "rank", Type: field.TypeInt, Default: 0},
		{Name: "category_children", Type: field.TypeString, Nullable: true},
	}
	// CategoriesTable holds the schema information for the "categories" table.
	CategoriesTable = &schema.Table{
		Name:       "categories",
		Columns:    CategoriesColumns,
		PrimaryKey: []*schema.Column{CategoriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "categories_categories_children",
				Columns:    []*schema.Column{CategoriesColumns[5]},
				RefColumns: []*schema.Column{CategoriesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "category_name",
				Unique:  true,
				Columns: []*schema.Column{CategoriesColumns[3]},
			},
			{
				Name:    "category_rank",
				Unique:  false,
				Columns: []*schema.Column{CategoriesColumns[4]},
			},
		},
	}
	// ContentTypesColumns holds the columns for the "content_types" table.
	ContentTypesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "mime_type", Type: field.TypeString, Default: "text/html"},
		{Name: "file_extensions", Type: field.TypeString, Nullable: true},
		{Name: "headers", Type: field.TypeJSON, Nullable: true},
		{Name: "binary", Type: field.TypeBool, Default: false},
	}
	// ContentTypesTable holds the schema information for the "content_types" table.
	ContentTypesTable = &schema.Table{
		Name:       "content_types",
		Columns:    ContentTypesColumns,
		PrimaryKey: []*schema.Column{ContentTypesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "contenttype_name",
				Unique:  true,
				Columns: []*schema.Column{ContentTypesColumns[3]},
			},
			{
				Name:    "contenttype_mime_type",
				Unique:  false,
				Columns: []*schema.Column{ContentTypesColumns[5]},
			},
		},
	}
	// ElementBindingsColumns holds the columns for the "element_bindings" table.
	ElementBindingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "element_type", Type: field.TypeString},
		{Name: "element_id", Type: field.TypeString},
		{Name: "property_set_bindings", Type: field.TypeString},
	}
	// ElementBindingsTable holds the schema information for the "element_bindings" table.
	ElementBindingsTable = &schema.Table{
		Name:       "element_bindings",
		Columns:    ElementBindingsColumns,
		PrimaryKey: []*schema.Column{ElementBindingsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "element_bindings_property_sets_bindings",
				Columns:    []*schema.Column{ElementBindingsColumns[5]},
				RefColumns: []*schema.Column{PropertySetsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "elementbinding_element_type_element_id",
				Unique:  false,
				Columns: []*schema.Column{ElementBindingsColumns[3], ElementBindingsColumns[4]},
			},
			{
				Name:    "elementbinding_element_type_element_id_property_set_bindings",
				Unique:  true,
				Columns: []*schema.Column{ElementBindingsColumns[3], ElementBindingsColumns[4], ElementBindingsColumns[5]},
			},
		},
	}
	// PropertySetsColumns holds the columns for the "property_sets" table.
	PropertySetsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "properties", Type: field.TypeJSON, Nullable: true},
		{Name: "category_property_sets", Type: field.TypeString, Nullable: true},
	}
	// PropertySetsTable holds the schema information for the "property_sets" table.
	PropertySetsTable = &schema.Table{
		Name:       "property_sets",
		Columns:    PropertySetsColumns,
		PrimaryKey: []*schema.Column{PropertySetsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "property_sets_categories_property_sets",
				Columns:    []*schema.Column{PropertySetsColumns[6]},
				RefColumns: []*schema.Column{CategoriesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "propertyset_name",
				Unique:  true,
				Columns: []*schema.Column{PropertySetsColumns[3]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "username", Type: field.TypeString, Size: 255},
		{Name: "display_name", Type: field.TypeString, Nullable: true},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "permissions", Type: field.TypeJSON, Nullable: true},
		{Name: "enabled", Type: field.TypeBool, Default: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_username",
				Unique:  true,
				Columns: []*schema.Column{UsersColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AuditLogsTable,
		CategoriesTable,
		ContentTypesTable,
		ElementBindingsTable,
		PropertySetsTable,
		UsersTable,
	}
)

func init() {
	CategoriesTable.ForeignKeys[0].RefTable = CategoriesTable
	ElementBindingsTable.ForeignKeys[0].RefTable = PropertySetsTable
	PropertySetsTable.ForeignKeys[0].RefTable = CategoriesTable
}
