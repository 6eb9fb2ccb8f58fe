// Package dbtypes is the runtime half of the generated database bindings.
//
// Generated packages declare three struct shapes per table:
//
//   - the Row shape, exactly the column set as read back from the database
//   - the Insert shape, where columns with a database default (or that are
//     nullable) become optional pointer fields
//   - the Update shape, where every writable column is wrapped in Patch so
//     unset fields are left untouched
//
// Each table is described by a Table[Row, Insert, Update] value carrying its
// column, primary key and foreign key metadata. Enums and stored functions
// get Enum and Function descriptors. A Schema registers all of them by name
// and Verify checks that the Go shapes still agree with the metadata.
package dbtypes
