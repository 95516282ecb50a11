//go:build integration

// Package testdb provides utilities for database integration tests.
//
// Tests obtain a connection with GetTestDBWithT, which skips the test when no
// database is configured, apply the schema once with SetupTestDatabaseSchema,
// and isolate each test inside WithTx, whose transaction is always rolled
// back:
//
//	db := testdb.GetTestDBWithT(t)
//	testdb.SetupTestDatabaseSchema(t, db)
//
//	testdb.WithTx(t, db, func(t *testing.T, tx *sqlx.Tx) {
//	    users := postgres.NewPostgresUserStore(tx, nil)
//	    ...
//	})
package testdb
